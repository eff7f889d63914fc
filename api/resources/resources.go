// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/schema"
	"github.com/itsatony/gartentrack/internal/errors"
	"github.com/itsatony/gartentrack/internal/trackservice"
	nuts "github.com/vaudience/go-nuts"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Devices *DeviceHandlers
	Bottles *BottleHandlers
}

// NewResources creates a new Resources instance
func NewResources(svc *trackservice.TrackService) *Resources {
	return &Resources{
		Devices: &DeviceHandlers{service: svc},
		Bottles: &BottleHandlers{service: svc},
	}
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// paginationParams carries the skip/limit query values of list endpoints
type paginationParams struct {
	Skip  int `schema:"skip"`
	Limit int `schema:"limit"`
}

func getPaginationParams(query url.Values) (skip, limit int) {
	var p paginationParams
	if err := queryDecoder.Decode(&p, query); err != nil {
		return 0, 0
	}
	return p.Skip, p.Limit
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondWithMessage(w http.ResponseWriter, message string) {
	respondWithJSON(w, http.StatusOK, map[string]string{"message": message})
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

// respondServiceError passes typed service errors through unchanged (NotFound
// stays a 404, validation a 400) and wraps anything else as internal.
func respondServiceError(w http.ResponseWriter, requestID string, err error) {
	if apiErr, ok := err.(*errors.APIError); ok {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}
	respondWithError(w, errors.NewInternalError("unexpected error", err).WithRequestID(requestID))
}
