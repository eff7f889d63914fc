// FilePath: api/resources/api.resource.bottles.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/itsatony/gartentrack/internal/errors"
	"github.com/itsatony/gartentrack/internal/models"
	"github.com/itsatony/gartentrack/internal/trackservice"
	nuts "github.com/vaudience/go-nuts"
)

// BottleHandlers encapsulates the gas-bottle-related HTTP handlers
type BottleHandlers struct {
	service *trackservice.TrackService
}

// CreateBottle handles POST /bottles/
func (h *BottleHandlers) CreateBottle(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var payload models.BottleCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	bottle, err := h.service.CreateBottle(r.Context(), &payload)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, bottle)
}

// ListBottles handles GET /bottles/
func (h *BottleHandlers) ListBottles(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	skip, limit := getPaginationParams(r.URL.Query())

	bottles, err := h.service.ListBottles(r.Context(), skip, limit)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, bottles)
}

// GetBottle handles GET /bottles/{id}
func (h *BottleHandlers) GetBottle(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid bottle id", err).WithRequestID(requestID))
		return
	}

	bottle, err := h.service.GetBottle(r.Context(), id)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, bottle)
}

// UpdateBottle handles PUT /bottles/{id}; only the active flag is mutable
func (h *BottleHandlers) UpdateBottle(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid bottle id", err).WithRequestID(requestID))
		return
	}

	var payload models.BottleUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	bottle, err := h.service.UpdateBottle(r.Context(), id, &payload)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, bottle)
}

// DeleteBottle handles DELETE /bottles/{id}; readings are cascaded
func (h *BottleHandlers) DeleteBottle(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid bottle id", err).WithRequestID(requestID))
		return
	}

	if _, err := h.service.DeleteBottle(r.Context(), id); err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithMessage(w, "Bottle deleted successfully")
}

// CreateOperation handles POST /bottles/{id}/operations/. The path id always
// wins over any bottle_id carried in the payload.
func (h *BottleHandlers) CreateOperation(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	bottleID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid bottle id", err).WithRequestID(requestID))
		return
	}

	var payload models.BottleOperationCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	op, err := h.service.CreateBottleOperation(r.Context(), bottleID, &payload)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, op)
}

// ListOperations handles GET /bottles/{id}/operations/
func (h *BottleHandlers) ListOperations(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	bottleID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid bottle id", err).WithRequestID(requestID))
		return
	}

	skip, limit := getPaginationParams(r.URL.Query())
	ops, err := h.service.ListBottleOperations(r.Context(), bottleID, skip, limit)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ops)
}

// GetOperation handles GET /bottles/operations/{operationId}
func (h *BottleHandlers) GetOperation(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	opID, err := parseID(mux.Vars(r)["operationId"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid operation id", err).WithRequestID(requestID))
		return
	}

	op, err := h.service.GetBottleOperation(r.Context(), opID)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, op)
}

// DeleteOperation handles DELETE /bottles/operations/{operationId}
func (h *BottleHandlers) DeleteOperation(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	opID, err := parseID(mux.Vars(r)["operationId"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid operation id", err).WithRequestID(requestID))
		return
	}

	if _, err := h.service.DeleteBottleOperation(r.Context(), opID); err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithMessage(w, "Bottle operation deleted successfully")
}
