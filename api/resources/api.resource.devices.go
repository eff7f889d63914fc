// FilePath: api/resources/api.resource.devices.go
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

// DeviceHandlers encapsulates the device-related HTTP handlers
type DeviceHandlers struct {
	service *trackservice.TrackService
}

// CreateDevice handles POST /devices/
func (h *DeviceHandlers) CreateDevice(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var payload models.DeviceCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	device, err := h.service.CreateDevice(r.Context(), &payload)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, device)
}

// ListDevices handles GET /devices/
func (h *DeviceHandlers) ListDevices(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	skip, limit := getPaginationParams(r.URL.Query())

	devices, err := h.service.ListDevices(r.Context(), skip, limit)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, devices)
}

// GetDevice handles GET /devices/{id}
func (h *DeviceHandlers) GetDevice(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid device id", err).WithRequestID(requestID))
		return
	}

	device, err := h.service.GetDevice(r.Context(), id)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, device)
}

// UpdateDevice handles PUT /devices/{id} with a partial payload
func (h *DeviceHandlers) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid device id", err).WithRequestID(requestID))
		return
	}

	var payload models.DeviceUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	device, err := h.service.UpdateDevice(r.Context(), id, &payload)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, device)
}

// DeleteDevice handles DELETE /devices/{id}; operations are cascaded
func (h *DeviceHandlers) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid device id", err).WithRequestID(requestID))
		return
	}

	if _, err := h.service.DeleteDevice(r.Context(), id); err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithMessage(w, "Device deleted successfully")
}

// CreateOperation handles POST /devices/{id}/operations/. The path id always
// wins over any device_id carried in the payload.
func (h *DeviceHandlers) CreateOperation(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	deviceID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid device id", err).WithRequestID(requestID))
		return
	}

	var payload models.DeviceOperationCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	op, err := h.service.CreateDeviceOperation(r.Context(), deviceID, &payload)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, op)
}

// ListOperations handles GET /devices/{id}/operations/
func (h *DeviceHandlers) ListOperations(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	deviceID, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid device id", err).WithRequestID(requestID))
		return
	}

	skip, limit := getPaginationParams(r.URL.Query())
	ops, err := h.service.ListDeviceOperations(r.Context(), deviceID, skip, limit)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ops)
}

// GetOperation handles GET /devices/operations/{operationId}
func (h *DeviceHandlers) GetOperation(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	opID, err := parseID(mux.Vars(r)["operationId"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid operation id", err).WithRequestID(requestID))
		return
	}

	op, err := h.service.GetDeviceOperation(r.Context(), opID)
	if err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithJSON(w, http.StatusOK, op)
}

// DeleteOperation handles DELETE /devices/operations/{operationId}
func (h *DeviceHandlers) DeleteOperation(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	opID, err := parseID(mux.Vars(r)["operationId"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid operation id", err).WithRequestID(requestID))
		return
	}

	if _, err := h.service.DeleteDeviceOperation(r.Context(), opID); err != nil {
		respondServiceError(w, requestID, err)
		return
	}

	respondWithMessage(w, "Device operation deleted successfully")
}
