package trackservice

import (
	"context"

	"github.com/itsatony/gartentrack/internal/errors"
	"github.com/itsatony/gartentrack/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// CreateDevice creates a new device with proper validation and defaults
func (s *TrackService) CreateDevice(ctx context.Context, payload *models.DeviceCreate) (*models.Device, error) {
	if payload.Name == "" {
		return nil, errors.NewValidationError("device name is required", nil)
	}

	device := &models.Device{
		Name:   payload.Name,
		Active: true,
	}
	if payload.Active != nil {
		device.Active = *payload.Active
	}

	if err := s.Devices.Create(ctx, device); err != nil {
		return nil, err
	}

	nuts.L.Infof("[DeviceService] Created device %d (%s)", device.ID, device.Name)
	return device, nil
}

// GetDevice retrieves a device with its operations, newest first
func (s *TrackService) GetDevice(ctx context.Context, id int64) (*models.Device, error) {
	return s.Devices.Get(ctx, id)
}

// ListDevices retrieves a paginated list of devices with eager-loaded operations
func (s *TrackService) ListDevices(ctx context.Context, skip, limit int) ([]*models.Device, error) {
	skip, limit = clampPagination(skip, limit)
	return s.Devices.List(ctx, skip, limit)
}

// UpdateDevice applies a partial update to an existing device. Only fields
// present in the payload are touched; everything else keeps its prior value.
func (s *TrackService) UpdateDevice(ctx context.Context, id int64, payload *models.DeviceUpdate) (*models.Device, error) {
	device, err := s.Devices.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Active != nil {
		device.Active = *payload.Active
	}

	if err := s.Devices.Update(ctx, device); err != nil {
		return nil, err
	}

	nuts.L.Infof("[DeviceService] Updated device %d", id)
	return device, nil
}

// DeleteDevice removes a device and cascades to all its operations, returning
// the entity's last-known state.
func (s *TrackService) DeleteDevice(ctx context.Context, id int64) (*models.Device, error) {
	device, err := s.Devices.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Devices.Delete(ctx, id); err != nil {
		return nil, err
	}

	nuts.L.Infof("[DeviceService] Deleted device %d and %d operations", id, len(device.Operations))
	return device, nil
}

// CreateDeviceOperation records a usage session for an existing device. The
// parent id always comes from the caller's path, never from the payload.
func (s *TrackService) CreateDeviceOperation(ctx context.Context, deviceID int64, payload *models.DeviceOperationCreate) (*models.DeviceOperation, error) {
	if _, err := s.Devices.Get(ctx, deviceID); err != nil {
		return nil, err
	}

	if payload.Date.IsZero() {
		return nil, errors.NewValidationError("operation date is required", nil)
	}
	if payload.Duration <= 0 {
		return nil, errors.NewValidationError("operation duration must be positive", nil)
	}

	op := &models.DeviceOperation{
		DeviceID: deviceID,
		Date:     payload.Date,
		Duration: payload.Duration,
		Note:     payload.Note,
	}

	if err := s.DeviceOperations.Create(ctx, op); err != nil {
		return nil, err
	}

	nuts.L.Infof("[DeviceService] Created operation %d for device %d", op.ID, deviceID)
	return op, nil
}

// ListDeviceOperations retrieves a page of operations for an existing device
func (s *TrackService) ListDeviceOperations(ctx context.Context, deviceID int64, skip, limit int) ([]*models.DeviceOperation, error) {
	if _, err := s.Devices.Get(ctx, deviceID); err != nil {
		return nil, err
	}

	skip, limit = clampPagination(skip, limit)
	return s.DeviceOperations.ListByDevice(ctx, deviceID, skip, limit)
}

// GetDeviceOperation retrieves a single operation by its own id
func (s *TrackService) GetDeviceOperation(ctx context.Context, id int64) (*models.DeviceOperation, error) {
	return s.DeviceOperations.Get(ctx, id)
}

// DeleteDeviceOperation removes a single operation, returning its last state
func (s *TrackService) DeleteDeviceOperation(ctx context.Context, id int64) (*models.DeviceOperation, error) {
	op, err := s.DeviceOperations.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.DeviceOperations.Delete(ctx, id); err != nil {
		return nil, err
	}

	nuts.L.Infof("[DeviceService] Deleted operation %d", id)
	return op, nil
}
