// FilePath: internal/repository/repository.go
package repository

import (
	"context"

	"github.com/itsatony/gartentrack/internal/database"
	"github.com/itsatony/gartentrack/internal/models"
)

// DeviceRepository defines the interface for device data operations.
// Get and List return devices with their operations eagerly loaded, sorted
// by date descending. Delete removes the device and all its operations in
// one transaction.
type DeviceRepository interface {
	database.Repository
	Create(ctx context.Context, device *models.Device) error
	Get(ctx context.Context, id int64) (*models.Device, error)
	List(ctx context.Context, offset, limit int) ([]*models.Device, error)
	Update(ctx context.Context, device *models.Device) error
	Delete(ctx context.Context, id int64) error
}

// DeviceOperationRepository defines the interface for device usage records.
// ListByDevice gives no ordering guarantee; the ordered view is the one
// nested under the parent.
type DeviceOperationRepository interface {
	database.Repository
	Create(ctx context.Context, op *models.DeviceOperation) error
	Get(ctx context.Context, id int64) (*models.DeviceOperation, error)
	ListByDevice(ctx context.Context, deviceID int64, offset, limit int) ([]*models.DeviceOperation, error)
	Delete(ctx context.Context, id int64) error
}

// BottleRepository defines the interface for gas bottle data operations
type BottleRepository interface {
	database.Repository
	Create(ctx context.Context, bottle *models.Bottle) error
	Get(ctx context.Context, id int64) (*models.Bottle, error)
	List(ctx context.Context, offset, limit int) ([]*models.Bottle, error)
	Update(ctx context.Context, bottle *models.Bottle) error
	Delete(ctx context.Context, id int64) error
}

// BottleOperationRepository defines the interface for bottle weight readings
type BottleOperationRepository interface {
	database.Repository
	Create(ctx context.Context, op *models.BottleOperation) error
	Get(ctx context.Context, id int64) (*models.BottleOperation, error)
	ListByBottle(ctx context.Context, bottleID int64, offset, limit int) ([]*models.BottleOperation, error)
	Delete(ctx context.Context, id int64) error
}
