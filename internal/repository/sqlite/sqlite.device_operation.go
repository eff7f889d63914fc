// FilePath: internal/repository/sqlite/sqlite.device_operation.go
package sqlite

import (
	"context"
	"database/sql"

	"github.com/itsatony/gartentrack/internal/database"
	"github.com/itsatony/gartentrack/internal/errors"
	"github.com/itsatony/gartentrack/internal/models"
)

type DeviceOperationRepo struct {
	SQLiteBaseRepo
}

func NewDeviceOperationRepository(db database.DB) *DeviceOperationRepo {
	repo := &SQLiteBaseRepo{db: db}
	return &DeviceOperationRepo{SQLiteBaseRepo: *repo}
}

// Create inserts a usage record. Parent existence is the caller's contract;
// the FK constraint is only the storage-level backstop.
func (r *DeviceOperationRepo) Create(ctx context.Context, op *models.DeviceOperation) error {
	query := `
		INSERT INTO device_operations (device_id, date, duration, note)
		VALUES (?, ?, ?, ?)`

	result, err := r.db.GetDB().ExecContext(ctx, query, op.DeviceID, op.Date, op.Duration, op.Note)
	if err != nil {
		return errors.NewDatabaseError("failed to create device operation", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.NewDatabaseError("failed to get inserted operation id", err)
	}
	op.ID = id
	return nil
}

func (r *DeviceOperationRepo) Get(ctx context.Context, id int64) (*models.DeviceOperation, error) {
	op := &models.DeviceOperation{}
	query := `SELECT id, device_id, date, duration, note FROM device_operations WHERE id = ?`

	err := r.db.GetDB().GetContext(ctx, op, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("device operation not found", err)
		}
		return nil, errors.NewDatabaseError("failed to get device operation", err)
	}
	return op, nil
}

func (r *DeviceOperationRepo) ListByDevice(ctx context.Context, deviceID int64, offset, limit int) ([]*models.DeviceOperation, error) {
	ops := []*models.DeviceOperation{}
	query := `
		SELECT id, device_id, date, duration, note
		FROM device_operations
		WHERE device_id = ?
		LIMIT ? OFFSET ?`

	err := r.db.GetDB().SelectContext(ctx, &ops, query, deviceID, limit, offset)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list device operations", err)
	}
	return ops, nil
}

func (r *DeviceOperationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.GetDB().ExecContext(ctx, `DELETE FROM device_operations WHERE id = ?`, id)
	if err != nil {
		return errors.NewDatabaseError("failed to delete device operation", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError("device operation not found", nil)
	}
	return nil
}
