// FilePath: internal/repository/sqlite/sqlite.device.go
package sqlite

import (
	"context"
	"database/sql"

	"github.com/itsatony/gartentrack/internal/database"
	"github.com/itsatony/gartentrack/internal/errors"
	"github.com/itsatony/gartentrack/internal/models"
	"github.com/jmoiron/sqlx"
)

type DeviceRepo struct {
	SQLiteBaseRepo
}

func NewDeviceRepository(db database.DB) *DeviceRepo {
	repo := &SQLiteBaseRepo{db: db}
	return &DeviceRepo{SQLiteBaseRepo: *repo}
}

func (r *DeviceRepo) Create(ctx context.Context, device *models.Device) error {
	query := `INSERT INTO devices (name, active) VALUES (?, ?)`

	result, err := r.db.GetDB().ExecContext(ctx, query, device.Name, device.Active)
	if err != nil {
		return errors.NewDatabaseError("failed to create device", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.NewDatabaseError("failed to get inserted device id", err)
	}
	device.ID = id
	device.Operations = []*models.DeviceOperation{}
	return nil
}

func (r *DeviceRepo) Get(ctx context.Context, id int64) (*models.Device, error) {
	device := &models.Device{}
	query := `SELECT id, name, active FROM devices WHERE id = ?`

	err := r.db.GetDB().GetContext(ctx, device, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("device not found", err)
		}
		return nil, errors.NewDatabaseError("failed to get device", err)
	}

	if err := r.loadOperations(ctx, []*models.Device{device}); err != nil {
		return nil, err
	}
	return device, nil
}

func (r *DeviceRepo) List(ctx context.Context, offset, limit int) ([]*models.Device, error) {
	devices := []*models.Device{}
	query := `SELECT id, name, active FROM devices ORDER BY id LIMIT ? OFFSET ?`

	err := r.db.GetDB().SelectContext(ctx, &devices, query, limit, offset)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list devices", err)
	}

	if err := r.loadOperations(ctx, devices); err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *DeviceRepo) Update(ctx context.Context, device *models.Device) error {
	query := `UPDATE devices SET name = :name, active = :active WHERE id = :id`

	result, err := r.db.GetDB().NamedExecContext(ctx, query, device)
	if err != nil {
		return errors.NewDatabaseError("failed to update device", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError("device not found", nil)
	}
	return nil
}

// Delete removes a device and all its operations in a single transaction.
// Children go first so the parent row never outlives an orphan check.
func (r *DeviceRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return errors.NewDatabaseError("failed to begin transaction", err)
	}
	defer tx.Rollback() // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM device_operations WHERE device_id = ?`, id); err != nil {
		return errors.NewDatabaseError("failed to delete device operations", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM devices WHERE id = ?`, id)
	if err != nil {
		return errors.NewDatabaseError("failed to delete device", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError("device not found", nil)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewDatabaseError("failed to commit transaction", err)
	}
	return nil
}

// loadOperations eagerly attaches each device's operations, newest first.
// One batched query serves single-get and list alike.
func (r *DeviceRepo) loadOperations(ctx context.Context, devices []*models.Device) error {
	if len(devices) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(devices))
	byID := make(map[int64]*models.Device, len(devices))
	for _, d := range devices {
		d.Operations = []*models.DeviceOperation{}
		ids = append(ids, d.ID)
		byID[d.ID] = d
	}

	query, args, err := sqlx.In(`
		SELECT id, device_id, date, duration, note
		FROM device_operations
		WHERE device_id IN (?)
		ORDER BY date DESC, id DESC`, ids)
	if err != nil {
		return errors.NewDatabaseError("failed to build operations query", err)
	}
	query = r.db.GetDB().Rebind(query)

	ops := []*models.DeviceOperation{}
	if err := r.db.GetDB().SelectContext(ctx, &ops, query, args...); err != nil {
		return errors.NewDatabaseError("failed to load device operations", err)
	}

	for _, op := range ops {
		if d, ok := byID[op.DeviceID]; ok {
			d.Operations = append(d.Operations, op)
		}
	}
	return nil
}
