// FilePath: internal/repository/sqlite/sqlite.bottle_operation.go
package sqlite

import (
	"context"
	"database/sql"

	"github.com/itsatony/gartentrack/internal/database"
	"github.com/itsatony/gartentrack/internal/errors"
	"github.com/itsatony/gartentrack/internal/models"
)

type BottleOperationRepo struct {
	SQLiteBaseRepo
}

func NewBottleOperationRepository(db database.DB) *BottleOperationRepo {
	repo := &SQLiteBaseRepo{db: db}
	return &BottleOperationRepo{SQLiteBaseRepo: *repo}
}

func (r *BottleOperationRepo) Create(ctx context.Context, op *models.BottleOperation) error {
	query := `INSERT INTO bottle_operations (bottle_id, date, weight) VALUES (?, ?, ?)`

	result, err := r.db.GetDB().ExecContext(ctx, query, op.BottleID, op.Date, op.Weight)
	if err != nil {
		return errors.NewDatabaseError("failed to create bottle operation", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.NewDatabaseError("failed to get inserted operation id", err)
	}
	op.ID = id
	return nil
}

func (r *BottleOperationRepo) Get(ctx context.Context, id int64) (*models.BottleOperation, error) {
	op := &models.BottleOperation{}
	query := `SELECT id, bottle_id, date, weight FROM bottle_operations WHERE id = ?`

	err := r.db.GetDB().GetContext(ctx, op, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("bottle operation not found", err)
		}
		return nil, errors.NewDatabaseError("failed to get bottle operation", err)
	}
	return op, nil
}

func (r *BottleOperationRepo) ListByBottle(ctx context.Context, bottleID int64, offset, limit int) ([]*models.BottleOperation, error) {
	ops := []*models.BottleOperation{}
	query := `
		SELECT id, bottle_id, date, weight
		FROM bottle_operations
		WHERE bottle_id = ?
		LIMIT ? OFFSET ?`

	err := r.db.GetDB().SelectContext(ctx, &ops, query, bottleID, limit, offset)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list bottle operations", err)
	}
	return ops, nil
}

func (r *BottleOperationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.GetDB().ExecContext(ctx, `DELETE FROM bottle_operations WHERE id = ?`, id)
	if err != nil {
		return errors.NewDatabaseError("failed to delete bottle operation", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError("bottle operation not found", nil)
	}
	return nil
}
