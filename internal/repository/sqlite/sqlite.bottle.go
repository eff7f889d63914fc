// FilePath: internal/repository/sqlite/sqlite.bottle.go
package sqlite

import (
	"context"
	"database/sql"

	"github.com/itsatony/gartentrack/internal/database"
	"github.com/itsatony/gartentrack/internal/errors"
	"github.com/itsatony/gartentrack/internal/models"
	"github.com/jmoiron/sqlx"
)

type BottleRepo struct {
	SQLiteBaseRepo
}

func NewBottleRepository(db database.DB) *BottleRepo {
	repo := &SQLiteBaseRepo{db: db}
	return &BottleRepo{SQLiteBaseRepo: *repo}
}

func (r *BottleRepo) Create(ctx context.Context, bottle *models.Bottle) error {
	query := `
		INSERT INTO bottles (purchase_date, purchase_price, initial_weight, filling_weight, active)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.GetDB().ExecContext(ctx, query,
		bottle.PurchaseDate,
		bottle.PurchasePrice,
		bottle.InitialWeight,
		bottle.FillingWeight,
		bottle.Active,
	)
	if err != nil {
		return errors.NewDatabaseError("failed to create bottle", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.NewDatabaseError("failed to get inserted bottle id", err)
	}
	bottle.ID = id
	bottle.Operations = []*models.BottleOperation{}
	return nil
}

func (r *BottleRepo) Get(ctx context.Context, id int64) (*models.Bottle, error) {
	bottle := &models.Bottle{}
	query := `
		SELECT id, purchase_date, purchase_price, initial_weight, filling_weight, active
		FROM bottles WHERE id = ?`

	err := r.db.GetDB().GetContext(ctx, bottle, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("bottle not found", err)
		}
		return nil, errors.NewDatabaseError("failed to get bottle", err)
	}

	if err := r.loadOperations(ctx, []*models.Bottle{bottle}); err != nil {
		return nil, err
	}
	return bottle, nil
}

func (r *BottleRepo) List(ctx context.Context, offset, limit int) ([]*models.Bottle, error) {
	bottles := []*models.Bottle{}
	query := `
		SELECT id, purchase_date, purchase_price, initial_weight, filling_weight, active
		FROM bottles ORDER BY id LIMIT ? OFFSET ?`

	err := r.db.GetDB().SelectContext(ctx, &bottles, query, limit, offset)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list bottles", err)
	}

	if err := r.loadOperations(ctx, bottles); err != nil {
		return nil, err
	}
	return bottles, nil
}

func (r *BottleRepo) Update(ctx context.Context, bottle *models.Bottle) error {
	query := `
		UPDATE bottles SET
			purchase_date = :purchase_date,
			purchase_price = :purchase_price,
			initial_weight = :initial_weight,
			filling_weight = :filling_weight,
			active = :active
		WHERE id = :id`

	result, err := r.db.GetDB().NamedExecContext(ctx, query, bottle)
	if err != nil {
		return errors.NewDatabaseError("failed to update bottle", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError("bottle not found", nil)
	}
	return nil
}

// Delete removes a bottle and all its weight readings in a single transaction.
func (r *BottleRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return errors.NewDatabaseError("failed to begin transaction", err)
	}
	defer tx.Rollback() // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM bottle_operations WHERE bottle_id = ?`, id); err != nil {
		return errors.NewDatabaseError("failed to delete bottle operations", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM bottles WHERE id = ?`, id)
	if err != nil {
		return errors.NewDatabaseError("failed to delete bottle", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}
	if rows == 0 {
		return errors.NewNotFoundError("bottle not found", nil)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewDatabaseError("failed to commit transaction", err)
	}
	return nil
}

func (r *BottleRepo) loadOperations(ctx context.Context, bottles []*models.Bottle) error {
	if len(bottles) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(bottles))
	byID := make(map[int64]*models.Bottle, len(bottles))
	for _, b := range bottles {
		b.Operations = []*models.BottleOperation{}
		ids = append(ids, b.ID)
		byID[b.ID] = b
	}

	query, args, err := sqlx.In(`
		SELECT id, bottle_id, date, weight
		FROM bottle_operations
		WHERE bottle_id IN (?)
		ORDER BY date DESC, id DESC`, ids)
	if err != nil {
		return errors.NewDatabaseError("failed to build operations query", err)
	}
	query = r.db.GetDB().Rebind(query)

	ops := []*models.BottleOperation{}
	if err := r.db.GetDB().SelectContext(ctx, &ops, query, args...); err != nil {
		return errors.NewDatabaseError("failed to load bottle operations", err)
	}

	for _, op := range ops {
		if b, ok := byID[op.BottleID]; ok {
			b.Operations = append(b.Operations, op)
		}
	}
	return nil
}
