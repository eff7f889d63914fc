package trackservice

import (
	"context"

	"github.com/itsatony/gartentrack/internal/errors"
	"github.com/itsatony/gartentrack/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// CreateBottle creates a new gas bottle with proper validation and defaults
func (s *TrackService) CreateBottle(ctx context.Context, payload *models.BottleCreate) (*models.Bottle, error) {
	if payload.PurchaseDate.IsZero() {
		return nil, errors.NewValidationError("bottle purchase date is required", nil)
	}
	if payload.PurchasePrice <= 0 {
		return nil, errors.NewValidationError("bottle purchase price must be positive", nil)
	}
	if payload.InitialWeight <= 0 {
		return nil, errors.NewValidationError("bottle initial weight must be positive", nil)
	}
	if payload.FillingWeight <= 0 {
		return nil, errors.NewValidationError("bottle filling weight must be positive", nil)
	}

	bottle := &models.Bottle{
		PurchaseDate:  payload.PurchaseDate,
		PurchasePrice: payload.PurchasePrice,
		InitialWeight: payload.InitialWeight,
		FillingWeight: payload.FillingWeight,
		Active:        true,
	}
	if payload.Active != nil {
		bottle.Active = *payload.Active
	}

	if err := s.Bottles.Create(ctx, bottle); err != nil {
		return nil, err
	}

	nuts.L.Infof("[BottleService] Created bottle %d", bottle.ID)
	return bottle, nil
}

// GetBottle retrieves a bottle with its weight readings, newest first
func (s *TrackService) GetBottle(ctx context.Context, id int64) (*models.Bottle, error) {
	return s.Bottles.Get(ctx, id)
}

// ListBottles retrieves a paginated list of bottles with eager-loaded readings
func (s *TrackService) ListBottles(ctx context.Context, skip, limit int) ([]*models.Bottle, error) {
	skip, limit = clampPagination(skip, limit)
	return s.Bottles.List(ctx, skip, limit)
}

// UpdateBottle applies a partial update; only the active flag is mutable.
func (s *TrackService) UpdateBottle(ctx context.Context, id int64, payload *models.BottleUpdate) (*models.Bottle, error) {
	bottle, err := s.Bottles.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Active != nil {
		bottle.Active = *payload.Active
	}

	if err := s.Bottles.Update(ctx, bottle); err != nil {
		return nil, err
	}

	nuts.L.Infof("[BottleService] Updated bottle %d", id)
	return bottle, nil
}

// DeleteBottle removes a bottle and cascades to all its readings, returning
// the entity's last-known state.
func (s *TrackService) DeleteBottle(ctx context.Context, id int64) (*models.Bottle, error) {
	bottle, err := s.Bottles.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Bottles.Delete(ctx, id); err != nil {
		return nil, err
	}

	nuts.L.Infof("[BottleService] Deleted bottle %d and %d operations", id, len(bottle.Operations))
	return bottle, nil
}

// CreateBottleOperation records a weight reading for an existing bottle. The
// parent id always comes from the caller's path, never from the payload.
func (s *TrackService) CreateBottleOperation(ctx context.Context, bottleID int64, payload *models.BottleOperationCreate) (*models.BottleOperation, error) {
	if _, err := s.Bottles.Get(ctx, bottleID); err != nil {
		return nil, err
	}

	if payload.Date.IsZero() {
		return nil, errors.NewValidationError("operation date is required", nil)
	}
	if payload.Weight <= 0 {
		return nil, errors.NewValidationError("operation weight must be positive", nil)
	}

	op := &models.BottleOperation{
		BottleID: bottleID,
		Date:     payload.Date,
		Weight:   payload.Weight,
	}

	if err := s.BottleOperations.Create(ctx, op); err != nil {
		return nil, err
	}

	nuts.L.Infof("[BottleService] Created operation %d for bottle %d", op.ID, bottleID)
	return op, nil
}

// ListBottleOperations retrieves a page of readings for an existing bottle
func (s *TrackService) ListBottleOperations(ctx context.Context, bottleID int64, skip, limit int) ([]*models.BottleOperation, error) {
	if _, err := s.Bottles.Get(ctx, bottleID); err != nil {
		return nil, err
	}

	skip, limit = clampPagination(skip, limit)
	return s.BottleOperations.ListByBottle(ctx, bottleID, skip, limit)
}

// GetBottleOperation retrieves a single reading by its own id
func (s *TrackService) GetBottleOperation(ctx context.Context, id int64) (*models.BottleOperation, error) {
	return s.BottleOperations.Get(ctx, id)
}

// DeleteBottleOperation removes a single reading, returning its last state
func (s *TrackService) DeleteBottleOperation(ctx context.Context, id int64) (*models.BottleOperation, error) {
	op, err := s.BottleOperations.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.BottleOperations.Delete(ctx, id); err != nil {
		return nil, err
	}

	nuts.L.Infof("[BottleService] Deleted operation %d", id)
	return op, nil
}
