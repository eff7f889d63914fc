package trackservice

import (
	"github.com/itsatony/gartentrack/internal/errors"
	"github.com/itsatony/gartentrack/internal/repository"
)

// defaultPageSize is applied whenever a caller omits or zeroes the limit.
const defaultPageSize = 100

// TrackService contains all repositories and service-wide dependencies.
// Devices and bottles live in separate stores; the service never mixes
// repository calls across the two domains.
type TrackService struct {
	Devices          repository.DeviceRepository
	DeviceOperations repository.DeviceOperationRepository
	Bottles          repository.BottleRepository
	BottleOperations repository.BottleOperationRepository
}

// New creates a new TrackService instance
func New(
	devices repository.DeviceRepository,
	deviceOperations repository.DeviceOperationRepository,
	bottles repository.BottleRepository,
	bottleOperations repository.BottleOperationRepository,
) *TrackService {
	return &TrackService{
		Devices:          devices,
		DeviceOperations: deviceOperations,
		Bottles:          bottles,
		BottleOperations: bottleOperations,
	}
}

// Validate checks if all required repositories are initialized
func (s *TrackService) Validate() error {
	if s.Devices == nil {
		return ErrMissingRepository("devices")
	}
	if s.DeviceOperations == nil {
		return ErrMissingRepository("deviceOperations")
	}
	if s.Bottles == nil {
		return ErrMissingRepository("bottles")
	}
	if s.BottleOperations == nil {
		return ErrMissingRepository("bottleOperations")
	}
	return nil
}

func ErrMissingRepository(name string) error {
	return errors.NewInternalError("missing repository: "+name, nil)
}

// clampPagination normalizes skip/limit query values.
func clampPagination(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	return skip, limit
}
