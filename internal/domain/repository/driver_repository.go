package repository

import (
	"context"

	"ummana/internal/domain/entity"
)

// DriverRepository manages ETS drivers.
type DriverRepository interface {
	ListDrivers(ctx context.Context) ([]entity.Driver, error)

	// CreateDriver registers a driver and returns the ID assigned by the directory.
	CreateDriver(ctx context.Context, driver *entity.Driver) (string, error)

	UpdateDriver(ctx context.Context, driver *entity.Driver) error

	DeleteDriver(ctx context.Context, id string) error
}
