package repository

import (
	"context"

	"ummana/internal/domain/entity"
)

// FacilityRepository manages health facilities.
type FacilityRepository interface {
	ListFacilities(ctx context.Context) ([]entity.Facility, error)

	// CreateFacility registers a facility and returns the ID assigned by the directory.
	CreateFacility(ctx context.Context, facility *entity.Facility) (string, error)

	UpdateFacility(ctx context.Context, facility *entity.Facility) error

	DeleteFacility(ctx context.Context, id string) error
}
