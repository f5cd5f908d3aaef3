package repository

import (
	"context"

	"ummana/internal/domain/entity"
)

// CommunityRepository manages catchment areas.
type CommunityRepository interface {
	// ListCommunities returns every community known to the directory.
	ListCommunities(ctx context.Context) ([]entity.Community, error)

	// CreateCommunity registers a community and returns the ID assigned by the directory.
	CreateCommunity(ctx context.Context, community *entity.Community) (string, error)

	// UpdateCommunity replaces the mutable attributes of community.ID.
	UpdateCommunity(ctx context.Context, community *entity.Community) error

	DeleteCommunity(ctx context.Context, id string) error
}
