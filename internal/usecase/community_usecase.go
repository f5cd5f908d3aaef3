package usecase

import (
	"context"

	"ummana/internal/domain/entity"
)

// CommunityQuery narrows the community list. Empty fields match everything.
type CommunityQuery struct {
	Search string
	Ward   string
	LGA    string
}

// CommunityPage is the filtered list plus the facets derived from the full collection.
// Total counts the unfiltered collection.
type CommunityPage struct {
	Items []entity.Community `json:"items"`
	Total int                `json:"total"`
	Wards []string           `json:"wards"`
	LGAs  []string           `json:"lgas"`
}

// CommunityInput is the raw form input. Coordinates stay text until validated.
type CommunityInput struct {
	Name       string `json:"name"`
	Settlement string `json:"settlement"`
	Ward       string `json:"ward"`
	LGA        string `json:"lga"`
	Lat        string `json:"lat"`
	Lng        string `json:"lng"`
}

// CommunityUsecase manages catchment areas.
type CommunityUsecase interface {
	List(ctx context.Context, query CommunityQuery) (*CommunityPage, error)

	// All returns the loaded community set used by pickers and maps.
	All(ctx context.Context) ([]entity.Community, error)
	Get(ctx context.Context, id string) (*entity.Community, error)

	// Reload discards the cached list; the next read fetches again.
	Reload(ctx context.Context)

	Create(ctx context.Context, input *CommunityInput) (*entity.Community, error)
	Update(ctx context.Context, id string, input *CommunityInput) (*entity.Community, error)
	Delete(ctx context.Context, id string) error
}
