package usecase

import (
	"context"

	"ummana/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// NearbyFacility is a facility with its great-circle distance from a community.
type NearbyFacility struct {
	FacilityRow
	DistanceKm float64 `json:"distanceKm"`
}

// MapUsecase serves map layers and location tools.
type MapUsecase interface {
	// CommunityLayer has a point feature for every community with a location.
	CommunityLayer(ctx context.Context) (*geojson.FeatureCollection, error)
	FacilityLayer(ctx context.Context) (*geojson.FeatureCollection, error)

	// NearestFacilities ranks facilities having every required capability by
	// distance from the community. limit <= 0 returns all.
	NearestFacilities(ctx context.Context, communityID string, limit int, required []entity.CapabilityKey) ([]NearbyFacility, error)

	// CommunityQRCode renders a PNG QR code of the community location.
	CommunityQRCode(ctx context.Context, communityID string) ([]byte, error)
}
