package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/domain/entity"
	domainerrors "ummana/internal/domain/errors"
	"ummana/internal/domain/service"
	"ummana/internal/usecase"

	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

const msgNoLocation = "This community has no location."

type mapService struct {
	communities usecase.CommunityUsecase
	facilities  usecase.FacilityUsecase
	qrCode      service.QRCodeService
	logger      *slog.Logger
}

// NewMapService creates a new map service instance
func NewMapService(
	communities usecase.CommunityUsecase,
	facilities usecase.FacilityUsecase,
	qrCode service.QRCodeService,
	logger *slog.Logger,
) usecase.MapUsecase {
	return &mapService{
		communities: communities,
		facilities:  facilities,
		qrCode:      qrCode,
		logger:      logger,
	}
}

func (srv *mapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// CommunityLayer skips communities without coordinates.
func (srv *mapService) CommunityLayer(ctx context.Context) (*geojson.FeatureCollection, error) {
	communities, err := srv.communities.All(ctx)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, c := range communities {
		if c.Location == nil {
			continue
		}

		f := geojson.NewFeature(c.Location.Point())
		f.ID = c.ID
		f.Properties["kind"] = string(entity.KindCommunity)
		f.Properties["name"] = c.Name
		f.Properties["settlement"] = c.Settlement
		f.Properties["ward"] = c.Ward
		f.Properties["lga"] = c.LGA
		fc.Append(f)
	}

	return fc, nil
}

func (srv *mapService) FacilityLayer(ctx context.Context) (*geojson.FeatureCollection, error) {
	page, err := srv.facilities.List(ctx, usecase.FacilityQuery{})
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, row := range page.Items {
		f := geojson.NewFeature(row.Coordinates().Point())
		f.ID = row.ID
		f.Properties["kind"] = string(entity.KindFacility)
		f.Properties["name"] = row.Name
		f.Properties["ward"] = row.Ward
		f.Properties["lga"] = row.LGA
		f.Properties["facilityType"] = row.FacilityType
		f.Properties["capabilityCount"] = row.CapabilityCount
		f.Properties["capabilitySummary"] = row.CapabilitySummary
		fc.Append(f)
	}

	return fc, nil
}

// NearestFacilities ranks by haversine distance; ties keep list order.
func (srv *mapService) NearestFacilities(
	ctx context.Context,
	communityID string,
	limit int,
	required []entity.CapabilityKey,
) ([]usecase.NearbyFacility, error) {
	for _, key := range required {
		if !entity.IsCapabilityKey(key) {
			return nil, domainerrors.ErrUnknownCapability.WithDetails(string(key))
		}
	}

	origin, err := srv.location(ctx, communityID)
	if err != nil {
		return nil, err
	}

	page, err := srv.facilities.List(ctx, usecase.FacilityQuery{Capabilities: required})
	if err != nil {
		return nil, err
	}

	nearby := make([]usecase.NearbyFacility, 0, len(page.Items))
	for _, row := range page.Items {
		meters := geo.DistanceHaversine(origin.Point(), row.Coordinates().Point())
		nearby = append(nearby, usecase.NearbyFacility{FacilityRow: row, DistanceKm: meters / 1000})
	}
	slices.SortStableFunc(nearby, func(a, b usecase.NearbyFacility) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})
	if limit > 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}

	srv.log(ctx).Debug("Nearest facilities ranked",
		slog.String("community_id", communityID),
		slog.Int("count", len(nearby)),
	)

	return nearby, nil
}

func (srv *mapService) CommunityQRCode(ctx context.Context, communityID string) ([]byte, error) {
	community, err := srv.communities.Get(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if community.Location == nil {
		return nil, domainerrors.NewValidationError(msgNoLocation)
	}

	png, err := srv.qrCode.GenerateLocationQR(community.Name, *community.Location)
	if err != nil {
		srv.log(ctx).Error("Failed to generate QR code", slog.Any("error", err), slog.String("community_id", communityID))

		return nil, err
	}

	return png, nil
}

func (srv *mapService) location(ctx context.Context, communityID string) (entity.Coordinates, error) {
	community, err := srv.communities.Get(ctx, communityID)
	if err != nil {
		return entity.Coordinates{}, err
	}
	if community.Location == nil {
		return entity.Coordinates{}, domainerrors.NewValidationError(msgNoLocation)
	}

	return *community.Location, nil
}
