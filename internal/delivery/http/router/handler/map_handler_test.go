package handler

import (
	"net/http"
	"testing"

	"ummana/internal/domain/entity"
	domainerrors "ummana/internal/domain/errors"
	mockUC "ummana/internal/mocks/usecase"
	"ummana/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMapHandler(t *testing.T) {
	uc := mockUC.NewMockMapUsecase(t)
	h := NewMapHandler(MapHandlerParams{MapUC: uc})

	e := newTestEcho()
	e.GET("/map/communities", h.GetCommunityLayer)
	e.GET("/map/facilities", h.GetFacilityLayer)
	e.GET("/communities/:id/nearest-facilities", h.GetNearestFacilities)
	e.GET("/communities/:id/qrcode", h.GetCommunityQRCode)

	t.Run("community layer is plain geojson", func(t *testing.T) {
		fc := geojson.NewFeatureCollection()
		feature := geojson.NewFeature(orb.Point{8.5, 12.0})
		feature.ID = "c1"
		feature.Properties["name"] = "Dala"
		fc.Append(feature)
		uc.EXPECT().CommunityLayer(mock.Anything).Return(fc, nil).Once()

		rec := serve(e, http.MethodGet, "/map/communities", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, mimeGeoJSON, rec.Header().Get("Content-Type"))
		got, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
		require.NoError(t, err)
		require.Len(t, got.Features, 1)
		assert.Equal(t, orb.Point{8.5, 12.0}, got.Features[0].Geometry)
		assert.Equal(t, "Dala", got.Features[0].Properties.MustString("name"))
	})

	t.Run("facility layer load failure", func(t *testing.T) {
		uc.EXPECT().FacilityLayer(mock.Anything).Return(nil, domainerrors.ErrListLoadFailed).Once()

		requireError(t, serve(e, http.MethodGet, "/map/facilities", ""), http.StatusServiceUnavailable, "LIST_LOAD_FAILED", "")
	})

	t.Run("nearest facilities", func(t *testing.T) {
		uc.EXPECT().NearestFacilities(mock.Anything, "c1", 2, []entity.CapabilityKey{entity.CapBlood}).Return([]usecase.NearbyFacility{
			{FacilityRow: usecase.FacilityRow{Facility: entity.Facility{ID: "f1"}}, DistanceKm: 1.2},
		}, nil).Once()

		rec := serve(e, http.MethodGet, "/communities/c1/nearest-facilities?limit=2&capability=has_blood", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decodeData[[]usecase.NearbyFacility](t, rec)
		require.Len(t, got, 1)
		assert.InDelta(t, 1.2, got[0].DistanceKm, 1e-9)
	})

	t.Run("nearest facilities limit bounds", func(t *testing.T) {
		requireError(t, serve(e, http.MethodGet, "/communities/c1/nearest-facilities?limit=-1", ""), http.StatusBadRequest, "VALIDATION_ERROR", "")
	})

	t.Run("qrcode", func(t *testing.T) {
		png := []byte{0x89, 'P', 'N', 'G'}
		uc.EXPECT().CommunityQRCode(mock.Anything, "c1").Return(png, nil).Once()

		rec := serve(e, http.MethodGet, "/communities/c1/qrcode", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("qrcode without location", func(t *testing.T) {
		uc.EXPECT().CommunityQRCode(mock.Anything, "c3").
			Return(nil, domainerrors.NewValidationError("This community has no location.")).Once()

		requireError(t, serve(e, http.MethodGet, "/communities/c3/qrcode", ""), http.StatusBadRequest, "VALIDATION_FAILED", "This community has no location.")
	})
}
