package handler

import (
	"net/http"
	"testing"

	"ummana/internal/domain/entity"
	mockUC "ummana/internal/mocks/usecase"
	"ummana/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFacilityHandler(t *testing.T) {
	uc := mockUC.NewMockFacilityUsecase(t)
	h := NewFacilityHandler(FacilityHandlerParams{FacilityUC: uc})

	e := newTestEcho()
	e.GET("/facilities", h.ListFacilities)
	e.GET("/facilities/catalog", h.GetCatalog)
	e.POST("/facilities/reload", h.ReloadFacilities)
	e.POST("/facilities", h.CreateFacility)
	e.PUT("/facilities/:id", h.UpdateFacility)

	t.Run("list requires every capability", func(t *testing.T) {
		uc.EXPECT().List(mock.Anything, usecase.FacilityQuery{
			FacilityType: "General Hospital",
			Capabilities: []entity.CapabilityKey{entity.CapDoctor, entity.CapTheater},
		}).Return(&usecase.FacilityPage{
			Items: []usecase.FacilityRow{{
				Facility:          entity.Facility{ID: "f1", Name: "Murtala Muhammad"},
				CapabilityCount:   3,
				CapabilitySummary: "Doctor, Theater, Blood",
			}},
			Total: 3,
		}, nil).Once()

		rec := serve(e, http.MethodGet, "/facilities?facilityType=General+Hospital&capability=has_doctor&capability=has_theater", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decodeData[usecase.FacilityPage](t, rec)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Doctor, Theater, Blood", got.Items[0].CapabilitySummary)
	})

	t.Run("reload", func(t *testing.T) {
		uc.EXPECT().Reload(mock.Anything).Return().Once()
		uc.EXPECT().List(mock.Anything, usecase.FacilityQuery{}).Return(&usecase.FacilityPage{}, nil).Once()

		rec := serve(e, http.MethodPost, "/facilities/reload", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("catalog", func(t *testing.T) {
		uc.EXPECT().Catalog().Return(&usecase.FacilityCatalog{
			FacilityTypes: entity.FacilityTypes(),
			Capabilities:  entity.Capabilities(),
		}).Once()

		rec := serve(e, http.MethodGet, "/facilities/catalog", "")

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[usecase.FacilityCatalog](t, rec)
		assert.Len(t, got.FacilityTypes, 7)
		assert.Len(t, got.Capabilities, 19)
	})

	t.Run("create passes capability flags", func(t *testing.T) {
		uc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in *usecase.FacilityInput) bool {
			return in.Name == "Gwale PHC" && in.Capabilities[entity.CapDoctor] && !in.Capabilities[entity.CapBlood]
		})).Return(&usecase.FacilityRow{Facility: entity.Facility{ID: "f9"}}, nil).Once()

		rec := serve(e, http.MethodPost, "/facilities",
			`{"name":"Gwale PHC","ward":"Gwale","lga":"Gwale","lat":"11.98","lng":"8.49","facilityType":"Primary Health Center","capabilities":{"has_doctor":true,"has_blood":false}}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "f9", decodeData[usecase.FacilityRow](t, rec).ID)
	})

	t.Run("update", func(t *testing.T) {
		uc.EXPECT().Update(mock.Anything, "f1", mock.Anything).
			Return(&usecase.FacilityRow{Facility: entity.Facility{ID: "f1"}}, nil).Once()

		rec := serve(e, http.MethodPut, "/facilities/f1", `{"name":"Murtala Muhammad"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
