package handler

import (
	"log/slog"
	"net/http"

	"ummana/internal/delivery/http/response"
	"ummana/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const mimeGeoJSON = "application/geo+json"

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// MapHandler serves map layers and community location tools.
type MapHandler struct {
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// NearestFacilitiesRequest limits and filters the nearest facility ranking.
type NearestFacilitiesRequest struct {
	Limit        int      `query:"limit" validate:"min=0,max=100"`
	Capabilities []string `query:"capability" validate:"max=32,dive,max=64"`
}

// GetCommunityLayer serves communities as a GeoJSON FeatureCollection
func (h *MapHandler) GetCommunityLayer(c echo.Context) error {
	layer, err := h.mapUC.CommunityLayer(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	body, err := layer.MarshalJSON()
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}

// GetFacilityLayer serves facilities as a GeoJSON FeatureCollection
func (h *MapHandler) GetFacilityLayer(c echo.Context) error {
	layer, err := h.mapUC.FacilityLayer(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	body, err := layer.MarshalJSON()
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}

// GetNearestFacilities ranks facilities by distance from a community
func (h *MapHandler) GetNearestFacilities(c echo.Context) error {
	var req NearestFacilitiesRequest
	if err := bindQuery(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nearest facility query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	nearby, err := h.mapUC.NearestFacilities(c.Request().Context(), c.Param("id"), req.Limit, capabilityKeys(req.Capabilities))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nearby, "Nearest facilities retrieved successfully")
}

// GetCommunityQRCode serves a PNG QR code of the community location
func (h *MapHandler) GetCommunityQRCode(c echo.Context) error {
	png, err := h.mapUC.CommunityQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
