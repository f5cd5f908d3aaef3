package handler

import (
	"log/slog"
	"net/http"

	"ummana/internal/delivery/http/response"
	"ummana/internal/domain/entity"
	"ummana/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FacilityHandlerParams holds dependencies for FacilityHandler, injected by Fx.
type FacilityHandlerParams struct {
	fx.In

	FacilityUC usecase.FacilityUsecase
	Logger     *slog.Logger
}

// FacilityHandler holds dependencies for health facility handlers
type FacilityHandler struct {
	facilityUC usecase.FacilityUsecase
	logger     *slog.Logger
}

// NewFacilityHandler is the constructor for FacilityHandler
func NewFacilityHandler(params FacilityHandlerParams) *FacilityHandler {
	return &FacilityHandler{
		facilityUC: params.FacilityUC,
		logger:     params.Logger,
	}
}

// ListFacilitiesRequest carries the search box, the dropdowns and the
// repeated capability filter (?capability=has_doctor&capability=has_blood).
type ListFacilitiesRequest struct {
	Search       string   `query:"q" validate:"max=200"`
	Ward         string   `query:"ward" validate:"max=200"`
	LGA          string   `query:"lga" validate:"max=200"`
	FacilityType string   `query:"facilityType" validate:"max=100"`
	Capabilities []string `query:"capability" validate:"max=32,dive,max=64"`
}

// FacilityRequest is the body of a facility create or update.
type FacilityRequest struct {
	Name         string               `json:"name" validate:"max=200"`
	Ward         string               `json:"ward" validate:"max=200"`
	LGA          string               `json:"lga" validate:"max=200"`
	Lat          string               `json:"lat" validate:"max=32"`
	Lng          string               `json:"lng" validate:"max=32"`
	FacilityType string               `json:"facilityType" validate:"max=100"`
	Capabilities entity.CapabilitySet `json:"capabilities"`
}

func (r *FacilityRequest) toInput() *usecase.FacilityInput {
	return &usecase.FacilityInput{
		Name:         r.Name,
		Ward:         r.Ward,
		LGA:          r.LGA,
		Lat:          r.Lat,
		Lng:          r.Lng,
		FacilityType: r.FacilityType,
		Capabilities: r.Capabilities,
	}
}

// ListFacilities handles the filtered facility list
func (h *FacilityHandler) ListFacilities(c echo.Context) error {
	var req ListFacilitiesRequest
	if err := bindQuery(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid facility filters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	page, err := h.facilityUC.List(c.Request().Context(), usecase.FacilityQuery{
		Search:       req.Search,
		Ward:         req.Ward,
		LGA:          req.LGA,
		FacilityType: req.FacilityType,
		Capabilities: capabilityKeys(req.Capabilities),
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "Facilities retrieved successfully")
}

// ReloadFacilities drops the cached list and lists again
func (h *FacilityHandler) ReloadFacilities(c echo.Context) error {
	h.facilityUC.Reload(c.Request().Context())

	return h.ListFacilities(c)
}

// GetCatalog lists facility types and capability groups for the facility form
func (h *FacilityHandler) GetCatalog(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.facilityUC.Catalog(), "Facility catalog retrieved successfully")
}

// CreateFacility handles creating a facility
func (h *FacilityHandler) CreateFacility(c echo.Context) error {
	var req FacilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid facility input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	facility, err := h.facilityUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, facility, "Facility created successfully")
}

// UpdateFacility handles updating a facility
func (h *FacilityHandler) UpdateFacility(c echo.Context) error {
	var req FacilityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid facility input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	facility, err := h.facilityUC.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, facility, "Facility updated successfully")
}

func capabilityKeys(values []string) []entity.CapabilityKey {
	if len(values) == 0 {
		return nil
	}

	keys := make([]entity.CapabilityKey, 0, len(values))
	for _, v := range values {
		keys = append(keys, entity.CapabilityKey(v))
	}

	return keys
}
