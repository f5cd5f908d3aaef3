package handler

import (
	"log/slog"
	"net/http"

	"ummana/internal/delivery/http/response"
	"ummana/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DriverHandlerParams holds dependencies for DriverHandler, injected by Fx.
type DriverHandlerParams struct {
	fx.In

	DriverUC usecase.DriverUsecase
	Logger   *slog.Logger
}

// DriverHandler holds dependencies for ETS driver handlers
type DriverHandler struct {
	driverUC usecase.DriverUsecase
	logger   *slog.Logger
}

// NewDriverHandler is the constructor for DriverHandler
func NewDriverHandler(params DriverHandlerParams) *DriverHandler {
	return &DriverHandler{
		driverUC: params.DriverUC,
		logger:   params.Logger,
	}
}

// ListDriversRequest carries the search box and filter dropdowns.
type ListDriversRequest struct {
	Search      string `query:"q" validate:"max=200"`
	Ward        string `query:"ward" validate:"max=200"`
	LGA         string `query:"lga" validate:"max=200"`
	VehicleType string `query:"vehicleType" validate:"max=32"`
}

// DriverRequest is the body of a driver create or update.
type DriverRequest struct {
	FirstName        string   `json:"firstName" validate:"max=100"`
	LastName         string   `json:"lastName" validate:"max=100"`
	PhoneNumber      string   `json:"phoneNumber" validate:"max=32"`
	VehicleType      string   `json:"vehicleType" validate:"max=32"`
	CatchmentAreaIDs []string `json:"catchmentAreaIds" validate:"max=32,dive,max=64"`
}

func (r *DriverRequest) toInput() *usecase.DriverInput {
	return &usecase.DriverInput{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		PhoneNumber:      r.PhoneNumber,
		VehicleType:      r.VehicleType,
		CatchmentAreaIDs: r.CatchmentAreaIDs,
	}
}

// ListDrivers handles the filtered driver list
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	var req ListDriversRequest
	if err := bindQuery(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid driver filters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	page, err := h.driverUC.List(c.Request().Context(), usecase.DriverQuery{
		Search:      req.Search,
		Ward:        req.Ward,
		LGA:         req.LGA,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "ETS drivers retrieved successfully")
}

// ReloadDrivers drops the cached drivers and communities and lists again
func (h *DriverHandler) ReloadDrivers(c echo.Context) error {
	h.driverUC.Reload(c.Request().Context())

	return h.ListDrivers(c)
}

// CreateDriver handles creating an ETS driver
func (h *DriverHandler) CreateDriver(c echo.Context) error {
	var req DriverRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid driver input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	driver, err := h.driverUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, driver, "ETS driver created successfully")
}

// UpdateDriver handles updating an ETS driver
func (h *DriverHandler) UpdateDriver(c echo.Context) error {
	var req DriverRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid driver input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	driver, err := h.driverUC.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, driver, "ETS driver updated successfully")
}
