package handler

import (
	"log/slog"
	"net/http"

	"ummana/internal/delivery/http/response"
	"ummana/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommunityHandlerParams holds dependencies for CommunityHandler, injected by Fx.
type CommunityHandlerParams struct {
	fx.In

	CommunityUC usecase.CommunityUsecase
	Logger      *slog.Logger
}

// CommunityHandler holds dependencies for community handlers
type CommunityHandler struct {
	communityUC usecase.CommunityUsecase
	logger      *slog.Logger
}

// NewCommunityHandler is the constructor for CommunityHandler
func NewCommunityHandler(params CommunityHandlerParams) *CommunityHandler {
	return &CommunityHandler{
		communityUC: params.CommunityUC,
		logger:      params.Logger,
	}
}

// ListCommunitiesRequest carries the search box and filter dropdowns.
type ListCommunitiesRequest struct {
	Search string `query:"q" validate:"max=200"`
	Ward   string `query:"ward" validate:"max=200"`
	LGA    string `query:"lga" validate:"max=200"`
}

// CommunityRequest is the body of a community create or update.
// Coordinates are text so the console can report its own parse errors.
type CommunityRequest struct {
	Name       string `json:"name" validate:"max=200"`
	Settlement string `json:"settlement" validate:"max=200"`
	Ward       string `json:"ward" validate:"max=200"`
	LGA        string `json:"lga" validate:"max=200"`
	Lat        string `json:"lat" validate:"max=32"`
	Lng        string `json:"lng" validate:"max=32"`
}

func (r *CommunityRequest) toInput() *usecase.CommunityInput {
	return &usecase.CommunityInput{
		Name:       r.Name,
		Settlement: r.Settlement,
		Ward:       r.Ward,
		LGA:        r.LGA,
		Lat:        r.Lat,
		Lng:        r.Lng,
	}
}

// ListCommunities handles the filtered community list
func (h *CommunityHandler) ListCommunities(c echo.Context) error {
	var req ListCommunitiesRequest
	if err := bindQuery(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid community filters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	page, err := h.communityUC.List(c.Request().Context(), usecase.CommunityQuery{
		Search: req.Search,
		Ward:   req.Ward,
		LGA:    req.LGA,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "Communities retrieved successfully")
}

// ReloadCommunities drops the cached list so the next read fetches again
func (h *CommunityHandler) ReloadCommunities(c echo.Context) error {
	h.communityUC.Reload(c.Request().Context())

	return h.ListCommunities(c)
}

// CreateCommunity handles creating a community
func (h *CommunityHandler) CreateCommunity(c echo.Context) error {
	var req CommunityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid community input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	community, err := h.communityUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, community, "Community created successfully")
}

// UpdateCommunity handles updating a community
func (h *CommunityHandler) UpdateCommunity(c echo.Context) error {
	var req CommunityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid community input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	community, err := h.communityUC.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, community, "Community updated successfully")
}
