package handler

import (
	"net/http"

	"ummana/internal/delivery/http/response"
	"ummana/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NavigationHandlerParams holds dependencies for NavigationHandler, injected by Fx.
type NavigationHandlerParams struct {
	fx.In

	NavigationUC usecase.NavigationUsecase
}

// NavigationHandler serves the sidebar of the console shell.
type NavigationHandler struct {
	navigationUC usecase.NavigationUsecase
}

// NewNavigationHandler is the constructor for NavigationHandler
func NewNavigationHandler(params NavigationHandlerParams) *NavigationHandler {
	return &NavigationHandler{
		navigationUC: params.NavigationUC,
	}
}

// GetNavigation lists the sidebar entries, flagging the one named by ?active=.
func (h *NavigationHandler) GetNavigation(c echo.Context) error {
	items := h.navigationUC.Items(c.QueryParam("active"))

	return response.Success(c, http.StatusOK, items, "Navigation retrieved successfully")
}
