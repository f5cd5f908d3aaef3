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

// DeletionHandlerParams holds dependencies for DeletionHandler, injected by Fx.
type DeletionHandlerParams struct {
	fx.In

	ConfirmationUC usecase.ConfirmationUsecase
	Logger         *slog.Logger
}

// DeletionHandler runs the ask-then-confirm delete flow for every kind.
type DeletionHandler struct {
	confirmationUC usecase.ConfirmationUsecase
	logger         *slog.Logger
}

// NewDeletionHandler is the constructor for DeletionHandler
func NewDeletionHandler(params DeletionHandlerParams) *DeletionHandler {
	return &DeletionHandler{
		confirmationUC: params.ConfirmationUC,
		logger:         params.Logger,
	}
}

// RequestDelete returns a handler that asks to delete the :id record of kind.
func (h *DeletionHandler) RequestDelete(kind entity.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		confirmation, err := h.confirmationUC.RequestDelete(c.Request().Context(), kind, c.Param("id"))
		if err != nil {
			return handleAppError(c, err)
		}

		return response.Success(c, http.StatusAccepted, confirmation, "Are you sure you want to delete "+confirmation.Name+"?")
	}
}

// ConfirmDelete deletes the record behind a pending confirmation
func (h *DeletionHandler) ConfirmDelete(c echo.Context) error {
	confirmation, err := h.confirmationUC.Confirm(c.Request().Context(), c.Param("token"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, confirmation, "Deleted successfully")
}

// CancelDelete drops a pending confirmation
func (h *DeletionHandler) CancelDelete(c echo.Context) error {
	if err := h.confirmationUC.Cancel(c.Request().Context(), c.Param("token")); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Delete cancelled")
}
