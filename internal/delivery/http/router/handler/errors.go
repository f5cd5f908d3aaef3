package handler

import (
	"ummana/internal/delivery/http/response"
	domainerrors "ummana/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// handleAppError renders business errors and leaves the rest to the error middleware.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}


// bindQuery binds query parameters whatever the method, so list filters also
// apply to the POST reload endpoints.
func bindQuery(c echo.Context, req any) error {
	return (&echo.DefaultBinder{}).BindQueryParams(c, req)
}
