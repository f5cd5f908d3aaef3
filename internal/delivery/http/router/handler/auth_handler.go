package handler

import (
	domainerrors "ummana/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Login is a placeholder until the console gets real sign-in.
func Login(c echo.Context) error {
	return handleAppError(c, domainerrors.ErrNotImplemented.WithDetails("sign-in is not available yet"))
}
