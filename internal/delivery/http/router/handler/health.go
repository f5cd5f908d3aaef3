package handler

import (
	"net/http"

	"ummana/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the console process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
