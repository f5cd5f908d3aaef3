package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/delivery/http/response"
	domainerrors "ummana/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails string
	}{
		{
			name:        "app error",
			err:         domainerrors.NewValidationError("Latitude must be between -90 and 90 degrees."),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "Latitude must be between -90 and 90 degrees.",
		},
		{
			name:        "wrapped app error",
			err:         errors.Wrap(domainerrors.ErrDraftNotFound.WithDetails("draft-1"), "submit"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "DRAFT_NOT_FOUND",
			wantMessage: "Form is no longer open",
			wantDetails: "draft-1",
		},
		{
			name:        "server side details are hidden",
			err:         domainerrors.ErrDirectoryUnavailable.WithDetails("dial tcp: i/o timeout"),
			wantStatus:  http.StatusBadGateway,
			wantCode:    "DIRECTORY_UNAVAILABLE",
			wantMessage: "Directory service unavailable",
		},
		{
			name:        "echo error",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "method not allowed",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			deliverycontext.SetEchoRequestID(c, "req-1")

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			var got response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.False(t, got.Success)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, "req-1", got.RequestID)
			require.NotNil(t, got.Error)
			assert.Equal(t, tt.wantCode, got.Error.Code)
			assert.Equal(t, tt.wantDetails, got.Error.Details)
		})
	}
}

func TestErrorMiddleware_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewErrorMiddleware(slog.Default()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, "done", rec.Body.String())
}
