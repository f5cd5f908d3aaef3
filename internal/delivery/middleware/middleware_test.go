package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ummana/config"
	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/domain/constants"
	domainerrors "ummana/internal/domain/errors"
	"ummana/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "reuses caller id", header: "abc-123", keep: true},
		{name: "mints when missing"},
		{name: "mints when oversized", header: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(constants.HeaderRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var ctxLogger *slog.Logger
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				ctxID = deliverycontext.RequestID(c.Request().Context())
				ctxLogger = deliverycontext.Logger(c.Request().Context())

				return nil
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(constants.HeaderRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, ctxID)
			assert.NotNil(t, ctxLogger)
			if tt.keep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	m := metrics.New()
	cfg := &config.Config{}

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg, m).Handle)
	e.GET("/communities", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/communities/:id/qrcode", func(c echo.Context) error {
		return domainerrors.ErrDirectoryUnavailable
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/communities", nil))
	assert.Empty(t, buf.String(), "successful requests are quiet outside debug")

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/communities/c1/qrcode", nil))
	assert.Contains(t, buf.String(), "status=502")
	assert.Contains(t, buf.String(), "route=/communities/:id/qrcode")

	series, err := testutil.GatherAndCount(m.Registry(), "ummana_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}
