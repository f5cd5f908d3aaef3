package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"ummana/config"
	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs console API requests and counts them.
// Successful requests are only logged in debug mode; failures always are.
type LoggerMiddleware struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	debug   bool
}

// NewLoggerMiddleware creates a new logger middleware. m may be nil.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, m *metrics.Metrics) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:  logger,
		metrics: m,
		debug:   config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler has not run yet; report the status it will write.
			status = statusOf(err)
		}

		m.metrics.ObserveHTTPRequest(c.Request().Method, c.Path(), status)
		if m.debug || status >= http.StatusInternalServerError {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	logger := deliverycontext.LoggerOr(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
