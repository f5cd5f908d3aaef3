// Package context carries the per-request scope (request ID and logger) from the
// delivery layer down to use cases and the directory client.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type scopeKey struct{}

// echoKeyRequestID is where the request ID is kept on the echo context for response envelopes.
const echoKeyRequestID = "request_id"

type scope struct {
	requestID string
	logger    *slog.Logger
}

// WithRequest returns a context carrying the request ID and its request-scoped logger.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope{requestID: requestID, logger: logger})
}

func scopeOf(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s
}

// RequestID returns the request ID carried by ctx, or "".
func RequestID(ctx context.Context) string {
	return scopeOf(ctx).requestID
}

// Logger returns the request-scoped logger carried by ctx, or nil.
func Logger(ctx context.Context) *slog.Logger {
	return scopeOf(ctx).logger
}

// LoggerOr returns the request-scoped logger, falling back to the given one.
func LoggerOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := Logger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetEchoRequestID stores the request ID on the echo context.
func SetEchoRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// EchoRequestID returns the request ID stored on the echo context, or "".
func EchoRequestID(c echo.Context) string {
	id, _ := c.Get(echoKeyRequestID).(string)

	return id
}
