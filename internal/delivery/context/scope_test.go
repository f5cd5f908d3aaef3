package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	reqLogger := fallback.With(slog.String("request_id", "req-1"))

	empty := context.Background()
	assert.Empty(t, RequestID(empty))
	assert.Nil(t, Logger(empty))
	assert.Same(t, fallback, LoggerOr(empty, fallback))

	ctx := WithRequest(empty, "req-1", reqLogger)
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Same(t, reqLogger, Logger(ctx))
	assert.Same(t, reqLogger, LoggerOr(ctx, fallback))

	noLogger := WithRequest(empty, "req-2", nil)
	assert.Equal(t, "req-2", RequestID(noLogger))
	assert.Same(t, fallback, LoggerOr(noLogger, fallback))
}

func TestEchoRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, EchoRequestID(c))

	SetEchoRequestID(c, "req-1")
	assert.Equal(t, "req-1", EchoRequestID(c))
}
