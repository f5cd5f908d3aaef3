package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"ummana/config"
	"ummana/internal/delivery"
	"ummana/internal/delivery/middleware"
	"ummana/internal/delivery/worker/handler"
	"ummana/internal/domain/lifecycle"
	"ummana/internal/errors"
	"ummana/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// PushPath is where the Pub/Sub push subscription delivers directory events.
const PushPath = "/push"

// syncServer receives directory events published by other console instances.
type syncServer struct {
	hostPort   string
	enabled    bool
	instanceID string
	logger     *slog.Logger
	server     *echo.Echo
}

// ServerParams holds dependencies for the sync server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics `optional:"true"`
	PushHandler *handler.PushHandler
}

// NewServer creates the push endpoint server. It is always provided; Serve is a
// no-op unless worker.enabled is set.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &syncServer{
		instanceID: params.Cfg.Env.InstanceID,
		logger:     params.Logger,
	}
	if w := params.Cfg.Worker; w != nil && w.Enabled {
		srv.enabled = true
		srv.hostPort = net.JoinHostPort("0.0.0.0", strconv.Itoa(w.Port))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg, params.Metrics).Handle)

	e.GET("/health", srv.health)
	e.POST(PushPath, params.PushHandler.HandlePush)
	srv.server = e

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *syncServer) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":     "ok",
		"instanceId": s.instanceID,
	})
}

func (s *syncServer) Serve(_ context.Context) error {
	if !s.enabled {
		s.logger.Info("Directory sync endpoint disabled")

		return nil
	}

	s.logger.Info("Starting directory sync endpoint",
		slog.String("host_port", s.hostPort),
		slog.String("instance_id", s.instanceID),
	)
	if err := s.server.Start(s.hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *syncServer) stop(ctx context.Context) error {
	if !s.enabled {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down directory sync endpoint")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
