package main

import (
	"context"
	"log/slog"
	"os"

	"ummana/config"
	"ummana/internal/delivery"
	"ummana/internal/delivery/http"
	"ummana/internal/delivery/http/router/handler"
	"ummana/internal/delivery/worker"
	workerhandler "ummana/internal/delivery/worker/handler"
	"ummana/internal/domain/repository"
	"ummana/internal/domain/service"
	"ummana/internal/infra/directory"
	logs "ummana/internal/infra/log"
	"ummana/internal/infra/metrics"
	"ummana/internal/infra/pubsub"
	"ummana/internal/infra/qrcode"
	"ummana/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newMetrics,
	)
}

// newMetrics returns nil when metrics are disabled; every consumer accepts a nil *Metrics.
func newMetrics(cfg *config.Config) *metrics.Metrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return nil
	}

	return metrics.New()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				directory.NewClient,
				fx.As(new(repository.CommunityRepository)),
				fx.As(new(repository.AgentRepository)),
				fx.As(new(repository.DriverRepository)),
				fx.As(new(repository.FacilityRepository)),
			),
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(defaultQRCodeSize, defaultQRCodeLevel)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewViews,
			impl.NewCommunityService,
			impl.NewAgentService,
			impl.NewDriverService,
			impl.NewFacilityService,
			impl.NewFormService,
			impl.NewConfirmationService,
			impl.NewMapService,
			impl.NewNavigationService,
			impl.NewSyncService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNavigationHandler,
			handler.NewCommunityHandler,
			handler.NewAgentHandler,
			handler.NewDriverHandler,
			handler.NewFacilityHandler,
			handler.NewFormHandler,
			handler.NewDeletionHandler,
			handler.NewMapHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
