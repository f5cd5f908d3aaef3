package impl

import (
	"context"
	"log/slog"

	"ummana/config"
	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/domain/entity"
	domainerrors "ummana/internal/domain/errors"
	"ummana/internal/domain/service"
	"ummana/internal/usecase"
)

type syncService struct {
	instanceID string
	views      *Views
	logger     *slog.Logger
}

// NewSyncService creates the service that keeps views in step with other instances
func NewSyncService(cfg *config.Config, views *Views, logger *slog.Logger) usecase.SyncUsecase {
	return &syncService{
		instanceID: cfg.Env.InstanceID,
		views:      views,
		logger:     logger,
	}
}

func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *syncService) ApplyRemoteChange(ctx context.Context, event *service.DirectoryEvent) (bool, error) {
	if event.Origin != "" && event.Origin == srv.instanceID {
		return false, nil
	}

	switch event.Kind {
	case entity.KindCommunity:
		// Agent and driver rows resolve their areas from this view too.
		srv.views.Communities.Reset()
	case entity.KindAgent:
		srv.views.Agents.Reset()
	case entity.KindDriver:
		srv.views.Drivers.Reset()
	case entity.KindFacility:
		srv.views.Facilities.Reset()
	default:
		return false, domainerrors.ErrUnknownKind.WithDetails(string(event.Kind))
	}

	srv.log(ctx).Info("Dropped cached list after remote change",
		slog.String("kind", string(event.Kind)),
		slog.String("action", string(event.Action)),
		slog.String("id", event.ID),
		slog.String("origin", event.Origin),
	)

	return true, nil
}
