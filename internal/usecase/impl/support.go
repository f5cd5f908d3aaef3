package impl

import (
	"context"
	"fmt"
	"log/slog"

	"ummana/config"
	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/domain/entity"
	domainerrors "ummana/internal/domain/errors"
	"ummana/internal/domain/repository"
	"ummana/internal/domain/service"
	"ummana/internal/errors"
	"ummana/internal/listing"
)

// Messages shown when a list cannot be loaded.
const (
	msgLoadCommunities = "Failed to load communities. Please try again later."
	msgLoadFacilities  = "Failed to load facilities. Please try again later."
	msgLoadData        = "Failed to load data. Please try again later."
)

// Fallback messages for failed saves when the directory gives no payload.
const (
	msgCreateCommunity = "Failed to register community. Please try again."
	msgUpdateCommunity = "Failed to update community. Please try again."
	msgSaveAgent       = "Failed to save CHIPS agent. Please try again."
	msgSaveDriver      = "Failed to save ETS driver. Please try again."
	msgCreateFacility  = "Failed to register facility. Please try again."
	msgUpdateFacility  = "Failed to update facility. Please try again."
	msgDeleteFormat    = "Failed to delete %s. Please try again."
)

func deleteMessage(kind entity.Kind) string {
	return fmt.Sprintf(msgDeleteFormat, kind.Label())
}

// saveError maps a failed directory mutation onto the error shown in the form.
// A rejection carries the directory payload verbatim, anything else the fallback.
func saveError(err error, fallback string) error {
	if remote, ok := errors.Find[*repository.RemoteError](err); ok {
		return domainerrors.NewDirectoryRejected(remote.StatusCode, remote.Payload, fallback)
	}

	return domainerrors.ErrDirectoryUnavailable.WithMessage(fallback).WithDetails(err.Error())
}

// loadError maps a failed list fetch onto the list page error.
func loadError(err error, message string) error {
	return domainerrors.ErrListLoadFailed.WithMessage(message).WithDetails(err.Error())
}

func maxLinkedCommunities(cfg *config.Config) int {
	if cfg == nil || cfg.Forms == nil {
		return 0
	}

	return cfg.Forms.MaxLinkedCommunities
}

// resolveLinked checks every linked ID against the loaded community list and
// returns the index used to build the saved row.
func resolveLinked(ctx context.Context, communities *listing.View[entity.Community], ids []string) (map[string]entity.Community, error) {
	loaded, err := communities.Load(ctx)
	if err != nil {
		return nil, loadError(err, msgLoadCommunities)
	}

	index := entity.IndexCommunities(loaded)
	for _, id := range ids {
		if _, ok := index[id]; !ok {
			return nil, domainerrors.ErrUnknownCommunity.WithDetails(id)
		}
	}

	return index, nil
}

func notFound(kind entity.Kind, id string) error {
	return domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("%s %q is not loaded", kind, id))
}

// changeNotifier publishes directory change events. A failed publish is
// logged and never fails the mutation that caused it.
type changeNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newChangeNotifier(publisher service.EventPublisher, logger *slog.Logger) changeNotifier {
	return changeNotifier{publisher: publisher, logger: logger}
}

func (n changeNotifier) notify(ctx context.Context, kind entity.Kind, action service.DirectoryAction, id string) {
	if n.publisher == nil {
		return
	}

	event := &service.DirectoryEvent{
		RequestID: deliverycontext.RequestID(ctx),
		Kind:      kind,
		Action:    action,
		ID:        id,
	}
	if err := n.publisher.PublishDirectoryEvent(ctx, event); err != nil {
		deliverycontext.LoggerOr(ctx, n.logger).Warn("Failed to publish directory event",
			slog.Any("error", err),
			slog.String("kind", string(kind)),
			slog.String("action", string(action)),
			slog.String("id", id),
		)
	}
}
