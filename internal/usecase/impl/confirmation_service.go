package impl

import (
	"context"
	"log/slog"
	"sync"

	"ummana/config"
	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/domain/entity"
	domainerrors "ummana/internal/domain/errors"
	"ummana/internal/usecase"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/fx"
)

type ConfirmationParams struct {
	fx.In

	Config      *config.Config
	Communities usecase.CommunityUsecase
	Agents      usecase.AgentUsecase
	Drivers     usecase.DriverUsecase
	Facilities  usecase.FacilityUsecase
	Logger      *slog.Logger
}

type confirmationService struct {
	communities usecase.CommunityUsecase
	agents      usecase.AgentUsecase
	drivers     usecase.DriverUsecase
	facilities  usecase.FacilityUsecase
	logger      *slog.Logger

	// Serializes Confirm so a token deletes at most once.
	mu      sync.Mutex
	pending *expirable.LRU[string, usecase.DeleteConfirmation]
}

// NewConfirmationService creates a new delete confirmation service instance.
// Pending confirmations share the form draft TTL.
func NewConfirmationService(params ConfirmationParams) usecase.ConfirmationUsecase {
	forms := params.Config.Forms
	if forms == nil {
		forms = &config.FormsConfig{}
	}

	return &confirmationService{
		communities: params.Communities,
		agents:      params.Agents,
		drivers:     params.Drivers,
		facilities:  params.Facilities,
		logger:      params.Logger,
		pending:     expirable.NewLRU[string, usecase.DeleteConfirmation](forms.MaxDrafts, nil, forms.DraftTTL),
	}
}

func (srv *confirmationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// RequestDelete looks the record up in its loaded list and holds a pending
// confirmation naming it. Nothing is deleted yet.
func (srv *confirmationService) RequestDelete(ctx context.Context, kind entity.Kind, id string) (*usecase.DeleteConfirmation, error) {
	name, err := srv.displayName(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	confirmation := usecase.DeleteConfirmation{
		Token: uuid.New().String(),
		Kind:  kind,
		ID:    id,
		Name:  name,
	}
	srv.pending.Add(confirmation.Token, confirmation)
	srv.log(ctx).Debug("Delete requested",
		slog.String("kind", string(kind)),
		slog.String("id", id),
		slog.String("token", confirmation.Token),
	)

	return &confirmation, nil
}

func (srv *confirmationService) displayName(ctx context.Context, kind entity.Kind, id string) (string, error) {
	switch kind {
	case entity.KindCommunity:
		c, err := srv.communities.Get(ctx, id)
		if err != nil {
			return "", err
		}

		return c.Name, nil
	case entity.KindAgent:
		row, err := srv.agents.Get(ctx, id)
		if err != nil {
			return "", err
		}

		return row.Name, nil
	case entity.KindDriver:
		row, err := srv.drivers.Get(ctx, id)
		if err != nil {
			return "", err
		}

		return row.Name, nil
	case entity.KindFacility:
		row, err := srv.facilities.Get(ctx, id)
		if err != nil {
			return "", err
		}

		return row.Name, nil
	default:
		return "", domainerrors.ErrUnknownKind.WithDetails(string(kind))
	}
}

func (srv *confirmationService) Cancel(ctx context.Context, token string) error {
	if !srv.pending.Remove(token) {
		return domainerrors.ErrConfirmationNotFound.WithDetails(token)
	}
	srv.log(ctx).Debug("Delete cancelled", slog.String("token", token))

	return nil
}

// Confirm deletes the record. A failed delete leaves the confirmation pending
// so the user can retry or cancel.
func (srv *confirmationService) Confirm(ctx context.Context, token string) (*usecase.DeleteConfirmation, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	confirmation, ok := srv.pending.Get(token)
	if !ok {
		return nil, domainerrors.ErrConfirmationNotFound.WithDetails(token)
	}

	if err := srv.delete(ctx, confirmation.Kind, confirmation.ID); err != nil {
		return nil, err
	}
	srv.pending.Remove(token)

	return &confirmation, nil
}

func (srv *confirmationService) delete(ctx context.Context, kind entity.Kind, id string) error {
	switch kind {
	case entity.KindCommunity:
		return srv.communities.Delete(ctx, id)
	case entity.KindAgent:
		return srv.agents.Delete(ctx, id)
	case entity.KindDriver:
		return srv.drivers.Delete(ctx, id)
	case entity.KindFacility:
		return srv.facilities.Delete(ctx, id)
	default:
		return domainerrors.ErrUnknownKind.WithDetails(string(kind))
	}
}
