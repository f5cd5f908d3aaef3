package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ummana/config"
	deliverycontext "ummana/internal/delivery/context"
	"ummana/internal/domain/constants"
	domainerrors "ummana/internal/domain/errors"
	"ummana/internal/domain/service"
	"ummana/internal/infra/pubsub"
	"ummana/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks a push request's OIDC token for the expected audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler applies directory events delivered by a Pub/Sub push subscription
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  TokenValidator
	logger         *slog.Logger
	syncUC         usecase.SyncUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	SyncUC usecase.SyncUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validateToken: idtoken.Validate,
		logger:        params.Logger,
		syncUC:        params.SyncUC,
	}
	if w := params.Config.Worker; w != nil {
		h.verifyPushAuth = w.VerifyPushAuth
		h.audience = w.Audience
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages are rejected with 400; everything else is acknowledged
// because dropping a cached list can always be retried by the next change.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.log(ctx).Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.log(ctx).Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.log(ctx).Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.DirectoryEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.log(ctx).Error("[Worker] Failed to parse directory event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if event.Origin == "" {
		event.Origin = pushMsg.Message.Attributes[constants.EventAttributeOrigin]
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequest(ctx, requestID, reqLogger)

	applied, err := h.syncUC.ApplyRemoteChange(ctx, &event)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			reqLogger.Warn("[Worker] Ignoring directory event",
				slog.String("message_id", pushMsg.Message.MessageID),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Failed to apply directory event", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Debug("[Worker] Directory event processed",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("kind", string(event.Kind)),
		slog.Bool("applied", applied),
	)

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, h.logger)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.DirectoryEvent) string {
	if requestID, ok := pushMsg.Message.Attributes[constants.EventAttributeRequestID]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.RequestID(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
