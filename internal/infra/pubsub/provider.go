package pubsub

import (
	"context"
	"log/slog"

	"ummana/config"
	"ummana/internal/domain/constants"
	"ummana/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishDirectoryEvent(ctx context.Context, event *service.DirectoryEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("kind", string(event.Kind)),
		slog.String("action", string(event.Action)),
		slog.String("id", event.ID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, directory events will not be published")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Using local HTTP publisher for directory events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for directory events",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return &originPublisher{
		EventPublisher: publisher,
		origin:         params.Config.Env.InstanceID,
	}, nil
}

// originPublisher stamps this instance's ID on every event so the instance
// can recognise and skip its own changes when they come back.
type originPublisher struct {
	service.EventPublisher
	origin string
}

func (p *originPublisher) PublishDirectoryEvent(ctx context.Context, event *service.DirectoryEvent) error {
	stamped := *event
	stamped.Origin = p.origin

	return p.EventPublisher.PublishDirectoryEvent(ctx, &stamped)
}

// eventAttributes are copied onto every message so subscribers can filter by kind.
func eventAttributes(event *service.DirectoryEvent) map[string]string {
	attributes := map[string]string{
		constants.EventAttributeKind:   string(event.Kind),
		constants.EventAttributeAction: string(event.Action),
	}
	if event.RequestID != "" {
		attributes[constants.EventAttributeRequestID] = event.RequestID
	}
	if event.Origin != "" {
		attributes[constants.EventAttributeOrigin] = event.Origin
	}

	return attributes
}

