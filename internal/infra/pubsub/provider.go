package pubsub

import (
	"context"
	"log/slog"
	"time"

	"seguridad/config"
	"seguridad/internal/domain/service"
	"seguridad/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAlertCreated(ctx context.Context, event *service.AlertCreatedEvent) error {
	p.logger.Debug("Alert event publishing disabled",
		slog.String("alert_id", event.AlertID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// boundedPublisher gives every publish its own deadline and counts the outcome.
// The caller's cancellation is dropped: alerts publish after the response is decided.
type boundedPublisher struct {
	next     service.EventPublisher
	provider string
	timeout  time.Duration
}

func (p *boundedPublisher) PublishAlertCreated(ctx context.Context, event *service.AlertCreatedEvent) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	err := p.next.PublishAlertCreated(ctx, event)
	metrics.RecordEventPublish(p.provider, err)
	if err != nil {
		return errors.Wrapf(err, "%s publish of alert %s", p.provider, event.AlertID)
	}

	return nil
}

func (p *boundedPublisher) Close() error {
	return p.next.Close()
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the AlertCreated publisher for the configured provider.
// Without a provider events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, alert events will not be published")

		return &noopPublisher{logger: logger}, nil
	}

	next, err := newProviderPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	publisher := &boundedPublisher{next: next, provider: cfg.Provider, timeout: timeout}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newProviderPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case config.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing alert events to local endpoint",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// alertAttributes are the message attributes consumers filter and trace on.
// Coordinates are left to the payload.
func alertAttributes(event *service.AlertCreatedEvent) map[string]string {
	attributes := map[string]string{
		"event_type": "alert.created",
		"alert_id":   event.AlertID,
		"device_id":  event.DeviceID,
		"alert_type": event.Type,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}
	if event.PushFailed > 0 {
		attributes["push_degraded"] = "true"
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
