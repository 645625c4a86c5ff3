// Package pubsub publishes inventory movements for downstream consumers such
// as reorder alerts and sales reporting.
package pubsub

import (
	"context"
	"log/slog"

	"sweetshop/config"
	"sweetshop/internal/domain/constants"
	"sweetshop/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// disabledPublisher drops every movement. It backs deployments without a broker.
type disabledPublisher struct {
	logger *slog.Logger
}

func (p *disabledPublisher) PublishInventoryEvent(_ context.Context, event *service.InventoryEvent) error {
	p.logger.Debug("inventory movement not published, no broker configured", eventLogAttrs(event)...)

	return nil
}

func (p *disabledPublisher) Close() error {
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

// NewEventPublisher picks the broker named by pubsub.provider. Without one,
// purchases and restocks still succeed but emit nothing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "inventory-events"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("inventory events disabled")

		return &disabledPublisher{logger: logger}, nil
	}

	publisher, err := newBrokerPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("flushing inventory events", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newBrokerPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("inventory events pushed to local endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalPushPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

// Module provides the inventory event publisher.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
