package bootstrap

import (
	"context"
	"log/slog"

	"stayhub/internal/infra/events"
	"stayhub/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Invoke(StartOutboxRelay),
)

// StartOutboxRelay wires the Kafka publisher and outbox relay when brokers
// are configured. Without brokers the service runs fine; staged events wait
// in the outbox until a relay drains them.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool) error {
	if !cfg.Kafka.Enabled() {
		slog.Info("outbox relay disabled, no Kafka brokers configured")
		return nil
	}

	publisher, err := events.NewPublisher(cfg.Kafka.Brokers, nil)
	if err != nil {
		return err
	}

	topicPrefix := cfg.Kafka.TopicPrefix
	if topicPrefix != "" {
		topicPrefix += "."
	}
	relay := events.NewRelay(pool, publisher, cfg.Kafka.RelayInterval, topicPrefix)

	relayCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go relay.Run(relayCtx)
			slog.Info("outbox relay started",
				"brokers", cfg.Kafka.Brokers,
				"interval", cfg.Kafka.RelayInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return publisher.Close()
		},
	})

	return nil
}
