package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stayhub/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

const relayMaxAttempts = 10

// EventPublisher abstracts the broker so tests can swap in a recorder.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

type outboxEvent struct {
	id       int64
	topic    string
	key      string
	payload  []byte
	attempts int
}

// Relay drains the transactional outbox: events are staged by the write path
// in the same transaction as the state change and published here after
// commit. SKIP LOCKED makes multiple relay instances safe; a broker outage
// delays delivery but never affects bookings.
type Relay struct {
	db          db.DBTX
	publisher   EventPublisher
	interval    time.Duration
	topicPrefix string
}

func NewRelay(dbtx db.DBTX, publisher EventPublisher, interval time.Duration, topicPrefix string) *Relay {
	if interval <= 0 {
		interval = time.Second
	}
	return &Relay{db: dbtx, publisher: publisher, interval: interval, topicPrefix: topicPrefix}
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.drain(ctx)
		}
	}
}

// drain publishes until the pending queue is empty or a claim fails.
func (r *Relay) drain(ctx context.Context) {
	for {
		done, err := r.processOne(ctx)
		if err != nil {
			slog.Error("outbox relay iteration failed", "error", err)
			return
		}
		if done {
			return
		}
	}
}

func (r *Relay) processOne(ctx context.Context) (bool, error) {
	evt, err := r.claim(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return true, nil
		}
		return true, err
	}

	if err := r.publisher.Publish(ctx, r.topicPrefix+evt.topic, evt.key, evt.payload); err != nil {
		slog.Warn("failed to publish outbox event",
			"event_id", evt.id,
			"topic", evt.topic,
			"attempt", evt.attempts,
			"error", err)
		return true, r.markFailed(ctx, evt)
	}
	return false, r.markSent(ctx, evt.id)
}

// claim bumps the attempt counter while taking the row, so a relay crash
// between claim and publish still counts against the retry budget.
func (r *Relay) claim(ctx context.Context) (*outboxEvent, error) {
	var evt outboxEvent
	err := r.db.QueryRow(ctx, `
		UPDATE outbox_events
		SET attempts = attempts + 1
		WHERE id = (
			SELECT id FROM outbox_events
			WHERE status = 'pending' AND next_attempt_at <= now()
			ORDER BY id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, topic, key, payload, attempts`,
	).Scan(&evt.id, &evt.topic, &evt.key, &evt.payload, &evt.attempts)
	if err != nil {
		return nil, err
	}
	return &evt, nil
}

func (r *Relay) markSent(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE outbox_events
		SET status = 'sent', sent_at = now()
		WHERE id = $1`, id)
	return err
}

func (r *Relay) markFailed(ctx context.Context, evt *outboxEvent) error {
	if evt.attempts >= relayMaxAttempts {
		_, err := r.db.Exec(ctx, `
			UPDATE outbox_events
			SET status = 'failed'
			WHERE id = $1`, evt.id)
		return err
	}

	backoff := time.Duration(1<<min(evt.attempts, 8)) * time.Second
	_, err := r.db.Exec(ctx, `
		UPDATE outbox_events
		SET next_attempt_at = now() + $2
		WHERE id = $1`, evt.id, backoff)
	return err
}
