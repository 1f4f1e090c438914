package repository

import (
	"context"

	"stayhub/internal/infra/db"
)

// OutboxRepository stages events in the same transaction as the state change
// that produced them. The relay worker picks them up after commit, so a
// broker outage can delay notifications but never roll back a booking.
type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

func (r *OutboxRepository) Append(ctx context.Context, topic, key string, payload []byte) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO outbox_events (topic, key, payload, status, attempts, next_attempt_at, created_at)
		VALUES ($1, $2, $3, 'pending', 0, now(), now())`,
		topic, key, payload,
	)
	if err != nil {
		return classify("failed to append outbox event", err)
	}
	return nil
}
