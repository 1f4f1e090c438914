package repository

import (
	"context"
	"time"

	"stayhub/internal/domain/guest"
	"stayhub/internal/infra/db"

	"github.com/google/uuid"
)

// GuestRepository stores the shared guest directory plus the per-tenant stay
// counters. Guests are deduplicated by phone number across tenants.
type GuestRepository struct {
	db db.DBTX
}

func NewGuestRepository(dbtx db.DBTX) *GuestRepository {
	return &GuestRepository{db: dbtx}
}

const guestColumns = `id, full_name, phone, email, id_number, created_at, updated_at`

func (r *GuestRepository) Create(ctx context.Context, g *guest.Guest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO guests (`+guestColumns+`)
		VALUES ($1, $2, $3, $4, $5, now(), now())`,
		g.ID(), g.FullName(), g.Phone(), g.Email(), g.IDNumber(),
	)
	if err != nil {
		return classify("failed to create guest", err)
	}
	return nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+guestColumns+` FROM guests WHERE id = $1`, id)
	g, err := scanGuest(row)
	if err != nil {
		return nil, classify("failed to find guest", err)
	}
	return g, nil
}

func (r *GuestRepository) FindByPhone(ctx context.Context, phone string) (*guest.Guest, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+guestColumns+` FROM guests WHERE phone = $1`, phone)
	g, err := scanGuest(row)
	if err != nil {
		return nil, classify("failed to find guest by phone", err)
	}
	return g, nil
}

// ApplyStayDelta upserts the tenant-scoped counters. spentCents may be
// negative when a cancellation refunds a payment.
func (r *GuestRepository) ApplyStayDelta(ctx context.Context, tenantID, guestID uuid.UUID, stays, cancellations int, spentCents int64, stayAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO guest_tenant_stats (
			tenant_id, guest_id, total_stays, cancellations, spent_cents,
			first_stay_at, last_stay_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (tenant_id, guest_id) DO UPDATE
		SET total_stays   = guest_tenant_stats.total_stays + EXCLUDED.total_stays,
		    cancellations = guest_tenant_stats.cancellations + EXCLUDED.cancellations,
		    spent_cents   = guest_tenant_stats.spent_cents + EXCLUDED.spent_cents,
		    first_stay_at = LEAST(guest_tenant_stats.first_stay_at, EXCLUDED.first_stay_at),
		    last_stay_at  = GREATEST(guest_tenant_stats.last_stay_at, EXCLUDED.last_stay_at)`,
		tenantID, guestID, stays, cancellations, spentCents, stayAt,
	)
	if err != nil {
		return classify("failed to update guest stay stats", err)
	}
	return nil
}

func scanGuest(row rowScanner) (*guest.Guest, error) {
	var (
		id                               uuid.UUID
		fullName, phone, email, idNumber string
		createdAt, updatedAt             time.Time
	)
	if err := row.Scan(&id, &fullName, &phone, &email, &idNumber, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return guest.ReconstructGuest(id, fullName, phone, email, idNumber, createdAt, updatedAt), nil
}
