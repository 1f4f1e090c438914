package repository

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"

	"github.com/google/uuid"
)

type TenantRepository struct {
	db db.DBTX
}

func NewTenantRepository(dbtx db.DBTX) *TenantRepository {
	return &TenantRepository{db: dbtx}
}

func (r *TenantRepository) TermsByID(ctx context.Context, tenantID uuid.UUID) (*booking.TenantTerms, error) {
	var (
		terms  booking.TenantTerms
		policy string
	)
	err := r.db.QueryRow(ctx, `
		SELECT currency, timezone, tax_rate, service_charge_rate,
		       platform_fee_direct, platform_fee_agency,
		       cancellation_policy, auto_confirm
		FROM tenants
		WHERE id = $1 AND active`,
		tenantID,
	).Scan(
		&terms.Currency, &terms.Timezone, &terms.TaxRate, &terms.ServiceChargeRate,
		&terms.PlatformFeeDirect, &terms.PlatformFeeAgency,
		&policy, &terms.AutoConfirm,
	)
	if err != nil {
		return nil, classify("failed to load tenant terms", err)
	}
	terms.CancellationPolicy = booking.PolicyKind(policy)
	return &terms, nil
}

// ApplyBookingDelta maintains the tenant's running totals. revenueCents may
// be negative when a cancellation refunds a payment.
func (r *TenantRepository) ApplyBookingDelta(ctx context.Context, tenantID uuid.UUID, bookings int, revenueCents int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tenants
		SET total_bookings = total_bookings + $2,
		    revenue_cents = revenue_cents + $3,
		    updated_at = now()
		WHERE id = $1`,
		tenantID, bookings, revenueCents,
	)
	if err != nil {
		return classify("failed to update tenant totals", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tenant not found", nil, infra.KindNotFound)
	}
	return nil
}
