package readstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BookingReadStore serves the booking read models straight off the write
// tables; list items join guest and room names in so handlers never fan out.
type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSelect = `
	SELECT b.id, b.tenant_id, b.code, b.confirmation_code,
	       b.guest_id, g.full_name, b.room_id, r.number, b.room_type_id, rt.name,
	       b.check_in, b.check_out, b.adults, b.children, b.status, b.channel,
	       b.pricing, b.add_ons, b.payments, b.cancellation, b.history,
	       b.actual_check_in, b.actual_check_out,
	       b.created_by, b.modified_by, b.created_at, b.updated_at
	FROM bookings b
	JOIN guests g ON g.id = b.guest_id
	JOIN rooms r ON r.id = b.room_id
	JOIN room_types rt ON rt.id = b.room_type_id`

func (s *BookingReadStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, bookingViewSelect+`
		WHERE b.id = $1 AND b.tenant_id = $2`, id, tenantID)
	return scanBookingView(row)
}

func (s *BookingReadStore) FindByConfirmationCode(ctx context.Context, code string) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, bookingViewSelect+`
		WHERE b.confirmation_code = $1`, code)
	return scanBookingView(row)
}

const bookingListSelect = `
	SELECT b.id, b.code, g.full_name, r.number, rt.name,
	       b.check_in, b.check_out, b.status,
	       b.pricing, b.payments, b.created_at
	FROM bookings b
	JOIN guests g ON g.id = b.guest_id
	JOIN rooms r ON r.id = b.room_id
	JOIN room_types rt ON rt.id = b.room_type_id`

func (s *BookingReadStore) List(ctx context.Context, tenantID uuid.UUID, f queries.BookingFilter, afterAt *time.Time, afterID *uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	where := []string{"b.tenant_id = $1"}
	args := []any{tenantID}

	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.Status != nil {
		add("b.status = $%d", *f.Status)
	}
	if f.RoomTypeID != nil {
		add("b.room_type_id = $%d", *f.RoomTypeID)
	}
	if f.GuestID != nil {
		add("b.guest_id = $%d", *f.GuestID)
	}
	if f.From != nil {
		add("b.check_in >= $%d", *f.From)
	}
	if f.To != nil {
		add("b.check_in < $%d", *f.To)
	}
	if afterAt != nil && afterID != nil {
		args = append(args, *afterAt, *afterID)
		where = append(where, fmt.Sprintf("(b.created_at, b.id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	args = append(args, limit)
	query := bookingListSelect +
		"\n\tWHERE " + strings.Join(where, " AND ") +
		fmt.Sprintf("\n\tORDER BY b.created_at DESC, b.id DESC\n\tLIMIT $%d", len(args))

	return s.listItems(ctx, query, args...)
}

func (s *BookingReadStore) ArrivalsOn(ctx context.Context, tenantID uuid.UUID, day time.Time) ([]*queries.BookingListItem, error) {
	return s.listItems(ctx, bookingListSelect+`
		WHERE b.tenant_id = $1 AND b.check_in = $2 AND b.status IN ('pending', 'confirmed')
		ORDER BY r.number`, tenantID, day)
}

func (s *BookingReadStore) DeparturesOn(ctx context.Context, tenantID uuid.UUID, day time.Time) ([]*queries.BookingListItem, error) {
	return s.listItems(ctx, bookingListSelect+`
		WHERE b.tenant_id = $1 AND b.check_out = $2 AND b.status = 'checked_in'
		ORDER BY r.number`, tenantID, day)
}

func (s *BookingReadStore) InHouseOn(ctx context.Context, tenantID uuid.UUID, day time.Time) ([]*queries.BookingListItem, error) {
	return s.listItems(ctx, bookingListSelect+`
		WHERE b.tenant_id = $1 AND b.status = 'checked_in'
		  AND b.check_in <= $2 AND b.check_out > $2
		ORDER BY r.number`, tenantID, day)
}

func (s *BookingReadStore) TenantTimezone(ctx context.Context, tenantID uuid.UUID) (string, error) {
	var tz string
	err := s.db.QueryRow(ctx,
		`SELECT timezone FROM tenants WHERE id = $1 AND active`, tenantID,
	).Scan(&tz)
	if err != nil {
		return "", wrapReadErr("failed to load tenant timezone", err)
	}
	return tz, nil
}

func (s *BookingReadStore) listItems(ctx context.Context, query string, args ...any) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapReadErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item     queries.BookingListItem
			pricing  []byte
			payments []byte
		)
		err := rows.Scan(
			&item.ID, &item.Code, &item.GuestName, &item.RoomNumber, &item.RoomTypeName,
			&item.CheckIn, &item.CheckOut, &item.Status,
			&pricing, &payments, &item.CreatedAt,
		)
		if err != nil {
			return nil, wrapReadErr("failed to scan booking row", err)
		}
		if err := fillPaymentFields(&item, pricing, payments); err != nil {
			return nil, wrapReadErr("failed to decode booking row", err)
		}
		item.Nights = int(item.CheckOut.Sub(item.CheckIn).Hours() / 24)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to list bookings", err)
	}
	return items, nil
}

func fillPaymentFields(item *queries.BookingListItem, pricingDoc, paymentsDoc []byte) error {
	var pricing booking.Breakdown
	if err := json.Unmarshal(pricingDoc, &pricing); err != nil {
		return err
	}
	var ledger []booking.LedgerEntry
	if err := json.Unmarshal(paymentsDoc, &ledger); err != nil {
		return err
	}

	paid := booking.Money{}
	for _, e := range ledger {
		switch e.Kind {
		case booking.LedgerPayment:
			paid = paid.Add(e.Amount)
		case booking.LedgerRefund:
			paid = paid.Sub(e.Amount)
		}
	}

	item.GrandTotalCents = pricing.GrandTotal.Cents()
	item.BalanceDueCents = pricing.GrandTotal.Sub(paid).FloorZero().Cents()
	item.Currency = pricing.Currency
	switch {
	case !paid.IsPositive():
		item.PaymentStatus = string(booking.PaymentPending)
	case paid.LessThan(pricing.GrandTotal):
		item.PaymentStatus = string(booking.PaymentPartial)
	default:
		item.PaymentStatus = string(booking.PaymentPaid)
	}
	return nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v            queries.BookingView
		pricing      []byte
		addOns       []byte
		payments     []byte
		cancellation []byte
		history      []byte
	)
	err := row.Scan(
		&v.ID, &v.TenantID, &v.Code, &v.ConfirmationCode,
		&v.GuestID, &v.GuestName, &v.RoomID, &v.RoomNumber, &v.RoomTypeID, &v.RoomTypeName,
		&v.CheckIn, &v.CheckOut, &v.Adults, &v.Children, &v.Status, &v.Channel,
		&pricing, &addOns, &payments, &cancellation, &history,
		&v.ActualCheckIn, &v.ActualCheckOut,
		&v.CreatedBy, &v.ModifiedBy, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, wrapReadErr("failed to find booking", err)
	}

	if err := json.Unmarshal(pricing, &v.Pricing); err != nil {
		return nil, wrapReadErr("failed to decode booking pricing", err)
	}
	if err := json.Unmarshal(addOns, &v.AddOns); err != nil {
		return nil, wrapReadErr("failed to decode booking add-ons", err)
	}
	if err := json.Unmarshal(payments, &v.Payments); err != nil {
		return nil, wrapReadErr("failed to decode booking payments", err)
	}
	if len(cancellation) > 0 {
		v.Cancellation = &booking.Cancellation{}
		if err := json.Unmarshal(cancellation, v.Cancellation); err != nil {
			return nil, wrapReadErr("failed to decode booking cancellation", err)
		}
	}
	if err := json.Unmarshal(history, &v.History); err != nil {
		return nil, wrapReadErr("failed to decode booking history", err)
	}

	v.Nights = int(v.CheckOut.Sub(v.CheckIn).Hours() / 24)

	paid := booking.Money{}
	for _, e := range v.Payments {
		switch e.Kind {
		case booking.LedgerPayment:
			paid = paid.Add(e.Amount)
		case booking.LedgerRefund:
			paid = paid.Sub(e.Amount)
		}
	}
	v.AmountPaidCents = paid.Cents()
	v.BalanceDueCents = v.Pricing.GrandTotal.Sub(paid).FloorZero().Cents()
	switch {
	case !paid.IsPositive():
		v.PaymentStatus = string(booking.PaymentPending)
	case paid.LessThan(v.Pricing.GrandTotal):
		v.PaymentStatus = string(booking.PaymentPartial)
	default:
		v.PaymentStatus = string(booking.PaymentPaid)
	}

	return &v, nil
}

func wrapReadErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
