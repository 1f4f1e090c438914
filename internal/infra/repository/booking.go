package repository

import (
	"context"
	"encoding/json"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"

	"github.com/google/uuid"
)

// BookingRepository persists the aggregate with the lifecycle collections
// (pricing, add-ons, ledger, history, cancellation) as JSONB documents and
// everything queryable as scalar columns.
type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const bookingColumns = `
	id, tenant_id, code, confirmation_code, guest_id, room_id, room_type_id,
	check_in, check_out, adults, children, status, channel,
	pricing, add_ons, payments, cancellation, history,
	actual_check_in, actual_check_out,
	created_by, modified_by, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	s := b.State()
	doc, err := marshalBookingDocs(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`,
		s.ID, s.TenantID, s.Code, s.ConfirmationCode, s.GuestID, s.RoomID, s.RoomTypeID,
		s.Stay.CheckIn(), s.Stay.CheckOut(), s.Adults, s.Children, s.Status.String(), s.Channel.String(),
		doc.pricing, doc.addOns, doc.payments, doc.cancellation, doc.history,
		s.ActualCheckIn, s.ActualCheckOut,
		s.CreatedBy, s.ModifiedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return classify("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	s := b.State()
	doc, err := marshalBookingDocs(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = $3, payments = $4, cancellation = $5, history = $6,
		    actual_check_in = $7, actual_check_out = $8,
		    modified_by = $9, updated_at = $10
		WHERE id = $1 AND tenant_id = $2`,
		s.ID, s.TenantID,
		s.Status.String(), doc.payments, doc.cancellation, doc.history,
		s.ActualCheckIn, s.ActualCheckOut,
		s.ModifiedBy, s.UpdatedAt,
	)
	if err != nil {
		return classify("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = $1 AND tenant_id = $2
		FOR UPDATE`,
		id, tenantID,
	)
	b, err := scanBooking(row)
	if err != nil {
		return nil, classify("failed to find booking", err)
	}
	return b, nil
}

type bookingDocs struct {
	pricing      []byte
	addOns       []byte
	payments     []byte
	cancellation []byte
	history      []byte
}

func marshalBookingDocs(s booking.BookingState) (bookingDocs, error) {
	var d bookingDocs
	var err error
	if d.pricing, err = json.Marshal(s.Pricing); err != nil {
		return d, err
	}
	if d.addOns, err = json.Marshal(emptySlice(s.AddOns)); err != nil {
		return d, err
	}
	if d.payments, err = json.Marshal(emptySlice(s.Ledger)); err != nil {
		return d, err
	}
	if s.Cancellation != nil {
		if d.cancellation, err = json.Marshal(s.Cancellation); err != nil {
			return d, err
		}
	}
	if d.history, err = json.Marshal(emptySlice(s.History)); err != nil {
		return d, err
	}
	return d, nil
}

// emptySlice keeps nil collections stored as [] instead of SQL NULL.
func emptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		s            booking.BookingState
		checkIn      time.Time
		checkOut     time.Time
		status       string
		channel      string
		pricing      []byte
		addOns       []byte
		payments     []byte
		cancellation []byte
		history      []byte
	)
	err := row.Scan(
		&s.ID, &s.TenantID, &s.Code, &s.ConfirmationCode, &s.GuestID, &s.RoomID, &s.RoomTypeID,
		&checkIn, &checkOut, &s.Adults, &s.Children, &status, &channel,
		&pricing, &addOns, &payments, &cancellation, &history,
		&s.ActualCheckIn, &s.ActualCheckOut,
		&s.CreatedBy, &s.ModifiedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Stay = booking.ReconstructStayPeriod(checkIn, checkOut)
	s.Status = booking.Status(status)
	s.Channel = booking.Channel(channel)

	if err := json.Unmarshal(pricing, &s.Pricing); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(addOns, &s.AddOns); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payments, &s.Ledger); err != nil {
		return nil, err
	}
	if len(cancellation) > 0 {
		s.Cancellation = &booking.Cancellation{}
		if err := json.Unmarshal(cancellation, s.Cancellation); err != nil {
			return nil, err
		}
	}
	if err := json.Unmarshal(history, &s.History); err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(s), nil
}
