package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/guest"
	"stayhub/internal/domain/room"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrGuestNotFound    = errors.New("guest not found")
	ErrBookingNotFound  = errors.New("booking not found")

	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrOccupancyExceeded = errors.New("occupancy exceeded")
	ErrGuestInfoRequired = errors.New("guest info required")
	ErrRoomNotAvailable  = errors.New("no room available for the requested dates")

	ErrInvalidTransition  = errors.New("invalid booking state transition")
	ErrOutstandingBalance = errors.New("outstanding balance")
	ErrBookingTerminal    = errors.New("booking is terminal")
	ErrInvalidAmount      = errors.New("invalid payment amount")

	// Error markers for categorization
	ErrDomainValidation        = errors.New("domain validation error")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type CreateBookingParams struct {
	RoomTypeID    uuid.UUID
	RoomID        *uuid.UUID
	CheckIn       string
	CheckOut      string
	Adults        int
	Children      int
	Channel       booking.Channel
	GuestID       *uuid.UUID
	Guest         *GuestInfo
	AddOns        []booking.AddOn
	DiscountCents int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, tenantID, actor uuid.UUID, p CreateBookingParams) (*queries.BookingView, error)
	CheckIn(ctx context.Context, tenantID, actor, bookingID uuid.UUID) (*queries.BookingView, error)
	CheckOut(ctx context.Context, tenantID, actor, bookingID uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, tenantID, actor, bookingID uuid.UUID, reason string) (*queries.BookingView, error)
	RecordPayment(ctx context.Context, tenantID, actor, bookingID uuid.UUID, amountCents int64, method booking.PaymentMethod) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *booking.Factory
	clock   clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, factory *booking.Factory, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, factory: factory, clock: clk}
}

// CreateBooking allocates a room and creates the booking atomically. The
// candidate room is locked and the overlap test re-run inside the
// transaction; the storage-level exclusion constraint backs the re-check up,
// so losing a race surfaces as ErrRoomNotAvailable, never a double booking.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, tenantID, actor uuid.UUID, p CreateBookingParams) (*queries.BookingView, error) {
	stay, err := queries.ParseStayPeriod(p.CheckIn, p.CheckOut, c.clock)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if p.GuestID == nil && p.Guest == nil {
		return nil, ErrGuestInfoRequired
	}

	var view *queries.BookingView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		terms, err := tx.Tenants().TermsByID(ctx, tenantID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTenantNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		roomType, err := tx.RoomTypes().FindByID(ctx, tenantID, p.RoomTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomTypeNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !roomType.Active() {
			return ErrRoomTypeNotFound
		}

		bookingGuest, err := c.resolveGuest(ctx, tx, p)
		if err != nil {
			return err
		}

		candidate, err := c.allocateRoom(ctx, tx, tenantID, p, stay)
		if err != nil {
			return err
		}

		entity, err := c.factory.NewBooking(booking.NewBookingInput{
			TenantID:      tenantID,
			Terms:         *terms,
			RoomType:      roomType,
			Room:          candidate,
			GuestID:       bookingGuest.ID(),
			Stay:          stay,
			Adults:        p.Adults,
			Children:      p.Children,
			Channel:       p.Channel,
			AddOns:        p.AddOns,
			DiscountCents: p.DiscountCents,
			Actor:         actor,
		})
		if err != nil {
			if errors.Is(err, room.ErrOccupancyExceeded) || errors.Is(err, room.ErrInvalidOccupancy) {
				return ErrOccupancyExceeded
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := candidate.Reserve(entity.ID(), bookingGuest.ID()); err != nil {
			return ErrRoomNotAvailable
		}

		if err := tx.Bookings().Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrRoomNotAvailable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Rooms().Update(ctx, candidate); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Guests().ApplyStayDelta(ctx, tenantID, bookingGuest.ID(), 1, 0, 0, stay.CheckIn()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Tenants().ApplyBookingDelta(ctx, tenantID, 1, 0); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.stageEvent(ctx, tx, TopicBookingCreated, entity.Code(), BookingCreatedEvent{
			BookingID:        entity.ID(),
			Code:             entity.Code(),
			ConfirmationCode: entity.ConfirmationCode(),
			GuestName:        bookingGuest.FullName(),
			GuestPhone:       bookingGuest.Phone(),
			RoomNumber:       candidate.Number(),
			CheckIn:          stay.CheckIn(),
			CheckOut:         stay.CheckOut(),
			GrandTotalCents:  entity.Pricing().GrandTotal.Cents(),
			Currency:         entity.Pricing().Currency,
			Status:           entity.Status().String(),
		}); err != nil {
			return err
		}

		view = queries.NewBookingView(entity)
		view.GuestName = bookingGuest.FullName()
		view.RoomNumber = candidate.Number()
		view.RoomTypeName = roomType.Name()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *bookingCommandsImpl) resolveGuest(ctx context.Context, tx shared.Tx, p CreateBookingParams) (*guest.Guest, error) {
	if p.GuestID != nil {
		g, err := tx.Guests().FindByID(ctx, *p.GuestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrGuestNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return g, nil
	}

	// Guests are shared across tenants by phone; history stays tenant-scoped.
	g, err := tx.Guests().FindByPhone(ctx, p.Guest.Phone)
	if err == nil {
		return g, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	g, err = guest.NewGuest(p.Guest.FullName, p.Guest.Phone, p.Guest.Email, p.Guest.IDNumber)
	if err != nil {
		return nil, ErrGuestInfoRequired
	}
	if err := tx.Guests().Create(ctx, g); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return g, nil
}

func (c *bookingCommandsImpl) allocateRoom(ctx context.Context, tx shared.Tx, tenantID uuid.UUID, p CreateBookingParams, stay booking.StayPeriod) (*room.Room, error) {
	if p.RoomID != nil {
		r, err := tx.Rooms().FindByIDForUpdate(ctx, tenantID, *p.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if r.RoomTypeID() != p.RoomTypeID || !r.Active() || !r.Status().Sellable() {
			return nil, ErrRoomNotAvailable
		}
		conflict, err := tx.Rooms().HasOverlappingBooking(ctx, r.ID(), stay)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if conflict {
			return nil, ErrRoomNotAvailable
		}
		return r, nil
	}

	r, err := tx.Rooms().FindFreeRoomForUpdate(ctx, tenantID, p.RoomTypeID, stay)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotAvailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return r, nil
}

// CheckIn is legal only from confirmed; the room flips to occupied in the
// same transaction.
func (c *bookingCommandsImpl) CheckIn(ctx context.Context, tenantID, actor, bookingID uuid.UUID) (*queries.BookingView, error) {
	return c.withBooking(ctx, tenantID, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		if err := b.CheckIn(actor, c.clock.Now()); err != nil {
			return mapLifecycleErr(err)
		}

		r, err := tx.Rooms().FindByIDForUpdate(ctx, tenantID, b.RoomID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := r.Occupy(b.ID(), b.GuestID()); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		return tx.Rooms().Update(ctx, r)
	})
}

// CheckOut requires a settled balance; the room goes to cleaning and its weak
// back-references are cleared.
func (c *bookingCommandsImpl) CheckOut(ctx context.Context, tenantID, actor, bookingID uuid.UUID) (*queries.BookingView, error) {
	return c.withBooking(ctx, tenantID, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		if err := b.CheckOut(actor, c.clock.Now()); err != nil {
			return mapLifecycleErr(err)
		}

		r, err := tx.Rooms().FindByIDForUpdate(ctx, tenantID, b.RoomID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		r.FinishStay()
		return tx.Rooms().Update(ctx, r)
	})
}

// CancelBooking evaluates the refund policy, frees the room and stages the
// cancellation event. Cancellation is a terminal state, not a deletion.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, tenantID, actor, bookingID uuid.UUID, reason string) (*queries.BookingView, error) {
	return c.withBooking(ctx, tenantID, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		terms, err := tx.Tenants().TermsByID(ctx, tenantID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		outcome, err := b.Cancel(terms.CancellationPolicy, reason, actor, c.clock.Now())
		if err != nil {
			return mapLifecycleErr(err)
		}

		r, err := tx.Rooms().FindByIDForUpdate(ctx, tenantID, b.RoomID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if ref := r.CurrentBookingID(); ref != nil && *ref == b.ID() {
			r.Release()
			if err := tx.Rooms().Update(ctx, r); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := tx.Guests().ApplyStayDelta(ctx, tenantID, b.GuestID(), 0, 1, -outcome.Refund.Cents(), b.Stay().CheckIn()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Tenants().ApplyBookingDelta(ctx, tenantID, 0, -outcome.Refund.Cents()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		g, err := tx.Guests().FindByID(ctx, b.GuestID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return c.stageEvent(ctx, tx, TopicBookingCancelled, b.Code(), BookingCancelledEvent{
			BookingID:    b.ID(),
			Code:         b.Code(),
			GuestName:    g.FullName(),
			GuestPhone:   g.Phone(),
			CheckIn:      b.Stay().CheckIn(),
			RefundCents:  outcome.Refund.Cents(),
			PenaltyCents: outcome.Penalty.Cents(),
			Currency:     b.Pricing().Currency,
		})
	})
}

// RecordPayment appends to the ledger; a pending booking auto-confirms on the
// first payment.
func (c *bookingCommandsImpl) RecordPayment(ctx context.Context, tenantID, actor, bookingID uuid.UUID, amountCents int64, method booking.PaymentMethod) (*queries.BookingView, error) {
	return c.withBooking(ctx, tenantID, bookingID, func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		amount, err := booking.NewNonNegativeMoney(amountCents)
		if err != nil {
			return ErrInvalidAmount
		}
		if err := b.RecordPayment(amount, method, actor, c.clock.Now()); err != nil {
			return mapLifecycleErr(err)
		}

		if err := tx.Guests().ApplyStayDelta(ctx, tenantID, b.GuestID(), 0, 0, amountCents, b.Stay().CheckIn()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Tenants().ApplyBookingDelta(ctx, tenantID, 0, amountCents); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		g, err := tx.Guests().FindByID(ctx, b.GuestID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return c.stageEvent(ctx, tx, TopicPaymentReceived, b.Code(), PaymentReceivedEvent{
			BookingID:       b.ID(),
			Code:            b.Code(),
			GuestName:       g.FullName(),
			GuestPhone:      g.Phone(),
			AmountCents:     amountCents,
			Method:          string(method),
			BalanceDueCents: b.BalanceDue().Cents(),
			Currency:        b.Pricing().Currency,
		})
	})
}

// withBooking loads the booking under lock, applies fn, and persists the
// aggregate if fn succeeds.
func (c *bookingCommandsImpl) withBooking(
	ctx context.Context,
	tenantID, bookingID uuid.UUID,
	fn func(ctx context.Context, tx shared.Tx, b *booking.Booking) error,
) (*queries.BookingView, error) {
	var view *queries.BookingView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tenantID, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := fn(ctx, tx, b); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		view = queries.NewBookingView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *bookingCommandsImpl) stageEvent(ctx context.Context, tx shared.Tx, topic, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		// Event payloads are plain structs; a marshal failure is a bug, but it
		// must not take the booking down with it.
		slog.Error("failed to marshal outbox event", "topic", topic, "error", err)
		return nil
	}
	if err := tx.Outbox().Append(ctx, topic, key, body); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func mapLifecycleErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidTransition):
		return ErrInvalidTransition
	case errors.Is(err, booking.ErrOutstandingBalance):
		return ErrOutstandingBalance
	case errors.Is(err, booking.ErrBookingTerminal):
		return ErrBookingTerminal
	case errors.Is(err, booking.ErrInvalidAmount), errors.Is(err, booking.ErrInvalidMethod):
		return ErrInvalidAmount
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}
