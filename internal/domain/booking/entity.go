package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition  = errors.New("invalid booking state transition")
	ErrOutstandingBalance = errors.New("booking has an outstanding balance")
	ErrBookingTerminal    = errors.New("booking is in a terminal state")
	ErrInvalidAmount      = errors.New("payment amount must be positive")
	ErrInvalidMethod      = errors.New("invalid payment method")
	ErrInvalidChannel     = errors.New("invalid booking channel")
)

type LedgerKind string

const (
	LedgerPayment LedgerKind = "payment"
	LedgerRefund  LedgerKind = "refund"
)

// LedgerEntry is an append-only payment record. Refund entries are written
// only by the cancellation path, never as arbitrary negative payments.
type LedgerEntry struct {
	ID         uuid.UUID     `json:"id"`
	Kind       LedgerKind    `json:"kind"`
	Amount     Money         `json:"amountCents"`
	Method     PaymentMethod `json:"method"`
	RecordedBy uuid.UUID     `json:"recordedBy"`
	RecordedAt time.Time     `json:"recordedAt"`
}

// HistoryEntry is an immutable audit record appended on every transition.
type HistoryEntry struct {
	Action     HistoryAction `json:"action"`
	FromStatus Status        `json:"fromStatus"`
	ToStatus   Status        `json:"toStatus"`
	Actor      uuid.UUID     `json:"actor"`
	At         time.Time     `json:"at"`
}

type Cancellation struct {
	CancelledAt        time.Time     `json:"cancelledAt"`
	CancelledBy        uuid.UUID     `json:"cancelledBy"`
	Reason             string        `json:"reason,omitempty"`
	HoursBeforeCheckIn float64       `json:"hoursBeforeCheckIn"`
	Outcome            RefundOutcome `json:"outcome"`
}

// Booking is the central aggregate. It is never physically deleted;
// cancellation is a terminal state, not a deletion. All mutation goes through
// lifecycle methods which keep the ledger, history and derived payment fields
// consistent.
type Booking struct {
	id               uuid.UUID
	tenantID         uuid.UUID
	code             string
	confirmationCode string
	guestID          uuid.UUID
	roomID           uuid.UUID
	roomTypeID       uuid.UUID
	stay             StayPeriod
	adults           int
	children         int
	pricing          Breakdown
	status           Status
	channel          Channel
	addOns           []AddOn
	ledger           []LedgerEntry
	cancellation     *Cancellation
	history          []HistoryEntry
	actualCheckIn    *time.Time
	actualCheckOut   *time.Time
	createdBy        uuid.UUID
	modifiedBy       uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

// BookingState is the rehydration snapshot used by the persistence layer.
type BookingState struct {
	ID               uuid.UUID
	TenantID         uuid.UUID
	Code             string
	ConfirmationCode string
	GuestID          uuid.UUID
	RoomID           uuid.UUID
	RoomTypeID       uuid.UUID
	Stay             StayPeriod
	Adults           int
	Children         int
	Pricing          Breakdown
	Status           Status
	Channel          Channel
	AddOns           []AddOn
	Ledger           []LedgerEntry
	Cancellation     *Cancellation
	History          []HistoryEntry
	ActualCheckIn    *time.Time
	ActualCheckOut   *time.Time
	CreatedBy        uuid.UUID
	ModifiedBy       uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func ReconstructBooking(s BookingState) *Booking {
	return &Booking{
		id:               s.ID,
		tenantID:         s.TenantID,
		code:             s.Code,
		confirmationCode: s.ConfirmationCode,
		guestID:          s.GuestID,
		roomID:           s.RoomID,
		roomTypeID:       s.RoomTypeID,
		stay:             s.Stay,
		adults:           s.Adults,
		children:         s.Children,
		pricing:          s.Pricing,
		status:           s.Status,
		channel:          s.Channel,
		addOns:           s.AddOns,
		ledger:           s.Ledger,
		cancellation:     s.Cancellation,
		history:          s.History,
		actualCheckIn:    s.ActualCheckIn,
		actualCheckOut:   s.ActualCheckOut,
		createdBy:        s.CreatedBy,
		modifiedBy:       s.ModifiedBy,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
	}
}

// State exports the aggregate for persistence.
func (b *Booking) State() BookingState {
	return BookingState{
		ID:               b.id,
		TenantID:         b.tenantID,
		Code:             b.code,
		ConfirmationCode: b.confirmationCode,
		GuestID:          b.guestID,
		RoomID:           b.roomID,
		RoomTypeID:       b.roomTypeID,
		Stay:             b.stay,
		Adults:           b.adults,
		Children:         b.children,
		Pricing:          b.pricing,
		Status:           b.status,
		Channel:          b.channel,
		AddOns:           b.addOns,
		Ledger:           b.ledger,
		Cancellation:     b.cancellation,
		History:          b.history,
		ActualCheckIn:    b.actualCheckIn,
		ActualCheckOut:   b.actualCheckOut,
		CreatedBy:        b.createdBy,
		ModifiedBy:       b.modifiedBy,
		CreatedAt:        b.createdAt,
		UpdatedAt:        b.updatedAt,
	}
}

// AmountPaid is the sum of payment entries minus refunds.
func (b *Booking) AmountPaid() Money {
	total := Money{}
	for _, e := range b.ledger {
		switch e.Kind {
		case LedgerPayment:
			total = total.Add(e.Amount)
		case LedgerRefund:
			total = total.Sub(e.Amount)
		}
	}
	return total
}

// BalanceDue = max(0, grandTotal - amountPaid).
func (b *Booking) BalanceDue() Money {
	return b.pricing.GrandTotal.Sub(b.AmountPaid()).FloorZero()
}

func (b *Booking) PaymentStatus() PaymentStatus {
	paid := b.AmountPaid()
	switch {
	case !paid.IsPositive():
		return PaymentPending
	case paid.LessThan(b.pricing.GrandTotal):
		return PaymentPartial
	default:
		return PaymentPaid
	}
}

// RecordPayment appends a ledger entry and recomputes the derived payment
// fields. A pending booking auto-confirms the moment any payment lands.
func (b *Booking) RecordPayment(amount Money, method PaymentMethod, actor uuid.UUID, now time.Time) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !method.IsValid() {
		return ErrInvalidMethod
	}
	if b.status == StatusCancelled || b.status == StatusNoShow {
		return ErrBookingTerminal
	}

	b.ledger = append(b.ledger, LedgerEntry{
		ID:         uuid.New(),
		Kind:       LedgerPayment,
		Amount:     amount,
		Method:     method,
		RecordedBy: actor,
		RecordedAt: now,
	})
	b.appendHistory(ActionPaymentRecorded, b.status, b.status, actor, now)

	if b.status == StatusPending && b.AmountPaid().IsPositive() {
		b.transition(StatusConfirmed, ActionConfirmed, actor, now)
	}

	b.touch(actor, now)
	return nil
}

// CheckIn is legal only from confirmed.
func (b *Booking) CheckIn(actor uuid.UUID, now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.actualCheckIn = &now
	b.transition(StatusCheckedIn, ActionCheckedIn, actor, now)
	b.touch(actor, now)
	return nil
}

// CheckOut is legal only from checked_in with a settled balance.
func (b *Booking) CheckOut(actor uuid.UUID, now time.Time) error {
	if b.status != StatusCheckedIn {
		return ErrInvalidTransition
	}
	if b.BalanceDue().IsPositive() {
		return ErrOutstandingBalance
	}
	b.actualCheckOut = &now
	b.transition(StatusCheckedOut, ActionCheckedOut, actor, now)
	b.touch(actor, now)
	return nil
}

// Cancel evaluates the refund policy against amountPaid, records the refund
// as a ledger entry when positive, and moves the booking to its terminal
// state. Illegal from checked_out, cancelled and no_show.
func (b *Booking) Cancel(policy PolicyKind, reason string, actor uuid.UUID, now time.Time) (RefundOutcome, error) {
	if b.status.IsTerminal() {
		return RefundOutcome{}, ErrInvalidTransition
	}

	hours := b.stay.HoursUntilCheckIn(now)
	outcome := EvaluateRefund(policy, hours, b.AmountPaid())

	if outcome.Refund.IsPositive() {
		b.ledger = append(b.ledger, LedgerEntry{
			ID:         uuid.New(),
			Kind:       LedgerRefund,
			Amount:     outcome.Refund,
			Method:     MethodGateway,
			RecordedBy: actor,
			RecordedAt: now,
		})
		b.appendHistory(ActionRefundRecorded, b.status, b.status, actor, now)
	}

	b.cancellation = &Cancellation{
		CancelledAt:        now,
		CancelledBy:        actor,
		Reason:             reason,
		HoursBeforeCheckIn: hours,
		Outcome:            outcome,
	}
	b.transition(StatusCancelled, ActionCancelled, actor, now)
	b.touch(actor, now)
	return outcome, nil
}

func (b *Booking) transition(to Status, action HistoryAction, actor uuid.UUID, now time.Time) {
	from := b.status
	b.status = to
	b.appendHistory(action, from, to, actor, now)
}

func (b *Booking) appendHistory(action HistoryAction, from, to Status, actor uuid.UUID, now time.Time) {
	b.history = append(b.history, HistoryEntry{
		Action:     action,
		FromStatus: from,
		ToStatus:   to,
		Actor:      actor,
		At:         now,
	})
}

func (b *Booking) touch(actor uuid.UUID, now time.Time) {
	b.modifiedBy = actor
	b.updatedAt = now
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) TenantID() uuid.UUID         { return b.tenantID }
func (b *Booking) Code() string                { return b.code }
func (b *Booking) ConfirmationCode() string    { return b.confirmationCode }
func (b *Booking) GuestID() uuid.UUID          { return b.guestID }
func (b *Booking) RoomID() uuid.UUID           { return b.roomID }
func (b *Booking) RoomTypeID() uuid.UUID       { return b.roomTypeID }
func (b *Booking) Stay() StayPeriod            { return b.stay }
func (b *Booking) Adults() int                 { return b.adults }
func (b *Booking) Children() int               { return b.children }
func (b *Booking) Pricing() Breakdown          { return b.pricing }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) Channel() Channel            { return b.channel }
func (b *Booking) AddOns() []AddOn             { return b.addOns }
func (b *Booking) Ledger() []LedgerEntry       { return b.ledger }
func (b *Booking) Cancellation() *Cancellation { return b.cancellation }
func (b *Booking) History() []HistoryEntry     { return b.history }
func (b *Booking) ActualCheckIn() *time.Time   { return b.actualCheckIn }
func (b *Booking) ActualCheckOut() *time.Time  { return b.actualCheckOut }
func (b *Booking) CreatedBy() uuid.UUID        { return b.createdBy }
func (b *Booking) ModifiedBy() uuid.UUID       { return b.modifiedBy }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
