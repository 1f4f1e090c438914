package room

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoomNumber    = errors.New("room number is required")
	ErrInvalidStatus        = errors.New("invalid room status")
	ErrRoomNotSellable      = errors.New("room is not sellable")
	ErrRoomInactive         = errors.New("room is inactive")
	ErrStatusNeedsBooking   = errors.New("status requires an active booking")
	ErrRoomHoldsBooking     = errors.New("room still references a booking")
	ErrMissingBookingRef    = errors.New("reserved or occupied room must reference a booking")
	ErrBookingRefMismatch   = errors.New("room references a different booking")
	ErrInvalidAdjustmentPct = errors.New("percentage adjustment must be greater than -100")
)

// Room is a physical unit. Its current booking/guest references are weak
// lookup keys owned by the booking lifecycle, cleared on checkout and cancel.
type Room struct {
	id               uuid.UUID
	tenantID         uuid.UUID
	roomTypeID       uuid.UUID
	number           string
	floor            string
	status           Status
	adjustmentCents  int64
	adjustmentPct    float64
	currentBookingID *uuid.UUID
	currentGuestID   *uuid.UUID
	active           bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRoom(
	tenantID, roomTypeID uuid.UUID,
	number, floor string,
	adjustmentCents int64,
	adjustmentPct float64,
) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrInvalidRoomNumber
	}
	if adjustmentPct <= -100 {
		return nil, ErrInvalidAdjustmentPct
	}

	return &Room{
		id:              uuid.New(),
		tenantID:        tenantID,
		roomTypeID:      roomTypeID,
		number:          number,
		floor:           floor,
		status:          StatusAvailable,
		adjustmentCents: adjustmentCents,
		adjustmentPct:   adjustmentPct,
		active:          true,
	}, nil
}

func ReconstructRoom(
	id, tenantID, roomTypeID uuid.UUID,
	number, floor string,
	status Status,
	adjustmentCents int64,
	adjustmentPct float64,
	currentBookingID, currentGuestID *uuid.UUID,
	active bool,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:               id,
		tenantID:         tenantID,
		roomTypeID:       roomTypeID,
		number:           number,
		floor:            floor,
		status:           status,
		adjustmentCents:  adjustmentCents,
		adjustmentPct:    adjustmentPct,
		currentBookingID: currentBookingID,
		currentGuestID:   currentGuestID,
		active:           active,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// AdjustedRateCents applies the per-room price adjustment to a room-type
// nightly rate. Fixed adjustments add a flat amount, percentage adjustments
// multiply; rounding is half-up to the cent.
func (r *Room) AdjustedRateCents(rateCents int64) int64 {
	adjusted := rateCents + r.adjustmentCents
	if r.adjustmentPct != 0 {
		adjusted = int64(math.Round(float64(adjusted) * (1 + r.adjustmentPct/100)))
	}
	if adjusted < 0 {
		adjusted = 0
	}
	return adjusted
}

// Reserve marks the room held by a booking. The caller is responsible for
// having verified the date-range conflict inside the same transaction. A room
// whose status slot is already held by another live booking stays as-is; the
// new booking coexists with it for non-overlapping dates and takes the slot
// when its own stay begins.
func (r *Room) Reserve(bookingID, guestID uuid.UUID) error {
	if !r.active {
		return ErrRoomInactive
	}
	if !r.status.Sellable() {
		return ErrRoomNotSellable
	}
	if r.currentBookingID != nil {
		return nil
	}
	r.status = StatusReserved
	r.currentBookingID = &bookingID
	r.currentGuestID = &guestID
	return nil
}

// Occupy flips the room to occupied at check-in. The arriving booking claims
// the status slot even when a reservation for other dates holds it; only a
// room with a different guest still in house refuses.
func (r *Room) Occupy(bookingID, guestID uuid.UUID) error {
	if !r.active {
		return ErrRoomInactive
	}
	if r.status == StatusOccupied && r.currentBookingID != nil && *r.currentBookingID != bookingID {
		return ErrBookingRefMismatch
	}
	if !r.status.Sellable() {
		return ErrRoomNotSellable
	}
	r.status = StatusOccupied
	r.currentBookingID = &bookingID
	r.currentGuestID = &guestID
	return nil
}

// FinishStay moves the room to cleaning after checkout and clears the weak
// booking/guest references.
func (r *Room) FinishStay() {
	r.status = StatusCleaning
	r.currentBookingID = nil
	r.currentGuestID = nil
}

// Release frees a room after cancellation.
func (r *Room) Release() {
	r.status = StatusAvailable
	r.currentBookingID = nil
	r.currentGuestID = nil
}

// SetStatus is the housekeeping/maintenance path. Reserved and occupied are
// reachable only through the booking lifecycle.
func (r *Room) SetStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	if s.RequiresBooking() {
		return ErrStatusNeedsBooking
	}
	if r.currentBookingID != nil {
		return ErrRoomHoldsBooking
	}
	r.status = s
	return nil
}

func (r *Room) Deactivate() error {
	if r.currentBookingID != nil {
		return ErrRoomHoldsBooking
	}
	r.active = false
	return nil
}

// CheckInvariant verifies the status/booking-reference invariant.
func (r *Room) CheckInvariant() error {
	if r.status.RequiresBooking() && r.currentBookingID == nil {
		return ErrMissingBookingRef
	}
	if !r.status.RequiresBooking() && r.currentBookingID != nil {
		return ErrRoomHoldsBooking
	}
	return nil
}

func (r *Room) ID() uuid.UUID                { return r.id }
func (r *Room) TenantID() uuid.UUID          { return r.tenantID }
func (r *Room) RoomTypeID() uuid.UUID        { return r.roomTypeID }
func (r *Room) Number() string               { return r.number }
func (r *Room) Floor() string                { return r.floor }
func (r *Room) Status() Status               { return r.status }
func (r *Room) AdjustmentCents() int64       { return r.adjustmentCents }
func (r *Room) AdjustmentPct() float64       { return r.adjustmentPct }
func (r *Room) CurrentBookingID() *uuid.UUID { return r.currentBookingID }
func (r *Room) CurrentGuestID() *uuid.UUID   { return r.currentGuestID }
func (r *Room) Active() bool                 { return r.active }
func (r *Room) CreatedAt() time.Time         { return r.createdAt }
func (r *Room) UpdatedAt() time.Time         { return r.updatedAt }
