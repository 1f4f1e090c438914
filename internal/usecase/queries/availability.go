package queries

import (
	"context"
	"errors"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/room"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// RoomTypeInventory is what the read store returns per room type: the type's
// rate card plus how many of its units have no conflicting active booking
// for the requested range.
type RoomTypeInventory struct {
	RoomType       *room.RoomType
	UnitsAvailable int
	Currency       string
}

type AvailabilityReadStore interface {
	// FreeUnitsByRoomType enumerates active room types with their
	// conflict-free unit counts for the half-open [checkIn, checkOut) range.
	FreeUnitsByRoomType(ctx context.Context, tenantID uuid.UUID, stay booking.StayPeriod, roomTypeID *uuid.UUID) ([]*RoomTypeInventory, error)
}

type AvailabilityQueries interface {
	CheckAvailability(ctx context.Context, tenantID uuid.UUID, checkIn, checkOut string, roomTypeID *uuid.UUID, adults, children int) ([]*RoomTypeAvailability, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(store AvailabilityReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clk}
}

// CheckAvailability is read-only and advisory: the write path re-checks the
// conflict test under lock before committing (see commands.CreateBooking).
func (q *availabilityQueriesImpl) CheckAvailability(
	ctx context.Context,
	tenantID uuid.UUID,
	checkIn, checkOut string,
	roomTypeID *uuid.UUID,
	adults, children int,
) ([]*RoomTypeAvailability, error) {
	stay, err := ParseStayPeriod(checkIn, checkOut, q.clock)
	if err != nil {
		return nil, err
	}

	inventories, err := q.store.FreeUnitsByRoomType(ctx, tenantID, stay, roomTypeID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	results := make([]*RoomTypeAvailability, 0, len(inventories))
	for _, inv := range inventories {
		rt := inv.RoomType
		if err := rt.ValidateOccupancy(adults, children); err != nil {
			continue
		}
		if inv.UnitsAvailable <= 0 {
			continue
		}

		// Rate is fixed at the check-in-day rate for every night of the stay.
		nightly := rt.NightlyRateCents(stay.WeekendCheckIn(), adults, children)
		results = append(results, &RoomTypeAvailability{
			RoomTypeID:       rt.ID(),
			Name:             rt.Name(),
			Code:             rt.Code(),
			UnitsAvailable:   inv.UnitsAvailable,
			NightlyRateCents: nightly,
			TotalPriceCents:  nightly * int64(stay.Nights()),
			Nights:           stay.Nights(),
			Currency:         inv.Currency,
		})
	}
	return results, nil
}

// ParseStayPeriod parses "2006-01-02" date strings and applies the
// checkIn < checkOut / not-in-the-past constraints.
func ParseStayPeriod(checkIn, checkOut string, clk clock.Clock) (booking.StayPeriod, error) {
	in, err := parseDate(checkIn)
	if err != nil {
		return booking.StayPeriod{}, ErrInvalidDateRange
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return booking.StayPeriod{}, ErrInvalidDateRange
	}

	stay, err := booking.NewStayPeriod(in, out, clk.Now())
	if err != nil {
		return booking.StayPeriod{}, ErrInvalidDateRange
	}
	return stay, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
