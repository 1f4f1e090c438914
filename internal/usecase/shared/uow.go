package shared

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/guest"
	"stayhub/internal/domain/room"

	"github.com/google/uuid"
)

// UnitOfWork scopes every multi-record mutation to one transaction so a room
// is never left reserved without a booking or vice versa.
type UnitOfWork interface {
	// Within: read-committed transaction with retry on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	RoomTypes() RoomTypeRepository
	Guests() GuestRepository
	Tenants() TenantRepository
	Outbox() OutboxRepository
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	// FindByIDForUpdate locks the booking row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*booking.Booking, error)
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	Update(ctx context.Context, r *room.Room) error
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*room.Room, error)
	// FindFreeRoomForUpdate picks the first active, sellable room of the type
	// with no overlapping active booking for the stay, locking it. This is the
	// write-time conflict re-check; the availability read is advisory only.
	FindFreeRoomForUpdate(ctx context.Context, tenantID, roomTypeID uuid.UUID, stay booking.StayPeriod) (*room.Room, error)
	// HasOverlappingBooking re-runs the conflict test for one explicit room.
	HasOverlappingBooking(ctx context.Context, roomID uuid.UUID, stay booking.StayPeriod) (bool, error)
	CountActiveByRoomType(ctx context.Context, roomTypeID uuid.UUID) (int, error)
}

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *room.RoomType) error
	Update(ctx context.Context, rt *room.RoomType) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*room.RoomType, error)
}

type GuestRepository interface {
	Create(ctx context.Context, g *guest.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*guest.Guest, error)
	FindByPhone(ctx context.Context, phone string) (*guest.Guest, error)
	// ApplyStayDelta updates the tenant-scoped history counters.
	ApplyStayDelta(ctx context.Context, tenantID, guestID uuid.UUID, stays, cancellations int, spentCents int64, stayAt time.Time) error
}

type TenantRepository interface {
	TermsByID(ctx context.Context, tenantID uuid.UUID) (*booking.TenantTerms, error)
	// ApplyBookingDelta maintains the tenant's derived aggregates
	// (total bookings, recognized revenue).
	ApplyBookingDelta(ctx context.Context, tenantID uuid.UUID, bookings int, revenueCents int64) error
}

type OutboxRepository interface {
	// Append stages an event in the same transaction as the state change;
	// the relay publishes it after commit.
	Append(ctx context.Context, topic, key string, payload []byte) error
}
