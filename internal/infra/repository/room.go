package repository

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/room"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"

	"github.com/google/uuid"
)

// activeBookingStatuses are the statuses that block a room for a date range.
// Pending counts: an unpaid hold still owns its dates until it is cancelled.
const activeBookingStatuses = `('pending', 'confirmed', 'checked_in')`

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

const roomColumns = `
	id, tenant_id, room_type_id, number, floor, status,
	adjustment_cents, adjustment_pct, current_booking_id, current_guest_id,
	active, created_at, updated_at`

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rooms (`+roomColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())`,
		rm.ID(), rm.TenantID(), rm.RoomTypeID(), rm.Number(), rm.Floor(), rm.Status().String(),
		rm.AdjustmentCents(), rm.AdjustmentPct(), rm.CurrentBookingID(), rm.CurrentGuestID(),
		rm.Active(),
	)
	if err != nil {
		return classify("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE rooms
		SET status = $3, adjustment_cents = $4, adjustment_pct = $5,
		    current_booking_id = $6, current_guest_id = $7,
		    active = $8, updated_at = now()
		WHERE id = $1 AND tenant_id = $2`,
		rm.ID(), rm.TenantID(),
		rm.Status().String(), rm.AdjustmentCents(), rm.AdjustmentPct(),
		rm.CurrentBookingID(), rm.CurrentGuestID(),
		rm.Active(),
	)
	if err != nil {
		return classify("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*room.Room, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+roomColumns+`
		FROM rooms
		WHERE id = $1 AND tenant_id = $2
		FOR UPDATE`,
		id, tenantID,
	)
	rm, err := scanRoom(row)
	if err != nil {
		return nil, classify("failed to find room", err)
	}
	return rm, nil
}

// FindFreeRoomForUpdate locks the first sellable room of the type with no
// booking overlapping the half-open stay range. SKIP LOCKED lets concurrent
// requests for the same type land on different rooms instead of queueing.
func (r *RoomRepository) FindFreeRoomForUpdate(ctx context.Context, tenantID, roomTypeID uuid.UUID, stay booking.StayPeriod) (*room.Room, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+roomColumns+`
		FROM rooms
		WHERE tenant_id = $1
		  AND room_type_id = $2
		  AND active
		  AND status NOT IN ('maintenance', 'blocked')
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = rooms.id
			  AND b.status IN `+activeBookingStatuses+`
			  AND b.check_in < $4
			  AND b.check_out > $3
		  )
		ORDER BY number
		LIMIT 1
		FOR UPDATE OF rooms SKIP LOCKED`,
		tenantID, roomTypeID, stay.CheckIn(), stay.CheckOut(),
	)
	rm, err := scanRoom(row)
	if err != nil {
		return nil, classify("no free room for the requested dates", err)
	}
	return rm, nil
}

func (r *RoomRepository) HasOverlappingBooking(ctx context.Context, roomID uuid.UUID, stay booking.StayPeriod) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1
			  AND status IN `+activeBookingStatuses+`
			  AND check_in < $3
			  AND check_out > $2
		)`,
		roomID, stay.CheckIn(), stay.CheckOut(),
	).Scan(&exists)
	if err != nil {
		return false, classify("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *RoomRepository) CountActiveByRoomType(ctx context.Context, roomTypeID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM rooms WHERE room_type_id = $1 AND active`,
		roomTypeID,
	).Scan(&count)
	if err != nil {
		return 0, classify("failed to count rooms", err)
	}
	return count, nil
}

func scanRoom(row rowScanner) (*room.Room, error) {
	var (
		id, tenantID, roomTypeID         uuid.UUID
		number, floor, status            string
		adjustmentCents                  int64
		adjustmentPct                    float64
		currentBookingID, currentGuestID *uuid.UUID
		active                           bool
		createdAt, updatedAt             time.Time
	)
	err := row.Scan(
		&id, &tenantID, &roomTypeID, &number, &floor, &status,
		&adjustmentCents, &adjustmentPct, &currentBookingID, &currentGuestID,
		&active, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	return room.ReconstructRoom(
		id, tenantID, roomTypeID,
		number, floor,
		room.Status(status),
		adjustmentCents, adjustmentPct,
		currentBookingID, currentGuestID,
		active,
		createdAt, updatedAt,
	), nil
}
