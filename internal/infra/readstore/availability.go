package readstore

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/room"
	"stayhub/internal/infra/db"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

// AvailabilityReadStore counts conflict-free units per room type without
// taking locks; the booking flow re-checks under lock before committing.
type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

func (s *AvailabilityReadStore) FreeUnitsByRoomType(ctx context.Context, tenantID uuid.UUID, stay booking.StayPeriod, roomTypeID *uuid.UUID) ([]*queries.RoomTypeInventory, error) {
	rows, err := s.db.Query(ctx, `
		SELECT rt.id, rt.tenant_id, rt.name, rt.code,
		       rt.max_adults, rt.max_children, rt.max_occupancy, rt.base_occupancy,
		       rt.base_rate_cents, rt.weekend_rate_cents, rt.extra_adult_cents, rt.extra_child_cents,
		       rt.active, rt.created_at, rt.updated_at,
		       t.currency,
		       count(r.id) FILTER (
			WHERE r.id IS NOT NULL
			  AND NOT EXISTS (
				SELECT 1 FROM bookings b
				WHERE b.room_id = r.id
				  AND b.status IN ('pending', 'confirmed', 'checked_in')
				  AND b.check_in < $3
				  AND b.check_out > $2
			  )
		       ) AS free_units
		FROM room_types rt
		JOIN tenants t ON t.id = rt.tenant_id
		LEFT JOIN rooms r ON r.room_type_id = rt.id
		     AND r.active
		     AND r.status NOT IN ('maintenance', 'blocked')
		WHERE rt.tenant_id = $1
		  AND rt.active
		  AND ($4::uuid IS NULL OR rt.id = $4)
		GROUP BY rt.id, t.currency
		ORDER BY rt.base_rate_cents`,
		tenantID, stay.CheckIn(), stay.CheckOut(), roomTypeID,
	)
	if err != nil {
		return nil, wrapReadErr("failed to query availability", err)
	}
	defer rows.Close()

	out := make([]*queries.RoomTypeInventory, 0)
	for rows.Next() {
		var (
			id, rtTenantID                                uuid.UUID
			name, code, currency                          string
			maxAdults, maxChildren, maxOccupancy, baseOcc int
			baseRate, weekendRate, extraAdult, extraChild int64
			active                                        bool
			createdAt, updatedAt                          time.Time
			freeUnits                                     int
		)
		err := rows.Scan(
			&id, &rtTenantID, &name, &code,
			&maxAdults, &maxChildren, &maxOccupancy, &baseOcc,
			&baseRate, &weekendRate, &extraAdult, &extraChild,
			&active, &createdAt, &updatedAt,
			&currency, &freeUnits,
		)
		if err != nil {
			return nil, wrapReadErr("failed to scan availability row", err)
		}

		out = append(out, &queries.RoomTypeInventory{
			RoomType: room.ReconstructRoomType(
				id, rtTenantID, name, code,
				maxAdults, maxChildren, maxOccupancy, baseOcc,
				baseRate, weekendRate, extraAdult, extraChild,
				active, createdAt, updatedAt,
			),
			UnitsAvailable: freeUnits,
			Currency:       currency,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to query availability", err)
	}
	return out, nil
}
