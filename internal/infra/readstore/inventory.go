package readstore

import (
	"context"

	"stayhub/internal/infra/db"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

func (s *InventoryReadStore) ListRoomTypes(ctx context.Context, tenantID uuid.UUID, includeInactive bool) ([]*queries.RoomTypeView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT rt.id, rt.name, rt.code,
		       rt.max_adults, rt.max_children, rt.max_occupancy,
		       rt.base_rate_cents, rt.weekend_rate_cents, rt.active,
		       count(r.id) FILTER (WHERE r.active) AS total_rooms
		FROM room_types rt
		LEFT JOIN rooms r ON r.room_type_id = rt.id
		WHERE rt.tenant_id = $1 AND (rt.active OR $2)
		GROUP BY rt.id
		ORDER BY rt.base_rate_cents`,
		tenantID, includeInactive,
	)
	if err != nil {
		return nil, wrapReadErr("failed to list room types", err)
	}
	defer rows.Close()

	out := make([]*queries.RoomTypeView, 0)
	for rows.Next() {
		var v queries.RoomTypeView
		err := rows.Scan(
			&v.ID, &v.Name, &v.Code,
			&v.MaxAdults, &v.MaxChildren, &v.MaxOccupancy,
			&v.BaseRateCents, &v.WeekendRateCents, &v.Active,
			&v.TotalRooms,
		)
		if err != nil {
			return nil, wrapReadErr("failed to scan room type row", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to list room types", err)
	}
	return out, nil
}

func (s *InventoryReadStore) ListRooms(ctx context.Context, tenantID uuid.UUID, roomTypeID *uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT r.id, r.room_type_id, rt.name, r.number, r.floor, r.status,
		       r.current_booking_id, r.current_guest_id, r.active
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE r.tenant_id = $1
		  AND ($2::uuid IS NULL OR r.room_type_id = $2)
		ORDER BY r.number`,
		tenantID, roomTypeID,
	)
	if err != nil {
		return nil, wrapReadErr("failed to list rooms", err)
	}
	defer rows.Close()

	out := make([]*queries.RoomView, 0)
	for rows.Next() {
		var v queries.RoomView
		err := rows.Scan(
			&v.ID, &v.RoomTypeID, &v.RoomTypeName, &v.Number, &v.Floor, &v.Status,
			&v.CurrentBookingID, &v.CurrentGuestID, &v.Active,
		)
		if err != nil {
			return nil, wrapReadErr("failed to scan room row", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to list rooms", err)
	}
	return out, nil
}
