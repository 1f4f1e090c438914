package queries

import (
	"context"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type InventoryReadStore interface {
	ListRoomTypes(ctx context.Context, tenantID uuid.UUID, includeInactive bool) ([]*RoomTypeView, error)
	ListRooms(ctx context.Context, tenantID uuid.UUID, roomTypeID *uuid.UUID) ([]*RoomView, error)
}

type InventoryQueries interface {
	ListRoomTypes(ctx context.Context, tenantID uuid.UUID, includeInactive bool) ([]*RoomTypeView, error)
	ListRooms(ctx context.Context, tenantID uuid.UUID, roomTypeID *uuid.UUID) ([]*RoomView, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) ListRoomTypes(ctx context.Context, tenantID uuid.UUID, includeInactive bool) ([]*RoomTypeView, error) {
	views, err := q.store.ListRoomTypes(ctx, tenantID, includeInactive)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *inventoryQueriesImpl) ListRooms(ctx context.Context, tenantID uuid.UUID, roomTypeID *uuid.UUID) ([]*RoomView, error) {
	views, err := q.store.ListRooms(ctx, tenantID, roomTypeID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}
