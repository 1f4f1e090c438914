package commands

import (
	"context"
	"errors"

	"stayhub/internal/domain/room"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateRoomNumber   = errors.New("room number already exists")
	ErrDuplicateRoomTypeCode = errors.New("room type code already exists")
	ErrRoomTypeHasRooms      = errors.New("room type still has active rooms")
	ErrRoomInUse             = errors.New("room is reserved or occupied")
)

type CreateRoomTypeParams struct {
	Name             string
	Code             string
	MaxAdults        int
	MaxChildren      int
	MaxOccupancy     int
	BaseOccupancy    int
	BaseRateCents    int64
	WeekendRateCents int64
	ExtraAdultCents  int64
	ExtraChildCents  int64
}

type UpdateRoomTypeParams struct {
	Name             *string
	BaseRateCents    *int64
	WeekendRateCents *int64
	ExtraAdultCents  *int64
	ExtraChildCents  *int64
}

type CreateRoomParams struct {
	RoomTypeID      uuid.UUID
	Number          string
	Floor           string
	AdjustmentCents int64
	AdjustmentPct   float64
}

type InventoryCommands interface {
	CreateRoomType(ctx context.Context, tenantID uuid.UUID, p CreateRoomTypeParams) (*queries.RoomTypeView, error)
	UpdateRoomType(ctx context.Context, tenantID, roomTypeID uuid.UUID, p UpdateRoomTypeParams) (*queries.RoomTypeView, error)
	DeactivateRoomType(ctx context.Context, tenantID, roomTypeID uuid.UUID) error
	CreateRoom(ctx context.Context, tenantID uuid.UUID, p CreateRoomParams) (*queries.RoomView, error)
	UpdateRoomStatus(ctx context.Context, tenantID, roomID uuid.UUID, status room.Status) (*queries.RoomView, error)
	DeactivateRoom(ctx context.Context, tenantID, roomID uuid.UUID) error
}

type inventoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewInventoryCommands(uow shared.UnitOfWork) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow}
}

func (c *inventoryCommandsImpl) CreateRoomType(ctx context.Context, tenantID uuid.UUID, p CreateRoomTypeParams) (*queries.RoomTypeView, error) {
	rt, err := room.NewRoomType(
		tenantID,
		p.Name, p.Code,
		p.MaxAdults, p.MaxChildren, p.MaxOccupancy, p.BaseOccupancy,
		p.BaseRateCents, p.WeekendRateCents, p.ExtraAdultCents, p.ExtraChildCents,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.RoomTypes().Create(ctx, rt); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateRoomTypeCode
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewRoomTypeView(rt, 0), nil
}

func (c *inventoryCommandsImpl) UpdateRoomType(ctx context.Context, tenantID, roomTypeID uuid.UUID, p UpdateRoomTypeParams) (*queries.RoomTypeView, error) {
	var view *queries.RoomTypeView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rt, err := tx.RoomTypes().FindByID(ctx, tenantID, roomTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomTypeNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if p.Name != nil {
			if err := rt.Rename(*p.Name); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if p.BaseRateCents != nil || p.WeekendRateCents != nil || p.ExtraAdultCents != nil || p.ExtraChildCents != nil {
			base := pick(p.BaseRateCents, rt.BaseRateCents())
			weekend := pick(p.WeekendRateCents, rt.WeekendRateCents())
			extraAdult := pick(p.ExtraAdultCents, rt.ExtraAdultCents())
			extraChild := pick(p.ExtraChildCents, rt.ExtraChildCents())
			if err := rt.UpdateRates(base, weekend, extraAdult, extraChild); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}

		if err := tx.RoomTypes().Update(ctx, rt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		count, err := tx.Rooms().CountActiveByRoomType(ctx, rt.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		view = queries.NewRoomTypeView(rt, count)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// DeactivateRoomType refuses while active rooms still reference the type.
func (c *inventoryCommandsImpl) DeactivateRoomType(ctx context.Context, tenantID, roomTypeID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rt, err := tx.RoomTypes().FindByID(ctx, tenantID, roomTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomTypeNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		count, err := tx.Rooms().CountActiveByRoomType(ctx, rt.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := rt.Deactivate(count); err != nil {
			return ErrRoomTypeHasRooms
		}
		if err := tx.RoomTypes().Update(ctx, rt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *inventoryCommandsImpl) CreateRoom(ctx context.Context, tenantID uuid.UUID, p CreateRoomParams) (*queries.RoomView, error) {
	var view *queries.RoomView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rt, err := tx.RoomTypes().FindByID(ctx, tenantID, p.RoomTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomTypeNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !rt.Active() {
			return ErrRoomTypeNotFound
		}

		r, err := room.NewRoom(tenantID, rt.ID(), p.Number, p.Floor, p.AdjustmentCents, p.AdjustmentPct)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Rooms().Create(ctx, r); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateRoomNumber
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		view = queries.NewRoomView(r, rt.Name())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UpdateRoomStatus is the housekeeping path. Reserved and occupied are owned
// by the booking lifecycle and are rejected here.
func (c *inventoryCommandsImpl) UpdateRoomStatus(ctx context.Context, tenantID, roomID uuid.UUID, status room.Status) (*queries.RoomView, error) {
	var view *queries.RoomView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rooms().FindByIDForUpdate(ctx, tenantID, roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := r.SetStatus(status); err != nil {
			if errors.Is(err, room.ErrRoomHoldsBooking) {
				return ErrRoomInUse
			}
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Rooms().Update(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		view = queries.NewRoomView(r, "")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *inventoryCommandsImpl) DeactivateRoom(ctx context.Context, tenantID, roomID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rooms().FindByIDForUpdate(ctx, tenantID, roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := r.Deactivate(); err != nil {
			return ErrRoomInUse
		}
		return tx.Rooms().Update(ctx, r)
	})
}

func pick(v *int64, fallback int64) int64 {
	if v != nil {
		return *v
	}
	return fallback
}
