package request

import (
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	Name             string `json:"name" binding:"required"`
	Code             string `json:"code" binding:"required"`
	MaxAdults        int    `json:"max_adults" binding:"required,min=1"`
	MaxChildren      int    `json:"max_children" binding:"min=0"`
	MaxOccupancy     int    `json:"max_occupancy" binding:"required,min=1"`
	BaseOccupancy    int    `json:"base_occupancy" binding:"min=0"`
	BaseRateCents    int64  `json:"base_rate_cents" binding:"required,min=1"`
	WeekendRateCents int64  `json:"weekend_rate_cents" binding:"min=0"`
	ExtraAdultCents  int64  `json:"extra_adult_cents" binding:"min=0"`
	ExtraChildCents  int64  `json:"extra_child_cents" binding:"min=0"`
}

func (r CreateRoomTypeRequest) ToParams() commands.CreateRoomTypeParams {
	return commands.CreateRoomTypeParams{
		Name:             r.Name,
		Code:             r.Code,
		MaxAdults:        r.MaxAdults,
		MaxChildren:      r.MaxChildren,
		MaxOccupancy:     r.MaxOccupancy,
		BaseOccupancy:    r.BaseOccupancy,
		BaseRateCents:    r.BaseRateCents,
		WeekendRateCents: r.WeekendRateCents,
		ExtraAdultCents:  r.ExtraAdultCents,
		ExtraChildCents:  r.ExtraChildCents,
	}
}

type UpdateRoomTypeRequest struct {
	Name             *string `json:"name,omitempty"`
	BaseRateCents    *int64  `json:"base_rate_cents,omitempty"`
	WeekendRateCents *int64  `json:"weekend_rate_cents,omitempty"`
	ExtraAdultCents  *int64  `json:"extra_adult_cents,omitempty"`
	ExtraChildCents  *int64  `json:"extra_child_cents,omitempty"`
}

func (r UpdateRoomTypeRequest) ToParams() commands.UpdateRoomTypeParams {
	return commands.UpdateRoomTypeParams{
		Name:             r.Name,
		BaseRateCents:    r.BaseRateCents,
		WeekendRateCents: r.WeekendRateCents,
		ExtraAdultCents:  r.ExtraAdultCents,
		ExtraChildCents:  r.ExtraChildCents,
	}
}

type CreateRoomRequest struct {
	RoomTypeID      uuid.UUID `json:"room_type_id" binding:"required"`
	Number          string    `json:"number" binding:"required"`
	Floor           string    `json:"floor,omitempty"`
	AdjustmentCents int64     `json:"adjustment_cents,omitempty"`
	AdjustmentPct   float64   `json:"adjustment_pct,omitempty"`
}

func (r CreateRoomRequest) ToParams() commands.CreateRoomParams {
	return commands.CreateRoomParams{
		RoomTypeID:      r.RoomTypeID,
		Number:          r.Number,
		Floor:           r.Floor,
		AdjustmentCents: r.AdjustmentCents,
		AdjustmentPct:   r.AdjustmentPct,
	}
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
