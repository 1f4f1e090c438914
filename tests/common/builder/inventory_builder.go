//go:build unit || e2e

package builder

import (
	domroom "stayhub/internal/domain/room"
	reqdto "stayhub/internal/handler/dto/request"

	"github.com/google/uuid"
)

type RoomTypeBuilder struct {
	TenantID         uuid.UUID
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

func NewRoomTypeBuilder() *RoomTypeBuilder {
	return &RoomTypeBuilder{
		TenantID:         uuid.New(),
		Name:             "Deluxe Double",
		Code:             "DLX",
		MaxAdults:        2,
		MaxChildren:      2,
		MaxOccupancy:     4,
		BaseOccupancy:    2,
		BaseRateCents:    10000,
		WeekendRateCents: 15000,
		ExtraAdultCents:  2500,
		ExtraChildCents:  1000,
	}
}

func (b *RoomTypeBuilder) With(mutate func(*RoomTypeBuilder)) *RoomTypeBuilder {
	mutate(b)
	return b
}

func (b *RoomTypeBuilder) WithTenantID(id uuid.UUID) *RoomTypeBuilder {
	b.TenantID = id
	return b
}

func (b *RoomTypeBuilder) WithRates(base, weekend, extraAdult, extraChild int64) *RoomTypeBuilder {
	b.BaseRateCents = base
	b.WeekendRateCents = weekend
	b.ExtraAdultCents = extraAdult
	b.ExtraChildCents = extraChild
	return b
}

func (b *RoomTypeBuilder) WithCaps(maxAdults, maxChildren, maxOccupancy, baseOccupancy int) *RoomTypeBuilder {
	b.MaxAdults = maxAdults
	b.MaxChildren = maxChildren
	b.MaxOccupancy = maxOccupancy
	b.BaseOccupancy = baseOccupancy
	return b
}

func (b *RoomTypeBuilder) Build() (*domroom.RoomType, error) {
	return domroom.NewRoomType(
		b.TenantID, b.Name, b.Code,
		b.MaxAdults, b.MaxChildren, b.MaxOccupancy, b.BaseOccupancy,
		b.BaseRateCents, b.WeekendRateCents, b.ExtraAdultCents, b.ExtraChildCents,
	)
}

func (b *RoomTypeBuilder) MustBuild() *domroom.RoomType {
	rt, err := b.Build()
	if err != nil {
		panic(err)
	}
	return rt
}

func (b *RoomTypeBuilder) BuildCreateRequestDTO() reqdto.CreateRoomTypeRequest {
	return reqdto.CreateRoomTypeRequest{
		Name:             b.Name,
		Code:             b.Code,
		MaxAdults:        b.MaxAdults,
		MaxChildren:      b.MaxChildren,
		MaxOccupancy:     b.MaxOccupancy,
		BaseOccupancy:    b.BaseOccupancy,
		BaseRateCents:    b.BaseRateCents,
		WeekendRateCents: b.WeekendRateCents,
		ExtraAdultCents:  b.ExtraAdultCents,
		ExtraChildCents:  b.ExtraChildCents,
	}
}

type RoomBuilder struct {
	TenantID        uuid.UUID
	RoomTypeID      uuid.UUID
	Number          string
	Floor           string
	AdjustmentCents int64
	AdjustmentPct   float64
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		TenantID:   uuid.New(),
		RoomTypeID: uuid.New(),
		Number:     "204",
		Floor:      "2",
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithTenantID(id uuid.UUID) *RoomBuilder {
	b.TenantID = id
	return b
}

func (b *RoomBuilder) WithRoomTypeID(id uuid.UUID) *RoomBuilder {
	b.RoomTypeID = id
	return b
}

func (b *RoomBuilder) WithNumber(number string) *RoomBuilder {
	b.Number = number
	return b
}

func (b *RoomBuilder) WithAdjustment(cents int64, pct float64) *RoomBuilder {
	b.AdjustmentCents = cents
	b.AdjustmentPct = pct
	return b
}

func (b *RoomBuilder) Build() (*domroom.Room, error) {
	return domroom.NewRoom(b.TenantID, b.RoomTypeID, b.Number, b.Floor, b.AdjustmentCents, b.AdjustmentPct)
}

func (b *RoomBuilder) MustBuild() *domroom.Room {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		RoomTypeID:      b.RoomTypeID,
		Number:          b.Number,
		Floor:           b.Floor,
		AdjustmentCents: b.AdjustmentCents,
		AdjustmentPct:   b.AdjustmentPct,
	}
}
