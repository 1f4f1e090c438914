package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoomTypeName = errors.New("room type name is required")
	ErrInvalidRoomTypeCode = errors.New("room type code is required")
	ErrInvalidOccupancyCap = errors.New("occupancy caps must be positive")
	ErrInvalidRate         = errors.New("base nightly rate must be positive")
	ErrInvalidOccupancy    = errors.New("at least one adult is required")
	ErrOccupancyExceeded   = errors.New("occupancy exceeds room type capacity")
	ErrRoomTypeInactive    = errors.New("room type is inactive")
	ErrRoomTypeHasRooms    = errors.New("room type still has active rooms")
)

type RoomType struct {
	id               uuid.UUID
	tenantID         uuid.UUID
	name             string
	code             string
	maxAdults        int
	maxChildren      int
	maxOccupancy     int
	baseOccupancy    int
	baseRateCents    int64
	weekendRateCents int64
	extraAdultCents  int64
	extraChildCents  int64
	active           bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRoomType(
	tenantID uuid.UUID,
	name, code string,
	maxAdults, maxChildren, maxOccupancy, baseOccupancy int,
	baseRateCents, weekendRateCents, extraAdultCents, extraChildCents int64,
) (*RoomType, error) {
	name = strings.TrimSpace(name)
	code = strings.ToUpper(strings.TrimSpace(code))
	if name == "" {
		return nil, ErrInvalidRoomTypeName
	}
	if code == "" {
		return nil, ErrInvalidRoomTypeCode
	}
	if maxAdults < 1 || maxOccupancy < 1 || maxChildren < 0 {
		return nil, ErrInvalidOccupancyCap
	}
	if baseOccupancy < 1 || baseOccupancy > maxAdults {
		baseOccupancy = maxAdults
	}
	if baseRateCents <= 0 || weekendRateCents < 0 || extraAdultCents < 0 || extraChildCents < 0 {
		return nil, ErrInvalidRate
	}

	return &RoomType{
		id:               uuid.New(),
		tenantID:         tenantID,
		name:             name,
		code:             code,
		maxAdults:        maxAdults,
		maxChildren:      maxChildren,
		maxOccupancy:     maxOccupancy,
		baseOccupancy:    baseOccupancy,
		baseRateCents:    baseRateCents,
		weekendRateCents: weekendRateCents,
		extraAdultCents:  extraAdultCents,
		extraChildCents:  extraChildCents,
		active:           true,
	}, nil
}

func ReconstructRoomType(
	id, tenantID uuid.UUID,
	name, code string,
	maxAdults, maxChildren, maxOccupancy, baseOccupancy int,
	baseRateCents, weekendRateCents, extraAdultCents, extraChildCents int64,
	active bool,
	createdAt, updatedAt time.Time,
) *RoomType {
	return &RoomType{
		id:               id,
		tenantID:         tenantID,
		name:             name,
		code:             code,
		maxAdults:        maxAdults,
		maxChildren:      maxChildren,
		maxOccupancy:     maxOccupancy,
		baseOccupancy:    baseOccupancy,
		baseRateCents:    baseRateCents,
		weekendRateCents: weekendRateCents,
		extraAdultCents:  extraAdultCents,
		extraChildCents:  extraChildCents,
		active:           active,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (rt *RoomType) ValidateOccupancy(adults, children int) error {
	if adults < 1 || children < 0 {
		return ErrInvalidOccupancy
	}
	if adults > rt.maxAdults || children > rt.maxChildren || adults+children > rt.maxOccupancy {
		return ErrOccupancyExceeded
	}
	return nil
}

// NightlyRateCents picks the weekend rate when the check-in day falls on a
// weekend, then adds per-person surcharges above the base occupancy. The
// chosen rate applies uniformly to every night of the stay.
func (rt *RoomType) NightlyRateCents(weekend bool, adults, children int) int64 {
	rate := rt.baseRateCents
	if weekend && rt.weekendRateCents > 0 {
		rate = rt.weekendRateCents
	}
	if adults > rt.baseOccupancy {
		rate += rt.extraAdultCents * int64(adults-rt.baseOccupancy)
	}
	rate += rt.extraChildCents * int64(children)
	return rate
}

// Deactivate soft-deletes the room type. Allowed only when no active room
// references it.
func (rt *RoomType) Deactivate(activeRooms int) error {
	if activeRooms > 0 {
		return ErrRoomTypeHasRooms
	}
	rt.active = false
	return nil
}

func (rt *RoomType) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidRoomTypeName
	}
	rt.name = name
	return nil
}

func (rt *RoomType) UpdateRates(baseRateCents, weekendRateCents, extraAdultCents, extraChildCents int64) error {
	if baseRateCents <= 0 || weekendRateCents < 0 || extraAdultCents < 0 || extraChildCents < 0 {
		return ErrInvalidRate
	}
	rt.baseRateCents = baseRateCents
	rt.weekendRateCents = weekendRateCents
	rt.extraAdultCents = extraAdultCents
	rt.extraChildCents = extraChildCents
	return nil
}

func (rt *RoomType) ID() uuid.UUID           { return rt.id }
func (rt *RoomType) TenantID() uuid.UUID     { return rt.tenantID }
func (rt *RoomType) Name() string            { return rt.name }
func (rt *RoomType) Code() string            { return rt.code }
func (rt *RoomType) MaxAdults() int          { return rt.maxAdults }
func (rt *RoomType) MaxChildren() int        { return rt.maxChildren }
func (rt *RoomType) MaxOccupancy() int       { return rt.maxOccupancy }
func (rt *RoomType) BaseOccupancy() int      { return rt.baseOccupancy }
func (rt *RoomType) BaseRateCents() int64    { return rt.baseRateCents }
func (rt *RoomType) WeekendRateCents() int64 { return rt.weekendRateCents }
func (rt *RoomType) ExtraAdultCents() int64  { return rt.extraAdultCents }
func (rt *RoomType) ExtraChildCents() int64  { return rt.extraChildCents }
func (rt *RoomType) Active() bool            { return rt.active }
func (rt *RoomType) CreatedAt() time.Time    { return rt.createdAt }
func (rt *RoomType) UpdatedAt() time.Time    { return rt.updatedAt }
