package response

import (
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomTypeResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Code             string    `json:"code"`
	MaxAdults        int       `json:"max_adults"`
	MaxChildren      int       `json:"max_children"`
	MaxOccupancy     int       `json:"max_occupancy"`
	BaseRateCents    int64     `json:"base_rate_cents"`
	WeekendRateCents int64     `json:"weekend_rate_cents"`
	Active           bool      `json:"active"`
	TotalRooms       int       `json:"total_rooms"`
}

type RoomResponse struct {
	ID               uuid.UUID  `json:"id"`
	RoomTypeID       uuid.UUID  `json:"room_type_id"`
	RoomTypeName     string     `json:"room_type_name,omitempty"`
	Number           string     `json:"number"`
	Floor            string     `json:"floor,omitempty"`
	Status           string     `json:"status"`
	CurrentBookingID *uuid.UUID `json:"current_booking_id,omitempty"`
	CurrentGuestID   *uuid.UUID `json:"current_guest_id,omitempty"`
	Active           bool       `json:"active"`
}

type AvailabilityResponse struct {
	RoomTypeID       uuid.UUID `json:"room_type_id"`
	Name             string    `json:"name"`
	Code             string    `json:"code"`
	UnitsAvailable   int       `json:"units_available"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	TotalPriceCents  int64     `json:"total_price_cents"`
	Nights           int       `json:"nights"`
	Currency         string    `json:"currency"`
}

func FromRoomTypeView(v *queries.RoomTypeView) *RoomTypeResponse {
	var resp RoomTypeResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRoomTypeViews(views []*queries.RoomTypeView) []*RoomTypeResponse {
	out := make([]*RoomTypeResponse, len(views))
	for i, v := range views {
		out[i] = FromRoomTypeView(v)
	}
	return out
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, len(views))
	for i, v := range views {
		out[i] = FromRoomView(v)
	}
	return out
}

func FromAvailability(items []*queries.RoomTypeAvailability) []*AvailabilityResponse {
	out := make([]*AvailabilityResponse, len(items))
	for i, item := range items {
		var resp AvailabilityResponse
		_ = copier.Copy(&resp, item)
		out[i] = &resp
	}
	return out
}
