package request

import (
	"strings"

	"stayhub/internal/domain/booking"
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type GuestPayload struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email,omitempty"`
	IDNumber string `json:"id_number,omitempty"`
}

type AddOnPayload struct {
	Name        string `json:"name" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required"`
}

type CreateBookingRequest struct {
	RoomTypeID    uuid.UUID      `json:"room_type_id" binding:"required"`
	RoomID        *uuid.UUID     `json:"room_id,omitempty"`
	CheckIn       string         `json:"check_in" binding:"required"`
	CheckOut      string         `json:"check_out" binding:"required"`
	Adults        int            `json:"adults" binding:"required,min=1"`
	Children      int            `json:"children" binding:"min=0"`
	Channel       string         `json:"channel,omitempty"`
	GuestID       *uuid.UUID     `json:"guest_id,omitempty"`
	Guest         *GuestPayload  `json:"guest,omitempty"`
	AddOns        []AddOnPayload `json:"add_ons,omitempty"`
	DiscountCents int64          `json:"discount_cents,omitempty"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	channel := booking.ChannelDirect
	if c := strings.TrimSpace(r.Channel); c != "" {
		channel = booking.Channel(c)
	}

	var guestInfo *commands.GuestInfo
	if r.Guest != nil {
		guestInfo = &commands.GuestInfo{
			FullName: strings.TrimSpace(r.Guest.FullName),
			Phone:    strings.TrimSpace(r.Guest.Phone),
			Email:    strings.TrimSpace(r.Guest.Email),
			IDNumber: strings.TrimSpace(r.Guest.IDNumber),
		}
	}

	addOns := make([]booking.AddOn, 0, len(r.AddOns))
	for _, a := range r.AddOns {
		addOns = append(addOns, booking.AddOn{
			Name:        strings.TrimSpace(a.Name),
			AmountCents: a.AmountCents,
		})
	}

	return commands.CreateBookingParams{
		RoomTypeID:    r.RoomTypeID,
		RoomID:        r.RoomID,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Adults:        r.Adults,
		Children:      r.Children,
		Channel:       channel,
		GuestID:       r.GuestID,
		Guest:         guestInfo,
		AddOns:        addOns,
		DiscountCents: r.DiscountCents,
	}
}

type RecordPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required"`
	Method      string `json:"method" binding:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}
