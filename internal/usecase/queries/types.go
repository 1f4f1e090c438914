package queries

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/room"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type BookingView struct {
	ID               uuid.UUID              `json:"id"`
	TenantID         uuid.UUID              `json:"tenant_id"`
	Code             string                 `json:"code"`
	ConfirmationCode string                 `json:"confirmation_code"`
	GuestID          uuid.UUID              `json:"guest_id"`
	GuestName        string                 `json:"guest_name,omitempty"`
	RoomID           uuid.UUID              `json:"room_id"`
	RoomNumber       string                 `json:"room_number,omitempty"`
	RoomTypeID       uuid.UUID              `json:"room_type_id"`
	RoomTypeName     string                 `json:"room_type_name,omitempty"`
	CheckIn          time.Time              `json:"check_in"`
	CheckOut         time.Time              `json:"check_out"`
	Nights           int                    `json:"nights"`
	Adults           int                    `json:"adults"`
	Children         int                    `json:"children"`
	Status           string                 `json:"status"`
	Channel          string                 `json:"channel"`
	Pricing          booking.Breakdown      `json:"pricing"`
	AddOns           []booking.AddOn        `json:"add_ons,omitempty"`
	Payments         []booking.LedgerEntry  `json:"payments,omitempty"`
	AmountPaidCents  int64                  `json:"amount_paid_cents"`
	BalanceDueCents  int64                  `json:"balance_due_cents"`
	PaymentStatus    string                 `json:"payment_status"`
	Cancellation     *booking.Cancellation  `json:"cancellation,omitempty"`
	History          []booking.HistoryEntry `json:"history,omitempty"`
	ActualCheckIn    *time.Time             `json:"actual_check_in,omitempty"`
	ActualCheckOut   *time.Time             `json:"actual_check_out,omitempty"`
	CreatedBy        uuid.UUID              `json:"created_by"`
	ModifiedBy       uuid.UUID              `json:"modified_by"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	GuestName       string    `json:"guest_name"`
	RoomNumber      string    `json:"room_number"`
	RoomTypeName    string    `json:"room_type_name"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Nights          int       `json:"nights"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	GrandTotalCents int64     `json:"grand_total_cents"`
	BalanceDueCents int64     `json:"balance_due_cents"`
	Currency        string    `json:"currency"`
	CreatedAt       time.Time `json:"created_at"`
}

// TodayOperations is the front-desk snapshot for one calendar day in the
// tenant's timezone.
type TodayOperationsView struct {
	Date       string             `json:"date"`
	Arrivals   []*BookingListItem `json:"arrivals"`
	Departures []*BookingListItem `json:"departures"`
	InHouse    []*BookingListItem `json:"in_house"`
}

type RoomTypeAvailability struct {
	RoomTypeID       uuid.UUID `json:"room_type_id"`
	Name             string    `json:"name"`
	Code             string    `json:"code"`
	UnitsAvailable   int       `json:"units_available"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	TotalPriceCents  int64     `json:"total_price_cents"`
	Nights           int       `json:"nights"`
	Currency         string    `json:"currency"`
}

type RoomTypeView struct {
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

type RoomView struct {
	ID               uuid.UUID  `json:"id"`
	RoomTypeID       uuid.UUID  `json:"room_type_id"`
	RoomTypeName     string     `json:"room_type_name"`
	Number           string     `json:"number"`
	Floor            string     `json:"floor"`
	Status           string     `json:"status"`
	CurrentBookingID *uuid.UUID `json:"current_booking_id,omitempty"`
	CurrentGuestID   *uuid.UUID `json:"current_guest_id,omitempty"`
	Active           bool       `json:"active"`
}

// NewBookingView projects the aggregate the write side just touched; command
// handlers return it without a read-after-write round trip.
func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:               b.ID(),
		TenantID:         b.TenantID(),
		Code:             b.Code(),
		ConfirmationCode: b.ConfirmationCode(),
		GuestID:          b.GuestID(),
		RoomID:           b.RoomID(),
		RoomTypeID:       b.RoomTypeID(),
		CheckIn:          b.Stay().CheckIn(),
		CheckOut:         b.Stay().CheckOut(),
		Nights:           b.Stay().Nights(),
		Adults:           b.Adults(),
		Children:         b.Children(),
		Status:           b.Status().String(),
		Channel:          b.Channel().String(),
		Pricing:          b.Pricing(),
		AddOns:           b.AddOns(),
		Payments:         b.Ledger(),
		AmountPaidCents:  b.AmountPaid().Cents(),
		BalanceDueCents:  b.BalanceDue().Cents(),
		PaymentStatus:    string(b.PaymentStatus()),
		Cancellation:     b.Cancellation(),
		History:          b.History(),
		ActualCheckIn:    b.ActualCheckIn(),
		ActualCheckOut:   b.ActualCheckOut(),
		CreatedBy:        b.CreatedBy(),
		ModifiedBy:       b.ModifiedBy(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}

func NewRoomTypeView(rt *room.RoomType, totalRooms int) *RoomTypeView {
	return &RoomTypeView{
		ID:               rt.ID(),
		Name:             rt.Name(),
		Code:             rt.Code(),
		MaxAdults:        rt.MaxAdults(),
		MaxChildren:      rt.MaxChildren(),
		MaxOccupancy:     rt.MaxOccupancy(),
		BaseRateCents:    rt.BaseRateCents(),
		WeekendRateCents: rt.WeekendRateCents(),
		Active:           rt.Active(),
		TotalRooms:       totalRooms,
	}
}

func NewRoomView(r *room.Room, roomTypeName string) *RoomView {
	return &RoomView{
		ID:               r.ID(),
		RoomTypeID:       r.RoomTypeID(),
		RoomTypeName:     roomTypeName,
		Number:           r.Number(),
		Floor:            r.Floor(),
		Status:           r.Status().String(),
		CurrentBookingID: r.CurrentBookingID(),
		CurrentGuestID:   r.CurrentGuestID(),
		Active:           r.Active(),
	}
}
