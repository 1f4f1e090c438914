package response

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               uuid.UUID              `json:"id"`
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
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

type BookingListItemResponse struct {
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

type BookingListResponse struct {
	Items      []*BookingListItemResponse `json:"items"`
	NextCursor *string                    `json:"next_cursor,omitempty"`
}

type TodayOperationsResponse struct {
	Date       string                     `json:"date"`
	Arrivals   []*BookingListItemResponse `json:"arrivals"`
	Departures []*BookingListItemResponse `json:"departures"`
	InHouse    []*BookingListItemResponse `json:"in_house"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListItemResponse {
	out := make([]*BookingListItemResponse, len(items))
	for i, item := range items {
		var resp BookingListItemResponse
		_ = copier.Copy(&resp, item)
		out[i] = &resp
	}
	return out
}

func FromBookingListPage(page *queries.BookingListPage) *BookingListResponse {
	return &BookingListResponse{
		Items:      FromBookingListItems(page.Items),
		NextCursor: page.NextCursor,
	}
}

func FromTodayOperations(v *queries.TodayOperationsView) *TodayOperationsResponse {
	return &TodayOperationsResponse{
		Date:       v.Date,
		Arrivals:   FromBookingListItems(v.Arrivals),
		Departures: FromBookingListItems(v.Departures),
		InHouse:    FromBookingListItems(v.InHouse),
	}
}
