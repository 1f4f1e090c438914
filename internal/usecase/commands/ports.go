package commands

import (
	"time"

	"github.com/google/uuid"
)

// GuestInfo is the inline guest payload accepted at booking time when no
// guestId is supplied.
type GuestInfo struct {
	FullName string
	Phone    string
	Email    string
	IDNumber string
}

// Event payloads carry the minimal guest/booking fields the notification
// collaborator needs to render a message.

const (
	TopicBookingCreated   = "booking.created"
	TopicPaymentReceived  = "booking.payment_received"
	TopicBookingCancelled = "booking.cancelled"
)

type BookingCreatedEvent struct {
	BookingID        uuid.UUID `json:"bookingId"`
	Code             string    `json:"code"`
	ConfirmationCode string    `json:"confirmationCode"`
	GuestName        string    `json:"guestName"`
	GuestPhone       string    `json:"guestPhone"`
	RoomNumber       string    `json:"roomNumber"`
	CheckIn          time.Time `json:"checkIn"`
	CheckOut         time.Time `json:"checkOut"`
	GrandTotalCents  int64     `json:"grandTotalCents"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
}

type PaymentReceivedEvent struct {
	BookingID       uuid.UUID `json:"bookingId"`
	Code            string    `json:"code"`
	GuestName       string    `json:"guestName"`
	GuestPhone      string    `json:"guestPhone"`
	AmountCents     int64     `json:"amountCents"`
	Method          string    `json:"method"`
	BalanceDueCents int64     `json:"balanceDueCents"`
	Currency        string    `json:"currency"`
}

type BookingCancelledEvent struct {
	BookingID    uuid.UUID `json:"bookingId"`
	Code         string    `json:"code"`
	GuestName    string    `json:"guestName"`
	GuestPhone   string    `json:"guestPhone"`
	CheckIn      time.Time `json:"checkIn"`
	RefundCents  int64     `json:"refundCents"`
	PenaltyCents int64     `json:"penaltyCents"`
	Currency     string    `json:"currency"`
}
