package booking

import (
	"stayhub/internal/domain/room"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
)

// TenantTerms is the read-only per-tenant configuration snapshot consumed at
// booking time: rates, policy, confirmation behavior and currency.
type TenantTerms struct {
	Currency           string
	Timezone           string
	TaxRate            float64
	ServiceChargeRate  float64
	PlatformFeeDirect  float64
	PlatformFeeAgency  float64
	CancellationPolicy PolicyKind
	AutoConfirm        bool
}

// PlatformFeeFor picks the platform's revenue-share rate by channel: direct,
// website and messaging channels pay the lower direct rate.
func (t TenantTerms) PlatformFeeFor(ch Channel) float64 {
	if ch.IsDirect() {
		return t.PlatformFeeDirect
	}
	return t.PlatformFeeAgency
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

type NewBookingInput struct {
	TenantID      uuid.UUID
	Terms         TenantTerms
	RoomType      *room.RoomType
	Room          *room.Room
	GuestID       uuid.UUID
	Stay          StayPeriod
	Adults        int
	Children      int
	Channel       Channel
	AddOns        []AddOn
	DiscountCents int64
	Actor         uuid.UUID
}

// NewBooking validates occupancy against the room type, prices the stay at
// the check-in-day rate with the room's adjustment applied, and assembles the
// aggregate in its initial state. Room selection and the conflict re-check
// stay with the caller's transaction.
func (f *Factory) NewBooking(in NewBookingInput) (*Booking, error) {
	if !in.Channel.IsValid() {
		return nil, ErrInvalidChannel
	}
	if err := in.RoomType.ValidateOccupancy(in.Adults, in.Children); err != nil {
		return nil, err
	}

	now := f.Clock.Now()

	typeRate := in.RoomType.NightlyRateCents(in.Stay.WeekendCheckIn(), in.Adults, in.Children)
	nightlyRate := in.Room.AdjustedRateCents(typeRate)

	pricing := CalculateQuote(QuoteInput{
		NightlyRateCents:  nightlyRate,
		Nights:            in.Stay.Nights(),
		AddOns:            in.AddOns,
		DiscountCents:     in.DiscountCents,
		TaxRate:           in.Terms.TaxRate,
		ServiceChargeRate: in.Terms.ServiceChargeRate,
		PlatformFeeRate:   in.Terms.PlatformFeeFor(in.Channel),
		Currency:          in.Terms.Currency,
	})

	status := StatusPending
	if in.Terms.AutoConfirm {
		status = StatusConfirmed
	}

	b := &Booking{
		id:               uuid.New(),
		tenantID:         in.TenantID,
		code:             NewBookingCode(),
		confirmationCode: NewConfirmationCode(),
		guestID:          in.GuestID,
		roomID:           in.Room.ID(),
		roomTypeID:       in.RoomType.ID(),
		stay:             in.Stay,
		adults:           in.Adults,
		children:         in.Children,
		pricing:          pricing,
		status:           status,
		channel:          in.Channel,
		addOns:           in.AddOns,
		createdBy:        in.Actor,
		modifiedBy:       in.Actor,
		createdAt:        now,
		updatedAt:        now,
	}
	b.appendHistory(ActionCreated, status, status, in.Actor, now)
	return b, nil
}
