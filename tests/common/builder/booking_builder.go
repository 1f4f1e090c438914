//go:build unit || e2e

package builder

import (
	"time"

	dombooking "stayhub/internal/domain/booking"
	domroom "stayhub/internal/domain/room"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

// FixedNow is a Monday; default stays check in on a weekday so weekend-rate
// cases opt in explicitly.
var FixedNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	TenantID      uuid.UUID
	GuestID       uuid.UUID
	Actor         uuid.UUID
	Terms         dombooking.TenantTerms
	Now           time.Time
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	Channel       dombooking.Channel
	AddOns        []dombooking.AddOn
	DiscountCents int64
	RoomType      *domroom.RoomType
	Room          *domroom.Room
}

func NewBookingBuilder() *BookingBuilder {
	tenantID := uuid.New()
	rt := NewRoomTypeBuilder().WithTenantID(tenantID).MustBuild()
	rm := NewRoomBuilder().WithTenantID(tenantID).WithRoomTypeID(rt.ID()).MustBuild()

	return &BookingBuilder{
		TenantID: tenantID,
		GuestID:  uuid.New(),
		Actor:    uuid.New(),
		Terms: dombooking.TenantTerms{
			Currency:           "USD",
			Timezone:           "UTC",
			TaxRate:            0.075,
			ServiceChargeRate:  0,
			PlatformFeeDirect:  0.02,
			PlatformFeeAgency:  0.15,
			CancellationPolicy: dombooking.PolicyModerate,
			AutoConfirm:        false,
		},
		Now:      FixedNow,
		CheckIn:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		Adults:   2,
		Children: 0,
		Channel:  dombooking.ChannelDirect,
		RoomType: rt,
		Room:     rm,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithOccupancy(adults, children int) *BookingBuilder {
	b.Adults = adults
	b.Children = children
	return b
}

func (b *BookingBuilder) WithChannel(ch dombooking.Channel) *BookingBuilder {
	b.Channel = ch
	return b
}

func (b *BookingBuilder) WithAddOn(name string, amountCents int64) *BookingBuilder {
	b.AddOns = append(b.AddOns, dombooking.AddOn{Name: name, AmountCents: amountCents})
	return b
}

func (b *BookingBuilder) WithDiscount(cents int64) *BookingBuilder {
	b.DiscountCents = cents
	return b
}

func (b *BookingBuilder) WithAutoConfirm() *BookingBuilder {
	b.Terms.AutoConfirm = true
	return b
}

func (b *BookingBuilder) WithPolicy(p dombooking.PolicyKind) *BookingBuilder {
	b.Terms.CancellationPolicy = p
	return b
}

func (b *BookingBuilder) BuildStay() (dombooking.StayPeriod, error) {
	return dombooking.NewStayPeriod(b.CheckIn, b.CheckOut, b.Now)
}

func (b *BookingBuilder) MustStay() dombooking.StayPeriod {
	stay, err := b.BuildStay()
	if err != nil {
		panic(err)
	}
	return stay
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}
	factory := dombooking.NewFactory(clock.NewMockClock(b.Now))
	return factory.NewBooking(dombooking.NewBookingInput{
		TenantID:      b.TenantID,
		Terms:         b.Terms,
		RoomType:      b.RoomType,
		Room:          b.Room,
		GuestID:       b.GuestID,
		Stay:          stay,
		Adults:        b.Adults,
		Children:      b.Children,
		Channel:       b.Channel,
		AddOns:        b.AddOns,
		DiscountCents: b.DiscountCents,
		Actor:         b.Actor,
	})
}

func (b *BookingBuilder) MustBuildDomain() *dombooking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomTypeID: b.RoomType.ID(),
		CheckIn:    b.CheckIn.Format("2006-01-02"),
		CheckOut:   b.CheckOut.Format("2006-01-02"),
		Adults:     b.Adults,
		Children:   b.Children,
		Channel:    b.Channel.String(),
		Guest: &reqdto.GuestPayload{
			FullName: "Maria Santos",
			Phone:    "+15550001111",
			Email:    "maria@example.com",
		},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	view := queries.NewBookingView(b.MustBuildDomain())
	view.GuestName = "Maria Santos"
	view.RoomNumber = b.Room.Number()
	view.RoomTypeName = b.RoomType.Name()
	return view
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	bk := b.MustBuildDomain()
	return &queries.BookingListItem{
		ID:              bk.ID(),
		Code:            bk.Code(),
		GuestName:       "Maria Santos",
		RoomNumber:      b.Room.Number(),
		RoomTypeName:    b.RoomType.Name(),
		CheckIn:         bk.Stay().CheckIn(),
		CheckOut:        bk.Stay().CheckOut(),
		Nights:          bk.Stay().Nights(),
		Status:          bk.Status().String(),
		PaymentStatus:   string(bk.PaymentStatus()),
		GrandTotalCents: bk.Pricing().GrandTotal.Cents(),
		BalanceDueCents: bk.BalanceDue().Cents(),
		Currency:        bk.Pricing().Currency,
		CreatedAt:       bk.CreatedAt(),
	}
}
