//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/room"
	"stayhub/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryOccupancy(t *testing.T) {
	cases := []struct {
		name     string
		adults   int
		children int
		errIs    error
	}{
		{name: "at the adult cap", adults: 2, children: 0},
		{name: "at the combined cap", adults: 2, children: 2},
		{name: "too many adults", adults: 3, children: 0, errIs: room.ErrOccupancyExceeded},
		{name: "too many children", adults: 1, children: 3, errIs: room.ErrOccupancyExceeded},
		{name: "no adults", adults: 0, children: 1, errIs: room.ErrInvalidOccupancy},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bk, err := builder.NewBookingBuilder().WithOccupancy(tc.adults, tc.children).BuildDomain()

			if tc.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, bk)
			} else {
				require.Nil(t, bk)
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestFactoryRejectsUnknownChannel(t *testing.T) {
	_, err := builder.NewBookingBuilder().WithChannel(booking.Channel("carrier-pigeon")).BuildDomain()
	assert.ErrorIs(t, err, booking.ErrInvalidChannel)
}

func TestFactoryPricing(t *testing.T) {
	t.Run("weekday check-in uses the base rate", func(t *testing.T) {
		bk := builder.NewBookingBuilder().MustBuildDomain()

		// 3 nights x 10000, 7.5% tax.
		assert.Equal(t, int64(10000), bk.Pricing().NightlyRate.Cents())
		assert.Equal(t, int64(32250), bk.Pricing().GrandTotal.Cents())
	})

	t.Run("weekend check-in prices the whole stay at the weekend rate", func(t *testing.T) {
		// 2026-03-07 is a Saturday; the stay crosses into weekdays but the
		// check-in day alone picks the rate.
		bk := builder.NewBookingBuilder().
			WithStay(time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)).
			MustBuildDomain()

		assert.Equal(t, int64(15000), bk.Pricing().NightlyRate.Cents())
	})

	t.Run("extra occupants above base occupancy add surcharges", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		b.RoomType = builder.NewRoomTypeBuilder().
			WithTenantID(b.TenantID).
			WithCaps(3, 2, 5, 2).
			MustBuild()
		b.Room = builder.NewRoomBuilder().
			WithTenantID(b.TenantID).
			WithRoomTypeID(b.RoomType.ID()).
			MustBuild()

		bk := b.WithOccupancy(3, 1).MustBuildDomain()

		// base 10000 + 2500 extra adult + 1000 child
		assert.Equal(t, int64(13500), bk.Pricing().NightlyRate.Cents())
	})

	t.Run("room adjustments apply to the type rate", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		b.Room = builder.NewRoomBuilder().
			WithTenantID(b.TenantID).
			WithRoomTypeID(b.RoomType.ID()).
			WithAdjustment(2000, 0).
			MustBuild()

		bk := b.MustBuildDomain()
		assert.Equal(t, int64(12000), bk.Pricing().NightlyRate.Cents())
	})

	t.Run("agency channel pays the higher platform fee", func(t *testing.T) {
		direct := builder.NewBookingBuilder().WithChannel(booking.ChannelDirect).MustBuildDomain()
		agency := builder.NewBookingBuilder().WithChannel(booking.ChannelAgency).MustBuildDomain()

		assert.Equal(t, 0.02, direct.Pricing().PlatformFeeRate)
		assert.Equal(t, 0.15, agency.Pricing().PlatformFeeRate)
		assert.Greater(t, agency.Pricing().PlatformFee.Cents(), direct.Pricing().PlatformFee.Cents())
	})
}
