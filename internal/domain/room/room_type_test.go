//go:build unit

package room_test

import (
	"testing"

	"stayhub/internal/domain/room"
	"stayhub/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomType(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		rt, err := builder.NewRoomTypeBuilder().Build()
		require.NoError(t, err)

		assert.Equal(t, "DLX", rt.Code())
		assert.True(t, rt.Active())
		assert.Equal(t, 2, rt.BaseOccupancy())
	})

	t.Run("code is upper-cased and trimmed", func(t *testing.T) {
		rt, err := builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
			b.Code = "  dlx "
		}).Build()
		require.NoError(t, err)
		assert.Equal(t, "DLX", rt.Code())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.RoomTypeBuilder)
			errIs  error
		}{
			{
				name:   "empty name",
				mutate: func(b *builder.RoomTypeBuilder) { b.Name = "  " },
				errIs:  room.ErrInvalidRoomTypeName,
			},
			{
				name:   "empty code",
				mutate: func(b *builder.RoomTypeBuilder) { b.Code = "" },
				errIs:  room.ErrInvalidRoomTypeCode,
			},
			{
				name:   "zero adults cap",
				mutate: func(b *builder.RoomTypeBuilder) { b.MaxAdults = 0 },
				errIs:  room.ErrInvalidOccupancyCap,
			},
			{
				name:   "negative children cap",
				mutate: func(b *builder.RoomTypeBuilder) { b.MaxChildren = -1 },
				errIs:  room.ErrInvalidOccupancyCap,
			},
			{
				name:   "zero base rate",
				mutate: func(b *builder.RoomTypeBuilder) { b.BaseRateCents = 0 },
				errIs:  room.ErrInvalidRate,
			},
			{
				name:   "negative weekend rate",
				mutate: func(b *builder.RoomTypeBuilder) { b.WeekendRateCents = -1 },
				errIs:  room.ErrInvalidRate,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewRoomTypeBuilder().With(tc.mutate).Build()
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("out-of-range base occupancy falls back to the adult cap", func(t *testing.T) {
		rt, err := builder.NewRoomTypeBuilder().WithCaps(2, 2, 4, 0).Build()
		require.NoError(t, err)
		assert.Equal(t, 2, rt.BaseOccupancy())

		rt, err = builder.NewRoomTypeBuilder().WithCaps(2, 2, 4, 5).Build()
		require.NoError(t, err)
		assert.Equal(t, 2, rt.BaseOccupancy())
	})
}

func TestNightlyRateCents(t *testing.T) {
	rt := builder.NewRoomTypeBuilder().MustBuild()

	cases := []struct {
		name     string
		weekend  bool
		adults   int
		children int
		want     int64
	}{
		{name: "weekday base occupancy", adults: 2, want: 10000},
		{name: "weekend base occupancy", weekend: true, adults: 2, want: 15000},
		{name: "child surcharge", adults: 2, children: 2, want: 12000},
		{name: "weekend with child surcharge", weekend: true, adults: 1, children: 1, want: 16000},
		{name: "below base occupancy pays the full rate", adults: 1, want: 10000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rt.NightlyRateCents(tc.weekend, tc.adults, tc.children))
		})
	}

	t.Run("extra adult above base occupancy", func(t *testing.T) {
		wide := builder.NewRoomTypeBuilder().WithCaps(4, 0, 4, 2).MustBuild()
		assert.Equal(t, int64(15000), wide.NightlyRateCents(false, 4, 0))
	})

	t.Run("zero weekend rate falls back to base", func(t *testing.T) {
		flat := builder.NewRoomTypeBuilder().WithRates(10000, 0, 0, 0).MustBuild()
		assert.Equal(t, int64(10000), flat.NightlyRateCents(true, 2, 0))
	})
}

func TestRoomTypeDeactivate(t *testing.T) {
	rt := builder.NewRoomTypeBuilder().MustBuild()

	assert.ErrorIs(t, rt.Deactivate(3), room.ErrRoomTypeHasRooms)
	assert.True(t, rt.Active())

	require.NoError(t, rt.Deactivate(0))
	assert.False(t, rt.Active())
}

func TestRoomTypeUpdates(t *testing.T) {
	rt := builder.NewRoomTypeBuilder().MustBuild()

	require.NoError(t, rt.Rename("Junior Suite"))
	assert.Equal(t, "Junior Suite", rt.Name())
	assert.ErrorIs(t, rt.Rename(" "), room.ErrInvalidRoomTypeName)

	require.NoError(t, rt.UpdateRates(12000, 18000, 3000, 1500))
	assert.Equal(t, int64(12000), rt.BaseRateCents())
	assert.ErrorIs(t, rt.UpdateRates(0, 0, 0, 0), room.ErrInvalidRate)
}
