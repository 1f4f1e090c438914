//go:build unit

package queries_test

import (
	"context"
	"testing"

	"stayhub/internal/domain/booking"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailabilityStore struct {
	inventories []*queries.RoomTypeInventory
	gotStay     booking.StayPeriod
}

func (f *fakeAvailabilityStore) FreeUnitsByRoomType(_ context.Context, _ uuid.UUID, stay booking.StayPeriod, _ *uuid.UUID) ([]*queries.RoomTypeInventory, error) {
	f.gotStay = stay
	return f.inventories, nil
}

func TestCheckAvailability(t *testing.T) {
	tenantID := uuid.New()
	clk := clock.NewMockClock(builder.FixedNow)

	standard := builder.NewRoomTypeBuilder().WithTenantID(tenantID).MustBuild()
	single := builder.NewRoomTypeBuilder().
		WithTenantID(tenantID).
		WithCaps(1, 0, 1, 1).
		WithRates(8000, 9000, 0, 0).
		MustBuild()

	t.Run("prices each type for the stay", func(t *testing.T) {
		store := &fakeAvailabilityStore{inventories: []*queries.RoomTypeInventory{
			{RoomType: standard, UnitsAvailable: 4, Currency: "USD"},
		}}
		q := queries.NewAvailabilityQueries(store, clk)

		// Tuesday check-in, 3 nights.
		results, err := q.CheckAvailability(context.Background(), tenantID, "2026-03-10", "2026-03-13", nil, 2, 0)
		require.NoError(t, err)
		require.Len(t, results, 1)

		got := results[0]
		assert.Equal(t, standard.ID(), got.RoomTypeID)
		assert.Equal(t, 4, got.UnitsAvailable)
		assert.Equal(t, int64(10000), got.NightlyRateCents)
		assert.Equal(t, int64(30000), got.TotalPriceCents)
		assert.Equal(t, 3, got.Nights)
		assert.Equal(t, "USD", got.Currency)
		assert.Equal(t, 3, store.gotStay.Nights())
	})

	t.Run("weekend check-in uses the weekend rate", func(t *testing.T) {
		store := &fakeAvailabilityStore{inventories: []*queries.RoomTypeInventory{
			{RoomType: standard, UnitsAvailable: 1, Currency: "USD"},
		}}
		q := queries.NewAvailabilityQueries(store, clk)

		// 2026-03-07 is a Saturday.
		results, err := q.CheckAvailability(context.Background(), tenantID, "2026-03-07", "2026-03-09", nil, 2, 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, int64(15000), results[0].NightlyRateCents)
	})

	t.Run("types that cannot fit the party are dropped", func(t *testing.T) {
		store := &fakeAvailabilityStore{inventories: []*queries.RoomTypeInventory{
			{RoomType: standard, UnitsAvailable: 2, Currency: "USD"},
			{RoomType: single, UnitsAvailable: 5, Currency: "USD"},
		}}
		q := queries.NewAvailabilityQueries(store, clk)

		results, err := q.CheckAvailability(context.Background(), tenantID, "2026-03-10", "2026-03-12", nil, 2, 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, standard.ID(), results[0].RoomTypeID)
	})

	t.Run("fully booked types are dropped", func(t *testing.T) {
		store := &fakeAvailabilityStore{inventories: []*queries.RoomTypeInventory{
			{RoomType: standard, UnitsAvailable: 0, Currency: "USD"},
		}}
		q := queries.NewAvailabilityQueries(store, clk)

		results, err := q.CheckAvailability(context.Background(), tenantID, "2026-03-10", "2026-03-12", nil, 2, 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("invalid dates are rejected before hitting the store", func(t *testing.T) {
		store := &fakeAvailabilityStore{}
		q := queries.NewAvailabilityQueries(store, clk)

		cases := []struct {
			name     string
			checkIn  string
			checkOut string
		}{
			{name: "malformed date", checkIn: "03/10/2026", checkOut: "2026-03-12"},
			{name: "checkout before checkin", checkIn: "2026-03-12", checkOut: "2026-03-10"},
			{name: "zero nights", checkIn: "2026-03-10", checkOut: "2026-03-10"},
			{name: "past check-in", checkIn: "2026-02-01", checkOut: "2026-02-05"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := q.CheckAvailability(context.Background(), tenantID, tc.checkIn, tc.checkOut, nil, 2, 0)
				assert.ErrorIs(t, err, queries.ErrInvalidDateRange)
			})
		}
	})
}
