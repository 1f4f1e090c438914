//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingReadStore struct {
	queries.BookingReadStore

	listItems []*queries.BookingListItem
	listCalls []int32
	timezone  string
	days      []time.Time
}

func (f *fakeBookingReadStore) List(_ context.Context, _ uuid.UUID, _ queries.BookingFilter, _ *time.Time, _ *uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	f.listCalls = append(f.listCalls, limit)
	if int(limit) < len(f.listItems) {
		return f.listItems[:limit], nil
	}
	return f.listItems, nil
}

func (f *fakeBookingReadStore) TenantTimezone(_ context.Context, _ uuid.UUID) (string, error) {
	return f.timezone, nil
}

func (f *fakeBookingReadStore) ArrivalsOn(_ context.Context, _ uuid.UUID, day time.Time) ([]*queries.BookingListItem, error) {
	f.days = append(f.days, day)
	return []*queries.BookingListItem{}, nil
}

func (f *fakeBookingReadStore) DeparturesOn(_ context.Context, _ uuid.UUID, day time.Time) ([]*queries.BookingListItem, error) {
	f.days = append(f.days, day)
	return []*queries.BookingListItem{}, nil
}

func (f *fakeBookingReadStore) InHouseOn(_ context.Context, _ uuid.UUID, day time.Time) ([]*queries.BookingListItem, error) {
	f.days = append(f.days, day)
	return []*queries.BookingListItem{}, nil
}

func listItems(n int) []*queries.BookingListItem {
	items := make([]*queries.BookingListItem, 0, n)
	base := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	for i := range n {
		items = append(items, &queries.BookingListItem{
			ID:        uuid.New(),
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return items
}

func TestListPagination(t *testing.T) {
	tenantID := uuid.New()
	clk := clock.NewMockClock(builder.FixedNow)

	t.Run("short page has no next cursor", func(t *testing.T) {
		store := &fakeBookingReadStore{listItems: listItems(3)}
		q := queries.NewBookingQueries(store, clk)

		page, err := q.List(context.Background(), tenantID, queries.BookingFilter{Limit: 10})
		require.NoError(t, err)

		assert.Len(t, page.Items, 3)
		assert.Nil(t, page.NextCursor)
		// one extra row is requested to detect the next page
		assert.Equal(t, []int32{11}, store.listCalls)
	})

	t.Run("full page emits a cursor for the last item", func(t *testing.T) {
		store := &fakeBookingReadStore{listItems: listItems(11)}
		q := queries.NewBookingQueries(store, clk)

		page, err := q.List(context.Background(), tenantID, queries.BookingFilter{Limit: 10})
		require.NoError(t, err)

		require.Len(t, page.Items, 10)
		require.NotNil(t, page.NextCursor)

		last := page.Items[9]
		at, id, err := queries.DecodeAfterCursor(*page.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, last.CreatedAt.UnixMicro(), at.UnixMicro())
		assert.Equal(t, last.ID, id)
	})

	t.Run("garbage cursor is rejected", func(t *testing.T) {
		store := &fakeBookingReadStore{}
		q := queries.NewBookingQueries(store, clk)

		_, err := q.List(context.Background(), tenantID, queries.BookingFilter{AfterCursor: "not-a-cursor"})
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
		assert.Empty(t, store.listCalls)
	})
}

func TestTodayOperationsTimezone(t *testing.T) {
	tenantID := uuid.New()

	t.Run("today follows the tenant's timezone", func(t *testing.T) {
		// 20:00 UTC on Mar 2 is already Mar 3 in Bangkok (UTC+7).
		clk := clock.NewMockClock(time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC))
		store := &fakeBookingReadStore{timezone: "Asia/Bangkok"}
		q := queries.NewBookingQueries(store, clk)

		view, err := q.TodayOperations(context.Background(), tenantID)
		require.NoError(t, err)

		assert.Equal(t, "2026-03-03", view.Date)
		require.Len(t, store.days, 3)
		for _, d := range store.days {
			assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), d)
		}
	})

	t.Run("unknown timezone falls back to UTC", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC))
		store := &fakeBookingReadStore{timezone: "Mars/Olympus_Mons"}
		q := queries.NewBookingQueries(store, clk)

		view, err := q.TodayOperations(context.Background(), tenantID)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-02", view.Date)
	})

	t.Run("sections are present even when empty", func(t *testing.T) {
		clk := clock.NewMockClock(builder.FixedNow)
		store := &fakeBookingReadStore{timezone: "UTC"}
		q := queries.NewBookingQueries(store, clk)

		view, err := q.TodayOperations(context.Background(), tenantID)
		require.NoError(t, err)
		assert.NotNil(t, view.Arrivals)
		assert.NotNil(t, view.Departures)
		assert.NotNil(t, view.InHouse)
	})
}
