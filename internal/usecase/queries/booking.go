package queries

import (
	"context"
	"errors"
	"time"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrInvalidCursor   = errors.New("invalid cursor")
	ErrQueryFailed     = errors.New("query failed")
)

type BookingFilter struct {
	Status      *string
	RoomTypeID  *uuid.UUID
	GuestID     *uuid.UUID
	From        *time.Time
	To          *time.Time
	AfterCursor string
	Limit       int
}

type BookingListPage struct {
	Items      []*BookingListItem
	NextCursor *string
}

// BookingReadStore is the read-side port implemented by infra/readstore.
type BookingReadStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*BookingView, error)
	FindByConfirmationCode(ctx context.Context, code string) (*BookingView, error)
	List(ctx context.Context, tenantID uuid.UUID, f BookingFilter, afterAt *time.Time, afterID *uuid.UUID, limit int32) ([]*BookingListItem, error)
	ArrivalsOn(ctx context.Context, tenantID uuid.UUID, day time.Time) ([]*BookingListItem, error)
	DeparturesOn(ctx context.Context, tenantID uuid.UUID, day time.Time) ([]*BookingListItem, error)
	InHouseOn(ctx context.Context, tenantID uuid.UUID, day time.Time) ([]*BookingListItem, error)
	TenantTimezone(ctx context.Context, tenantID uuid.UUID) (string, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*BookingView, error)
	GetByConfirmationCode(ctx context.Context, code string) (*BookingView, error)
	List(ctx context.Context, tenantID uuid.UUID, f BookingFilter) (*BookingListPage, error)
	TodayOperations(ctx context.Context, tenantID uuid.UUID) (*TodayOperationsView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, tenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByConfirmationCode(ctx context.Context, code string) (*BookingView, error) {
	view, err := q.store.FindByConfirmationCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, tenantID uuid.UUID, f BookingFilter) (*BookingListPage, error) {
	var (
		afterAt *time.Time
		afterID *uuid.UUID
	)
	if f.AfterCursor != "" {
		t, id, err := DecodeAfterCursor(f.AfterCursor)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidCursor)
		}
		afterAt, afterID = &t, &id
	}

	limit := ClampLimit(f.Limit)

	// Fetch one extra row to learn whether a next page exists.
	items, err := q.store.List(ctx, tenantID, f, afterAt, afterID, limit+1)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	page := &BookingListPage{Items: items}
	if len(items) > int(limit) {
		page.Items = items[:limit]
		last := page.Items[len(page.Items)-1]
		cursor := EncodeAfterCursor(last.CreatedAt, last.ID)
		page.NextCursor = &cursor
	}
	return page, nil
}

// TodayOperations resolves "today" in the tenant's timezone, then collects
// arrivals, departures and the in-house list for that calendar day.
func (q *bookingQueriesImpl) TodayOperations(ctx context.Context, tenantID uuid.UUID) (*TodayOperationsView, error) {
	tzName, err := q.store.TenantTimezone(ctx, tenantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		loc = time.UTC
	}
	now := q.clock.Now().In(loc)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	arrivals, err := q.store.ArrivalsOn(ctx, tenantID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	departures, err := q.store.DeparturesOn(ctx, tenantID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	inHouse, err := q.store.InHouseOn(ctx, tenantID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	return &TodayOperationsView{
		Date:       day.Format("2006-01-02"),
		Arrivals:   arrivals,
		Departures: departures,
		InHouse:    inHouse,
	}, nil
}
