//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestTenant inserts a hotel with the standard commercial terms used
// across the test suite: 7.5% tax, no service charge, 2%/15% platform fee
// for direct/agency bookings, moderate cancellation policy.
func CreateTestTenant(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	tenantID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO tenants (id, name, currency, timezone, tax_rate, service_charge_rate,
		                     platform_fee_direct, platform_fee_agency, cancellation_policy, auto_confirm)
		VALUES ($1, $2, 'USD', 'UTC', 0.075, 0, 0.02, 0.15, 'moderate', false)`,
		tenantID, name)
	require.NoError(t, err)

	return tenantID
}

func CreateTestRoomType(t *testing.T, db DBLike, tenantID uuid.UUID, name, code string, baseRateCents, weekendRateCents int64) uuid.UUID {
	t.Helper()

	roomTypeID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO room_types (id, tenant_id, name, code, max_adults, max_children, max_occupancy,
		                        base_occupancy, base_rate_cents, weekend_rate_cents, extra_adult_cents, extra_child_cents)
		VALUES ($1, $2, $3, $4, 2, 2, 4, 2, $5, $6, 2500, 1000)`,
		roomTypeID, tenantID, name, code, baseRateCents, weekendRateCents)
	require.NoError(t, err)

	return roomTypeID
}

func CreateTestRoom(t *testing.T, db DBLike, tenantID, roomTypeID uuid.UUID, number string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO rooms (id, tenant_id, room_type_id, number, floor)
		VALUES ($1, $2, $3, $4, $5)`,
		roomID, tenantID, roomTypeID, number, number[:1])
	require.NoError(t, err)

	return roomID
}

func CreateTestGuest(t *testing.T, db DBLike, fullName, phone string) uuid.UUID {
	t.Helper()

	guestID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO guests (id, full_name, phone) VALUES ($1, $2, $3) ON CONFLICT (phone) DO NOTHING",
		guestID, fullName, phone)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM guests WHERE phone = $1", phone).Scan(&guestID)
	}

	return guestID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO tenants (id, name, currency, timezone, tax_rate, service_charge_rate,
		                     platform_fee_direct, platform_fee_agency, cancellation_policy, auto_confirm)
		SELECT gen_random_uuid(), 'Harborview Hotel', 'USD', 'UTC', 0.075, 0, 0.02, 0.15, 'moderate', false
		WHERE NOT EXISTS (SELECT 1 FROM tenants WHERE name = 'Harborview Hotel');
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
