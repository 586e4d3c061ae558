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

func CreateTestVehicle(t *testing.T, db DBLike, name string, pricePerDayCents int64) uuid.UUID {
	t.Helper()
	return CreateTestVehicleWithStatus(t, db, name, pricePerDayCents, "published")
}

func CreateTestVehicleWithStatus(t *testing.T, db DBLike, name string, pricePerDayCents int64, status string) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO vehicles (id, name, price_per_day_cents, status) VALUES ($1, $2, $3, $4)",
		vehicleID, name, pricePerDayCents, status)
	require.NoError(t, err)

	return vehicleID
}

// CreateTestPromo inserts an active flat-discount code with no validity window.
func CreateTestPromo(t *testing.T, db DBLike, code string, flatOffCents int64, usageCap int32) uuid.UUID {
	t.Helper()

	promoID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO promo_codes (id, code, flat_off_cents, usage_cap) VALUES ($1, $2, $3, $4) ON CONFLICT (code) DO NOTHING",
		promoID, code, flatOffCents, usageCap)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM promo_codes WHERE code = $1", code).Scan(&promoID)
	}

	return promoID
}

func CreateTestPercentPromo(t *testing.T, db DBLike, code string, percentOff float64, usageCap int32) uuid.UUID {
	t.Helper()

	promoID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO promo_codes (id, code, percent_off, usage_cap) VALUES ($1, $2, $3, $4) ON CONFLICT (code) DO NOTHING",
		promoID, code, percentOff, usageCap)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM promo_codes WHERE code = $1", code).Scan(&promoID)
	}

	return promoID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
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

	return nil
}
