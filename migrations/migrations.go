// Package migrations applies the embedded schema files at startup. Files
// run in filename order under an advisory lock, so several instances can
// boot against the same database without racing each other.
package migrations

import (
	"context"
	"embed"
	"sort"
	"strings"

	"fleetbook/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed *.sql
var migrationFiles embed.FS

// advisoryLockID serializes migration runs across instances. Any constant
// works as long as every instance agrees on it.
const advisoryLockID int64 = 727204811

func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	entries, err := migrationFiles.ReadDir(".")
	if err != nil {
		return errs.Wrap(err, "failed to read embedded migrations")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to acquire migration connection")
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockID); err != nil {
		return errs.Wrap(err, "failed to acquire migration lock")
	}
	defer func() {
		_, _ = conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, advisoryLockID)
	}()

	if _, err := conn.Exec(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	name       TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return errs.Wrap(err, "failed to ensure schema_migrations table")
	}

	for _, name := range names {
		var applied bool
		if err := conn.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name,
		).Scan(&applied); err != nil {
			return errs.Wrapf(err, "failed to check migration %s", name)
		}
		if applied {
			continue
		}

		sqlBytes, err := migrationFiles.ReadFile(name)
		if err != nil {
			return errs.Wrapf(err, "failed to read migration %s", name)
		}
		sql := strings.TrimSpace(string(sqlBytes))
		if sql == "" {
			continue
		}

		if _, err := conn.Exec(ctx, sql); err != nil {
			return errs.Wrapf(err, "failed to apply migration %s", name)
		}
		if _, err := conn.Exec(ctx,
			`INSERT INTO schema_migrations (name) VALUES ($1)`, name,
		); err != nil {
			return errs.Wrapf(err, "failed to record migration %s", name)
		}
	}

	return nil
}
