package repository

import (
	"context"
	"time"

	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type PromoRepository struct{}

func NewPromoRepository() *PromoRepository {
	return &PromoRepository{}
}

const findPromoForUpdateSQL = `
SELECT id, code, flat_off_cents, percent_off, active,
	valid_from, valid_to, usage_cap, times_used, last_used_at
FROM promo_codes
WHERE id = $1
FOR UPDATE`

// FindByIDForUpdate pins the promo row so the eligibility check and the
// later counter bump see the same usage count. Locked before any vehicle
// lock, never after.
func (r *PromoRepository) FindByIDForUpdate(ctx context.Context, q db.Querier, id uuid.UUID) (*shared.PromoSnapshot, error) {
	snap, err := scanPromoSnapshot(q.QueryRow(ctx, findPromoForUpdateSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock promo code", err)
	}
	return snap, nil
}

const recordPromoUseSQL = `
UPDATE promo_codes
SET times_used = times_used + 1, last_used_at = $2, updated_at = now()
WHERE id = $1`

func (r *PromoRepository) RecordUse(ctx context.Context, q db.Querier, id uuid.UUID, usedAt time.Time) error {
	tag, err := q.Exec(ctx, recordPromoUseSQL, id, usedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to record promo use", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promo code not found", nil, infra.KindNotFound)
	}

	return nil
}

func scanPromoSnapshot(row pgx.Row) (*shared.PromoSnapshot, error) {
	var (
		snap         shared.PromoSnapshot
		flatOffCents pgtype.Int8
		percentOff   pgtype.Float8
		validFrom    pgtype.Timestamptz
		validTo      pgtype.Timestamptz
		lastUsedAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&snap.ID, &snap.Code, &flatOffCents, &percentOff, &snap.Active,
		&validFrom, &validTo, &snap.UsageCap, &snap.TimesUsed, &lastUsedAt,
	)
	if err != nil {
		return nil, err
	}

	snap.FlatOffCents = pgconv.Int64PtrFromPgtype(flatOffCents)
	snap.PercentOff = pgconv.Float64PtrFromPgtype(percentOff)
	snap.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
	snap.ValidTo = pgconv.TimePtrFromPgtype(validTo)
	snap.LastUsedAt = pgconv.TimePtrFromPgtype(lastUsedAt)
	return &snap, nil
}
