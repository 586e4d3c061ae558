package readstore

import (
	"context"

	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"
	"fleetbook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type PromoReadStore struct{}

func NewPromoReadStore() *PromoReadStore {
	return &PromoReadStore{}
}

const findPromoByCodeSQL = `
SELECT id, code, flat_off_cents, percent_off, active,
	valid_from, valid_to, usage_cap, times_used, last_used_at
FROM promo_codes
WHERE code = $1`

// FindByCode is the advisory lookup behind promo validation. It takes no
// lock; redemption is decided again inside the booking transaction.
func (r *PromoReadStore) FindByCode(ctx context.Context, q db.Querier, code string) (*shared.PromoSnapshot, error) {
	var (
		snap         shared.PromoSnapshot
		flatOffCents pgtype.Int8
		percentOff   pgtype.Float8
		validFrom    pgtype.Timestamptz
		validTo      pgtype.Timestamptz
		lastUsedAt   pgtype.Timestamptz
	)

	err := q.QueryRow(ctx, findPromoByCodeSQL, code).Scan(
		&snap.ID, &snap.Code, &flatOffCents, &percentOff, &snap.Active,
		&validFrom, &validTo, &snap.UsageCap, &snap.TimesUsed, &lastUsedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promo code", err)
	}

	snap.FlatOffCents = pgconv.Int64PtrFromPgtype(flatOffCents)
	snap.PercentOff = pgconv.Float64PtrFromPgtype(percentOff)
	snap.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
	snap.ValidTo = pgconv.TimePtrFromPgtype(validTo)
	snap.LastUsedAt = pgconv.TimePtrFromPgtype(lastUsedAt)
	return &snap, nil
}
