package queries

import (
	"context"

	"fleetbook/internal/domain/promo"
	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/clock"
	"fleetbook/internal/pkg/errs"
	"fleetbook/internal/usecase/shared"
)

type PromoReadStore interface {
	FindByCode(ctx context.Context, db db.Querier, code string) (*shared.PromoSnapshot, error)
}

type PromoQueries interface {
	Validate(ctx context.Context, code string) (*PromoValidationView, error)
}

type promoQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore PromoReadStore
	clock     clock.Clock
}

func NewPromoQueries(uow shared.UnitOfWork, readStore PromoReadStore, clock clock.Clock) PromoQueries {
	return &promoQueriesImpl{
		uow:       uow,
		readStore: readStore,
		clock:     clock,
	}
}

// Validate is advisory: it reports how the code would fare right now without
// consuming anything. The booking transaction repeats the same checks under a
// row lock, so a verdict here can go stale by the time a booking commits.
func (q *promoQueriesImpl) Validate(ctx context.Context, code string) (*PromoValidationView, error) {
	normalized, err := promo.NewCode(code)
	if err != nil {
		return ineligibleVerdict(promo.ReasonNotFound), nil
	}

	var snap *shared.PromoSnapshot
	err = q.uow.WithDB(ctx, func(ctx context.Context, db db.Querier) error {
		var ferr error
		snap, ferr = q.readStore.FindByCode(ctx, db, normalized.String())
		return ferr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ineligibleVerdict(promo.ReasonNotFound), nil
		}
		return nil, err
	}

	discount, err := promo.NewDiscount(snap.FlatOffCents, snap.PercentOff)
	if err != nil {
		return nil, errs.Wrap(err, "stored promo has an invalid discount shape")
	}

	now := q.clock.Now()
	pr := promo.ReconstructPromo(snap.ID, normalized, discount,
		snap.Active, snap.ValidFrom, snap.ValidTo,
		snap.UsageCap, snap.TimesUsed, snap.LastUsedAt, now, now)
	if eerr := pr.EligibilityAt(now); eerr != nil {
		reason, ok := promo.ReasonForError(eerr)
		if !ok {
			return nil, eerr
		}
		return ineligibleVerdict(reason), nil
	}

	promoID := snap.ID
	return &PromoValidationView{
		Valid:        true,
		PromoID:      &promoID,
		FlatOffCents: snap.FlatOffCents,
		PercentOff:   snap.PercentOff,
	}, nil
}

func ineligibleVerdict(reason promo.IneligibilityReason) *PromoValidationView {
	r := reason.String()
	return &PromoValidationView{Valid: false, Reason: &r}
}
