package readstore

import (
	"context"

	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentReadStore struct{}

func NewPaymentReadStore() *PaymentReadStore {
	return &PaymentReadStore{}
}

const findPaymentIntentSQL = `
SELECT id, reservation_id, extension_id, user_id, purpose,
	amount_cents, method, status, external_txn_ref, settled_at
FROM payment_intents
WHERE id = $1`

// FindByID is the lock-free read behind the settlement fast path. A row
// already terminal here short-circuits before any transaction is opened.
func (r *PaymentReadStore) FindByID(ctx context.Context, q db.Querier, id uuid.UUID) (*shared.PaymentIntentSnapshot, error) {
	var (
		snap           shared.PaymentIntentSnapshot
		reservationID  pgtype.UUID
		extensionID    pgtype.UUID
		externalTxnRef pgtype.Text
		settledAt      pgtype.Timestamptz
	)

	err := q.QueryRow(ctx, findPaymentIntentSQL, id).Scan(
		&snap.ID, &reservationID, &extensionID, &snap.UserID, &snap.Purpose,
		&snap.AmountCents, &snap.Method, &snap.Status, &externalTxnRef, &settledAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment intent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment intent by ID", err)
	}

	snap.ReservationID = pgconv.UUIDPtrFromPgtype(reservationID)
	snap.ExtensionID = pgconv.UUIDPtrFromPgtype(extensionID)
	snap.ExternalTxnRef = pgconv.StringPtrFromPgtype(externalTxnRef)
	snap.SettledAt = pgconv.TimePtrFromPgtype(settledAt)
	return &snap, nil
}
