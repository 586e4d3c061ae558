package repository

import (
	"context"
	"time"

	"fleetbook/internal/domain/payment"
	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

const createPaymentIntentSQL = `
INSERT INTO payment_intents (
	id, reservation_id, extension_id, user_id, purpose,
	amount_cents, method, status
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *PaymentRepository) Create(ctx context.Context, q db.Querier, intent *payment.Intent) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.QueryRow(ctx, createPaymentIntentSQL,
		intent.ID(),
		pgconv.UUIDPtrToPgtype(intent.ReservationID()),
		pgconv.UUIDPtrToPgtype(intent.ExtensionID()),
		intent.UserID(),
		intent.Purpose().String(),
		intent.AmountCents(),
		intent.Method(),
		intent.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment intent", err)
	}

	return id, nil
}

const findPaymentIntentForUpdateSQL = `
SELECT id, reservation_id, extension_id, user_id, purpose,
	amount_cents, method, status, external_txn_ref, settled_at
FROM payment_intents
WHERE id = $1
FOR UPDATE`

func (r *PaymentRepository) FindByIDForUpdate(ctx context.Context, q db.Querier, id uuid.UUID) (*shared.PaymentIntentSnapshot, error) {
	var (
		snap           shared.PaymentIntentSnapshot
		reservationID  pgtype.UUID
		extensionID    pgtype.UUID
		externalTxnRef pgtype.Text
		settledAt      pgtype.Timestamptz
	)

	err := q.QueryRow(ctx, findPaymentIntentForUpdateSQL, id).Scan(
		&snap.ID, &reservationID, &extensionID, &snap.UserID, &snap.Purpose,
		&snap.AmountCents, &snap.Method, &snap.Status, &externalTxnRef, &settledAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment intent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment intent", err)
	}

	snap.ReservationID = pgconv.UUIDPtrFromPgtype(reservationID)
	snap.ExtensionID = pgconv.UUIDPtrFromPgtype(extensionID)
	snap.ExternalTxnRef = pgconv.StringPtrFromPgtype(externalTxnRef)
	snap.SettledAt = pgconv.TimePtrFromPgtype(settledAt)
	return &snap, nil
}

// The status guard makes settlement first-writer-wins even if a caller
// skipped the row lock.
const markPaymentSettledSQL = `
UPDATE payment_intents
SET status = $2, external_txn_ref = $3, settled_at = $4, updated_at = now()
WHERE id = $1 AND status = 'pending'`

func (r *PaymentRepository) MarkSettled(ctx context.Context, q db.Querier, id uuid.UUID, status payment.Status, externalTxnRef string, settledAt time.Time) (bool, error) {
	tag, err := q.Exec(ctx, markPaymentSettledSQL, id, status.String(), externalTxnRef, settledAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to settle payment intent", err)
	}

	return tag.RowsAffected() > 0, nil
}

const sumSucceededCentsSQL = `
SELECT COALESCE(SUM(amount_cents), 0)
FROM payment_intents
WHERE reservation_id = $1 AND status = 'success'`

func (r *PaymentRepository) SumSucceededCentsByReservation(ctx context.Context, q db.Querier, reservationID uuid.UUID) (int64, error) {
	var sum int64
	if err := q.QueryRow(ctx, sumSucceededCentsSQL, reservationID).Scan(&sum); err != nil {
		return 0, infra.WrapRepoErr("failed to sum settled payments", err)
	}

	return sum, nil
}

const hasPendingIntentSQL = `
SELECT EXISTS (
	SELECT 1
	FROM payment_intents
	WHERE reservation_id = $1 AND status = 'pending'
)`

func (r *PaymentRepository) HasPendingForReservation(ctx context.Context, q db.Querier, reservationID uuid.UUID) (bool, error) {
	var exists bool
	if err := q.QueryRow(ctx, hasPendingIntentSQL, reservationID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check pending payments", err)
	}

	return exists, nil
}
