package repository

import (
	"context"

	"fleetbook/internal/domain/extension"
	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ExtensionRepository struct{}

func NewExtensionRepository() *ExtensionRepository {
	return &ExtensionRepository{}
}

const createExtensionSQL = `
INSERT INTO reservation_extensions (
	id, reservation_id, user_id, added_hours, new_ends_at, price_cents, status
)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *ExtensionRepository) Create(ctx context.Context, q db.Querier, ext *extension.Extension) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.QueryRow(ctx, createExtensionSQL,
		ext.ID(),
		ext.ReservationID(),
		ext.UserID(),
		ext.AddedHours(),
		ext.NewEndsAt(),
		ext.PriceCents(),
		ext.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create extension", err)
	}

	return id, nil
}

const setExtensionPaymentIntentSQL = `
UPDATE reservation_extensions
SET payment_intent_id = $2, updated_at = now()
WHERE id = $1`

func (r *ExtensionRepository) SetPaymentIntent(ctx context.Context, q db.Querier, extensionID, intentID uuid.UUID) error {
	tag, err := q.Exec(ctx, setExtensionPaymentIntentSQL, extensionID, intentID)
	if err != nil {
		return infra.WrapRepoErr("failed to link payment intent to extension", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("extension not found", nil, infra.KindNotFound)
	}

	return nil
}

const findExtensionForUpdateSQL = `
SELECT id, reservation_id, user_id, added_hours, new_ends_at,
	price_cents, status, payment_intent_id
FROM reservation_extensions
WHERE id = $1
FOR UPDATE`

func (r *ExtensionRepository) FindByIDForUpdate(ctx context.Context, q db.Querier, id uuid.UUID) (*shared.ExtensionSnapshot, error) {
	var (
		snap            shared.ExtensionSnapshot
		paymentIntentID pgtype.UUID
	)

	err := q.QueryRow(ctx, findExtensionForUpdateSQL, id).Scan(
		&snap.ID, &snap.ReservationID, &snap.UserID, &snap.AddedHours,
		&snap.NewEndsAt, &snap.PriceCents, &snap.Status, &paymentIntentID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("extension not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock extension", err)
	}

	snap.PaymentIntentID = pgconv.UUIDPtrFromPgtype(paymentIntentID)
	return &snap, nil
}

const updateExtensionStatusSQL = `
UPDATE reservation_extensions
SET status = $2, updated_at = now()
WHERE id = $1`

func (r *ExtensionRepository) UpdateStatus(ctx context.Context, q db.Querier, id uuid.UUID, status extension.Status) error {
	tag, err := q.Exec(ctx, updateExtensionStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update extension status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("extension not found", nil, infra.KindNotFound)
	}

	return nil
}

const existsPendingExtensionSQL = `
SELECT EXISTS (
	SELECT 1
	FROM reservation_extensions
	WHERE reservation_id = $1 AND status = 'pending_payment'
)`

// ExistsPendingForReservation enforces one extension in flight per
// reservation. Callers must hold the reservation row lock.
func (r *ExtensionRepository) ExistsPendingForReservation(ctx context.Context, q db.Querier, reservationID uuid.UUID) (bool, error) {
	var exists bool
	if err := q.QueryRow(ctx, existsPendingExtensionSQL, reservationID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check pending extensions", err)
	}

	return exists, nil
}
