package repository

import (
	"context"
	"time"

	"fleetbook/internal/domain/reservation"
	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const createReservationSQL = `
INSERT INTO reservations (
	id, vehicle_id, user_id, starts_at, ends_at, status,
	subtotal_cents, discount_cents, service_charge_cents, total_cents,
	promo_code_id, hold_deadline
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

func (r *ReservationRepository) Create(ctx context.Context, q db.Querier, res *reservation.Reservation) (uuid.UUID, error) {
	quote := res.Quote()

	var id uuid.UUID
	err := q.QueryRow(ctx, createReservationSQL,
		res.ID(),
		res.VehicleID(),
		res.UserID(),
		res.Period().Start(),
		res.Period().End(),
		res.Status().String(),
		quote.Subtotal().Cents(),
		quote.Discount().Cents(),
		quote.ServiceCharge().Cents(),
		quote.Total().Cents(),
		pgconv.UUIDPtrToPgtype(res.PromoID()),
		pgconv.TimePtrToPgtype(res.HoldDeadline()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

const findReservationForUpdateSQL = `
SELECT id, vehicle_id, user_id, starts_at, ends_at, status,
	subtotal_cents, discount_cents, service_charge_cents, total_cents,
	promo_code_id, hold_deadline
FROM reservations
WHERE id = $1
FOR UPDATE`

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, q db.Querier, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row := q.QueryRow(ctx, findReservationForUpdateSQL, id)

	snap, err := scanReservationSnapshot(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	return snap, nil
}

// The write-path blocking predicate. A window is taken by reservations that
// are pending payment or confirmed, by holds whose deadline has not lapsed,
// and by the [current end, new end) tails of extensions still awaiting
// payment. Windows are half-open, so back-to-back bookings never collide.
const hasBlockingOverlapSQL = `
SELECT EXISTS (
	SELECT 1
	FROM reservations r
	WHERE r.vehicle_id = $1
	  AND ($4::uuid IS NULL OR r.id <> $4)
	  AND r.starts_at < $3
	  AND $2 < r.ends_at
	  AND (
		r.status IN ('pending_payment', 'confirmed')
		OR (r.status = 'hold' AND r.hold_deadline > $5)
	  )

	UNION ALL

	SELECT 1
	FROM reservation_extensions e
	JOIN reservations r ON r.id = e.reservation_id
	WHERE r.vehicle_id = $1
	  AND ($4::uuid IS NULL OR r.id <> $4)
	  AND e.status = 'pending_payment'
	  AND r.status = 'confirmed'
	  AND r.ends_at < $3
	  AND $2 < e.new_ends_at
)`

func (r *ReservationRepository) HasBlockingOverlap(ctx context.Context, q db.Querier, vehicleID uuid.UUID, start, end, now time.Time, excludeID *uuid.UUID) (bool, error) {
	var blocked bool
	err := q.QueryRow(ctx, hasBlockingOverlapSQL,
		vehicleID, start, end, pgconv.UUIDPtrToPgtype(excludeID), now,
	).Scan(&blocked)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}

	return blocked, nil
}

const updateReservationStatusSQL = `
UPDATE reservations
SET status = $2, hold_deadline = $3, updated_at = now()
WHERE id = $1`

func (r *ReservationRepository) UpdateStatus(ctx context.Context, q db.Querier, id uuid.UUID, status reservation.Status, holdDeadline *time.Time) error {
	tag, err := q.Exec(ctx, updateReservationStatusSQL, id, status.String(), pgconv.TimePtrToPgtype(holdDeadline))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

const extendReservationEndSQL = `
UPDATE reservations
SET ends_at = $2, updated_at = now()
WHERE id = $1`

func (r *ReservationRepository) ExtendEnd(ctx context.Context, q db.Querier, id uuid.UUID, newEnd time.Time) error {
	tag, err := q.Exec(ctx, extendReservationEndSQL, id, newEnd)
	if err != nil {
		return infra.WrapRepoErr("failed to extend reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

// Cancelling re-checks the hold status row by row, so a hold the settlement
// path confirmed between sweep ticks is left alone.
const cancelExpiredHoldsSQL = `
UPDATE reservations
SET status = 'cancelled', hold_deadline = NULL, updated_at = now()
WHERE status = 'hold' AND hold_deadline < $1`

func (r *ReservationRepository) CancelExpiredHolds(ctx context.Context, q db.Querier, now time.Time) (int64, error) {
	tag, err := q.Exec(ctx, cancelExpiredHoldsSQL, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel expired holds", err)
	}

	return tag.RowsAffected(), nil
}

func scanReservationSnapshot(row pgx.Row) (*shared.ReservationSnapshot, error) {
	var (
		snap         shared.ReservationSnapshot
		promoCodeID  pgtype.UUID
		holdDeadline pgtype.Timestamptz
	)

	err := row.Scan(
		&snap.ID, &snap.VehicleID, &snap.UserID,
		&snap.StartsAt, &snap.EndsAt, &snap.Status,
		&snap.SubtotalCents, &snap.DiscountCents, &snap.ServiceChargeCents, &snap.TotalCents,
		&promoCodeID, &holdDeadline,
	)
	if err != nil {
		return nil, err
	}

	snap.PromoCodeID = pgconv.UUIDPtrFromPgtype(promoCodeID)
	snap.HoldDeadline = pgconv.TimePtrFromPgtype(holdDeadline)
	return &snap, nil
}
