package readstore

import (
	"context"
	"time"

	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct{}

func NewReservationReadStore() *ReservationReadStore {
	return &ReservationReadStore{}
}

const findReservationSnapshotSQL = `
SELECT id, vehicle_id, user_id, starts_at, ends_at, status,
	subtotal_cents, discount_cents, service_charge_cents, total_cents,
	promo_code_id, hold_deadline
FROM reservations
WHERE id = $1`

// FindSnapshotByID is the lock-free read used for pre-transaction
// validation. Anything decided from it is re-checked under a row lock.
func (r *ReservationReadStore) FindSnapshotByID(ctx context.Context, q db.Querier, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	var (
		snap         shared.ReservationSnapshot
		promoCodeID  pgtype.UUID
		holdDeadline pgtype.Timestamptz
	)

	err := q.QueryRow(ctx, findReservationSnapshotSQL, id).Scan(
		&snap.ID, &snap.VehicleID, &snap.UserID, &snap.StartsAt, &snap.EndsAt, &snap.Status,
		&snap.SubtotalCents, &snap.DiscountCents, &snap.ServiceChargeCents, &snap.TotalCents,
		&promoCodeID, &holdDeadline,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	snap.PromoCodeID = pgconv.UUIDPtrFromPgtype(promoCodeID)
	snap.HoldDeadline = pgconv.TimePtrFromPgtype(holdDeadline)
	return &snap, nil
}

const findReservationViewSQL = `
SELECT r.id, r.vehicle_id, v.name AS vehicle_name, r.user_id,
	r.starts_at, r.ends_at, r.status,
	r.subtotal_cents, r.discount_cents, r.service_charge_cents, r.total_cents,
	p.code AS promo_code, r.hold_deadline, r.created_at, r.updated_at
FROM reservations r
JOIN vehicles v ON v.id = r.vehicle_id
LEFT JOIN promo_codes p ON p.id = r.promo_code_id
WHERE r.id = $1`

func (r *ReservationReadStore) FindViewByID(ctx context.Context, q db.Querier, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view         queries.ReservationView
		promoCode    pgtype.Text
		holdDeadline pgtype.Timestamptz
	)

	err := q.QueryRow(ctx, findReservationViewSQL, id).Scan(
		&view.ID, &view.VehicleID, &view.VehicleName, &view.UserID,
		&view.StartsAt, &view.EndsAt, &view.Status,
		&view.SubtotalCents, &view.DiscountCents, &view.ServiceChargeCents, &view.TotalCents,
		&promoCode, &holdDeadline, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation view by ID", err)
	}

	view.PromoCode = pgconv.StringPtrFromPgtype(promoCode)
	view.HoldDeadline = pgconv.TimePtrFromPgtype(holdDeadline)
	return &view, nil
}

// Extension intents link to the reservation through their extension row.
const findPaymentsByReservationSQL = `
SELECT id, purpose, amount_cents, method, status, external_txn_ref, settled_at, created_at
FROM payment_intents
WHERE reservation_id = $1
	OR extension_id IN (SELECT id FROM reservation_extensions WHERE reservation_id = $1)
ORDER BY created_at, id`

func (r *ReservationReadStore) FindPaymentsByReservation(ctx context.Context, q db.Querier, reservationID uuid.UUID) ([]queries.PaymentItem, error) {
	rows, err := q.Query(ctx, findPaymentsByReservationSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payments for reservation", err)
	}
	defer rows.Close()

	items := make([]queries.PaymentItem, 0)
	for rows.Next() {
		var (
			item           queries.PaymentItem
			externalTxnRef pgtype.Text
			settledAt      pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.Purpose, &item.AmountCents, &item.Method, &item.Status,
			&externalTxnRef, &settledAt, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		item.ExternalTxnRef = pgconv.StringPtrFromPgtype(externalTxnRef)
		item.SettledAt = pgconv.TimePtrFromPgtype(settledAt)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payment rows", err)
	}

	return items, nil
}

const findExtensionsByReservationSQL = `
SELECT id, added_hours, new_ends_at, price_cents, status, created_at
FROM reservation_extensions
WHERE reservation_id = $1
ORDER BY created_at, id`

func (r *ReservationReadStore) FindExtensionsByReservation(ctx context.Context, q db.Querier, reservationID uuid.UUID) ([]queries.ExtensionItem, error) {
	rows, err := q.Query(ctx, findExtensionsByReservationSQL, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find extensions for reservation", err)
	}
	defer rows.Close()

	items := make([]queries.ExtensionItem, 0)
	for rows.Next() {
		var item queries.ExtensionItem
		if err := rows.Scan(
			&item.ID, &item.AddedHours, &item.NewEndsAt, &item.PriceCents, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extension row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read extension rows", err)
	}

	return items, nil
}

const findReservationsFirstPageSQL = `
SELECT r.id, r.vehicle_id, v.name AS vehicle_name, r.starts_at, r.ends_at,
	r.status, r.total_cents, r.created_at
FROM reservations r
JOIN vehicles v ON v.id = r.vehicle_id
WHERE r.user_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

func (r *ReservationReadStore) FindByUserFirstPage(ctx context.Context, q db.Querier, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := q.Query(ctx, findReservationsFirstPageSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations first page", err)
	}
	defer rows.Close()

	return collectReservationListItems(rows)
}

const findReservationsKeysetSQL = `
SELECT r.id, r.vehicle_id, v.name AS vehicle_name, r.starts_at, r.ends_at,
	r.status, r.total_cents, r.created_at
FROM reservations r
JOIN vehicles v ON v.id = r.vehicle_id
WHERE r.user_id = $1 AND (r.created_at, r.id) < ($2, $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

func (r *ReservationReadStore) FindByUserKeyset(ctx context.Context, q db.Querier, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := q.Query(ctx, findReservationsKeysetSQL, userID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations keyset", err)
	}
	defer rows.Close()

	return collectReservationListItems(rows)
}

func collectReservationListItems(rows pgx.Rows) ([]*queries.ReservationListItem, error) {
	items := make([]*queries.ReservationListItem, 0)
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(
			&item.ID, &item.VehicleID, &item.VehicleName, &item.StartsAt, &item.EndsAt,
			&item.Status, &item.TotalCents, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return items, nil
}
