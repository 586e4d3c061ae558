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
)

type VehicleReadStore struct{}

func NewVehicleReadStore() *VehicleReadStore {
	return &VehicleReadStore{}
}

const findVehicleSnapshotSQL = `
SELECT id, name, price_per_day_cents, status
FROM vehicles
WHERE id = $1`

func (r *VehicleReadStore) FindByID(ctx context.Context, q db.Querier, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	var snap shared.VehicleSnapshot
	err := q.QueryRow(ctx, findVehicleSnapshotSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.PricePerDayCents, &snap.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}

	return &snap, nil
}

const findAllVehiclesSQL = `
SELECT id, name, price_per_day_cents, status, created_at, updated_at
FROM vehicles
WHERE status <> 'draft'
ORDER BY name, id`

// FindAll lists the catalog. Draft vehicles are invisible here; maintenance
// ones stay listed so existing bookings keep resolving to a name.
func (r *VehicleReadStore) FindAll(ctx context.Context, q db.Querier) ([]*queries.VehicleListItem, error) {
	rows, err := q.Query(ctx, findAllVehiclesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	return collectVehicleListItems(rows)
}

const findAvailableVehiclesSQL = `
SELECT v.id, v.name, v.price_per_day_cents, v.status, v.created_at, v.updated_at
FROM vehicles v
WHERE v.status IN ('published', 'active')
	AND ($4::uuid[] IS NULL OR v.id = ANY($4))
	AND NOT EXISTS (
		SELECT 1
		FROM reservations r
		WHERE r.vehicle_id = v.id
			AND r.starts_at < $2
			AND $1 < r.ends_at
			AND (r.status = 'confirmed' OR (r.status = 'hold' AND r.hold_deadline > $3))
	)
ORDER BY v.name, v.id`

func (r *VehicleReadStore) FindAvailable(ctx context.Context, q db.Querier, start, end, now time.Time, vehicleIDs []uuid.UUID) ([]*queries.VehicleListItem, error) {
	var filter []uuid.UUID
	if len(vehicleIDs) > 0 {
		filter = vehicleIDs
	}

	rows, err := q.Query(ctx, findAvailableVehiclesSQL, start, end, now, filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available vehicles", err)
	}
	defer rows.Close()

	return collectVehicleListItems(rows)
}

func collectVehicleListItems(rows pgx.Rows) ([]*queries.VehicleListItem, error) {
	items := make([]*queries.VehicleListItem, 0)
	for rows.Next() {
		var item queries.VehicleListItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.PricePerDayCents, &item.Status,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read vehicle rows", err)
	}

	return items, nil
}
