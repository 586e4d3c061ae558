package repository

import (
	"context"

	"fleetbook/internal/infra"
	"fleetbook/internal/infra/db"
	"fleetbook/internal/pkg/pgconv"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type VehicleRepository struct{}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{}
}

const findVehicleForUpdateSQL = `
SELECT id, name, price_per_day_cents, status
FROM vehicles
WHERE id = $1
FOR UPDATE`

func (r *VehicleRepository) FindByIDForUpdate(ctx context.Context, q db.Querier, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	var snap shared.VehicleSnapshot
	err := q.QueryRow(ctx, findVehicleForUpdateSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.PricePerDayCents, &snap.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock vehicle", err)
	}

	return &snap, nil
}
