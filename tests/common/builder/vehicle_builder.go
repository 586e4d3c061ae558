//go:build unit || e2e

package builder

import (
	"time"

	domvehicle "fleetbook/internal/domain/vehicle"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"github.com/google/uuid"
)

type VehicleBuilder struct {
	ID               uuid.UUID
	Name             string
	PricePerDayCents int64
	Status           domvehicle.Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewVehicleBuilder() *VehicleBuilder {
	now := time.Now()
	return &VehicleBuilder{
		ID:               uuid.New(),
		Name:             "Compact Sedan",
		PricePerDayCents: 200000,
		Status:           domvehicle.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (v *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(v)
	return v
}

// Build methods
func (v *VehicleBuilder) BuildDomain() (*domvehicle.Vehicle, error) {
	return domvehicle.NewVehicle(v.ID, v.Name, v.PricePerDayCents, v.Status)
}

func (v *VehicleBuilder) BuildListItem() *queries.VehicleListItem {
	return &queries.VehicleListItem{
		ID:               v.ID,
		Name:             v.Name,
		PricePerDayCents: v.PricePerDayCents,
		Status:           string(v.Status),
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func (v *VehicleBuilder) BuildSnapshot() *shared.VehicleSnapshot {
	return &shared.VehicleSnapshot{
		ID:               v.ID,
		Name:             v.Name,
		PricePerDayCents: v.PricePerDayCents,
		Status:           string(v.Status),
	}
}

// Fluent builder methods
func (v *VehicleBuilder) WithID(id uuid.UUID) *VehicleBuilder {
	v.ID = id
	return v
}

func (v *VehicleBuilder) WithName(name string) *VehicleBuilder {
	v.Name = name
	return v
}

func (v *VehicleBuilder) WithPricePerDayCents(cents int64) *VehicleBuilder {
	v.PricePerDayCents = cents
	return v
}

func (v *VehicleBuilder) WithStatus(status domvehicle.Status) *VehicleBuilder {
	v.Status = status
	return v
}

func (v *VehicleBuilder) AsMaintenance() *VehicleBuilder {
	v.Status = domvehicle.StatusMaintenance
	return v
}

func (v *VehicleBuilder) AsDraft() *VehicleBuilder {
	v.Status = domvehicle.StatusDraft
	return v
}
