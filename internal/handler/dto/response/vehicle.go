package response

import (
	"time"

	"fleetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromVehicleList(items []*queries.VehicleListItem) []*VehicleResponse {
	res := make([]*VehicleResponse, 0, len(items))
	_ = copier.Copy(&res, items)
	return res
}
