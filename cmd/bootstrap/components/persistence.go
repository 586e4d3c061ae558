package components

import (
	"fleetbook/internal/infra/readstore"
	"fleetbook/internal/infra/uow"
	"fleetbook/internal/usecase/queries"
	"fleetbook/internal/usecase/shared"

	"go.uber.org/fx"
)

// Write-side repositories are reachable only through the unit of work, so the
// graph wires the UoW plus the read stores the query layer needs.
var PersistenceModule = fx.Module("persistence",
	uowModule,
	readstoreModule,
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Vehicle
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(queries.VehicleReadStore)),
		),
		// Promo
		fx.Annotate(
			readstore.NewPromoReadStore,
			fx.As(new(queries.PromoReadStore)),
		),
		// Reservation
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)
