package components

import (
	"fleetbook/internal/handler"
	"fleetbook/internal/handler/api"
	"fleetbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVehicleHandler,
		api.NewPromoHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
