package components

import (
	"club-rental-api/internal/handler"
	"club-rental-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewRentalHandler,
	),
	fx.Invoke(handler.NewRouter),
)
