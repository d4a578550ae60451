package components

import (
	"club-rental-api/internal/pkg/clock"
	"club-rental-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAvailabilityUseCase,
		usecase.NewRentalUseCase,
	),
)
