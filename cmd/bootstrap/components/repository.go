package components

import (
	"club-rental-api/internal/infra/readstore"
	"club-rental-api/internal/infra/writerepo"
	"club-rental-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(usecase.RentalReadStore)),
		),
		fx.Annotate(
			writerepo.NewRentalWriteRepository,
			fx.As(new(usecase.RentalWriteRepository)),
		),
	),
)
