package bootstrap

import (
	"club-rental-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RentalModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
