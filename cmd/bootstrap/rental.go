package bootstrap

import (
	"time"

	"club-rental-api/internal/domain/availability"
	"club-rental-api/internal/domain/inventory"
	"club-rental-api/internal/pkg/config"

	"go.uber.org/fx"
)

// RentalModule builds the single shared availability policy: one capacity
// table, one unknown-item policy and one timezone, loaded at startup. A
// failure here stops the process; these are never per-request errors.
var RentalModule = fx.Module("rental",
	fx.Provide(
		NewLocation,
		NewCapacityTable,
		NewUnknownItemPolicy,
		availability.NewEvaluator,
	),
)

func NewLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Rental.TimeZone)
}

func NewCapacityTable(cfg config.Config) (inventory.CapacityTable, error) {
	return inventory.LoadCapacityTable(cfg.Rental.CapacityTablePath)
}

func NewUnknownItemPolicy(cfg config.Config) (inventory.UnknownItemPolicy, error) {
	return inventory.ParseUnknownItemPolicy(cfg.Rental.UnknownItemPolicy)
}
