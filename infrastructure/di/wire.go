//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"bananalytics-backend/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideCollector,
	ProvideForecastRepository,
	ProvideDataSource,
	ProvideHealthRegistry,
	ProvideAPILimiter,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
