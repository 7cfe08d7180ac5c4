//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/IbuprofenLover/brewing-stand/application/ports"
	"github.com/IbuprofenLover/brewing-stand/application/services"
	"github.com/IbuprofenLover/brewing-stand/infrastructure/config"
	"github.com/IbuprofenLover/brewing-stand/infrastructure/persistence/memory"
	"github.com/IbuprofenLover/brewing-stand/interfaces/http/rest"
	"github.com/IbuprofenLover/brewing-stand/pkg/observability"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideCoffeeStore,
	wire.Bind(new(ports.CoffeeStore), new(*memory.CoffeeStore)),
	ProvideReviewStore,
	wire.Bind(new(ports.ReviewStore), new(*memory.ReviewStore)),
	ProvideMetrics,
	wire.Bind(new(ports.Metrics), new(*observability.Collector)),
	ProvideErrorHandler,
	services.NewCoffeeService,
	services.NewReviewService,
	rest.NewRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
