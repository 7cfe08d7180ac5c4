package di

import (
	"go.uber.org/zap"

	"github.com/IbuprofenLover/brewing-stand/application/ports"
	"github.com/IbuprofenLover/brewing-stand/application/services"
	"github.com/IbuprofenLover/brewing-stand/infrastructure/config"
	"github.com/IbuprofenLover/brewing-stand/infrastructure/persistence/memory"
	"github.com/IbuprofenLover/brewing-stand/interfaces/http/rest"
	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
	"github.com/IbuprofenLover/brewing-stand/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	CoffeeStore   ports.CoffeeStore
	ReviewStore   ports.ReviewStore
	Metrics       *observability.Collector
	ErrorHandler  *errors.ErrorHandler
	CoffeeService *services.CoffeeService
	ReviewService *services.ReviewService
	Router        *rest.Router
}

// SeedCatalog loads the sample coffees when seeding is enabled
func (c *Container) SeedCatalog() error {
	if !c.Config.SeedData {
		return nil
	}

	created, err := memory.SeedCatalog(c.CoffeeStore)
	if err != nil {
		return err
	}
	c.Metrics.SetEntityCount("coffees", c.CoffeeStore.Len())
	c.Logger.Info("Seeded coffee catalog",
		zap.Int("created", created),
		zap.Uint64("version", c.CoffeeStore.Version()),
	)
	return nil
}
