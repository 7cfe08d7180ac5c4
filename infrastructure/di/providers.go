package di

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/IbuprofenLover/brewing-stand/application/ports"
	"github.com/IbuprofenLover/brewing-stand/infrastructure/config"
	"github.com/IbuprofenLover/brewing-stand/infrastructure/persistence/memory"
	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
	"github.com/IbuprofenLover/brewing-stand/pkg/observability"
)

// MetricsNamespace prefixes every exported metric
const MetricsNamespace = "brewing_stand"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zapCfg.Level = level

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("environment", cfg.Environment)), nil
}

// ProvideCoffeeStore creates the coffee collection
func ProvideCoffeeStore() *memory.CoffeeStore {
	return memory.NewCoffeeStore()
}

// ProvideReviewStore creates the review collection, checking references
// against the coffee store
func ProvideReviewStore(coffees ports.CoffeeStore, logger *zap.Logger) *memory.ReviewStore {
	return memory.NewReviewStore(coffees, logger.Named("reviews"))
}

// ProvideMetrics creates metrics instance
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector(MetricsNamespace)
}

// ProvideErrorHandler creates the JSON error renderer
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *errors.ErrorHandler {
	return errors.NewErrorHandler(logger, cfg.DebugErrors)
}
