package services

import (
	"slices"

	"go.uber.org/zap"

	"github.com/IbuprofenLover/brewing-stand/application/commands"
	"github.com/IbuprofenLover/brewing-stand/application/ports"
	"github.com/IbuprofenLover/brewing-stand/application/queries"
	"github.com/IbuprofenLover/brewing-stand/domain/core/entities"
)

const coffeesStore = "coffees"

// CoffeeService exposes the coffee collection to the transport layer
type CoffeeService struct {
	store   ports.CoffeeStore
	metrics ports.Metrics
	logger  *zap.Logger
}

// NewCoffeeService creates a new coffee service
func NewCoffeeService(store ports.CoffeeStore, metrics ports.Metrics, logger *zap.Logger) *CoffeeService {
	return &CoffeeService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// GetCoffee returns one coffee by exact name, or NotModified when the
// supplied token is still current
func (s *CoffeeService) GetCoffee(q queries.GetCoffeeQuery) (queries.Result[entities.Coffee], error) {
	coffee, version, err := s.store.Get(q.Name)
	if err != nil {
		return queries.Result[entities.Coffee]{}, err
	}
	return conditional(s.metrics, "coffee", version, q.Scope(), q.IfNoneMatch, func() entities.Coffee {
		return coffee
	}), nil
}

// ListCoffees returns the coffees matching the query filter
func (s *CoffeeService) ListCoffees(q queries.ListCoffeesQuery) (queries.Result[[]entities.Coffee], error) {
	seq, version, err := s.store.List(q.Filter)
	if err != nil {
		return queries.Result[[]entities.Coffee]{}, err
	}
	return conditional(s.metrics, "coffees", version, q.Scope(), q.IfNoneMatch, func() []entities.Coffee {
		return slices.AppendSeq(make([]entities.Coffee, 0), seq)
	}), nil
}

// CreateCoffee adds a coffee to the catalog
func (s *CoffeeService) CreateCoffee(cmd commands.CreateCoffeeCommand) (entities.Coffee, error) {
	if err := cmd.Validate(); err != nil {
		s.observe("create", err, zap.String("name", cmd.Name))
		return entities.Coffee{}, err
	}

	coffee, err := s.store.Create(cmd.Name, cmd.Origin, cmd.Intensity, cmd.Aroma, cmd.Type)
	s.observe("create", err,
		zap.String("name", cmd.Name),
		zap.Int("intensity", coffee.Intensity),
	)
	return coffee, err
}

// UpdateCoffee applies a partial update to a coffee
func (s *CoffeeService) UpdateCoffee(cmd commands.UpdateCoffeeCommand) (entities.Coffee, error) {
	if err := cmd.Validate(); err != nil {
		s.observe("update", err, zap.String("name", cmd.Name))
		return entities.Coffee{}, err
	}

	coffee, err := s.store.Update(cmd.Name, cmd.Patch)
	s.observe("update", err, zap.String("name", cmd.Name))
	return coffee, err
}

// DeleteCoffee removes a coffee. Its reviews are kept.
func (s *CoffeeService) DeleteCoffee(cmd commands.DeleteCoffeeCommand) error {
	if err := cmd.Validate(); err != nil {
		s.observe("delete", err, zap.String("name", cmd.Name))
		return err
	}

	err := s.store.Delete(cmd.Name)
	s.observe("delete", err, zap.String("name", cmd.Name))
	return err
}

// Count returns the number of live coffees
func (s *CoffeeService) Count() int {
	return s.store.Len()
}

func (s *CoffeeService) observe(operation string, err error, fields ...zap.Field) {
	s.metrics.RecordMutation(coffeesStore, operation, err)
	fields = append(fields, zap.String("operation", operation))
	if err != nil {
		s.logger.Debug("Coffee mutation rejected", append(fields, zap.Error(err))...)
		return
	}

	s.metrics.SetEntityCount(coffeesStore, s.store.Len())
	s.logger.Info("Coffee mutated", append(fields, zap.Uint64("version", s.store.Version()))...)
}
