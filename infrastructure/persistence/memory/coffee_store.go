// Package memory provides the in-memory stores backing the coffee and
// review collections. State lives for the lifetime of the process.
//
// Each store guards its collection with one RWMutex. Every write, including
// the duplicate check that precedes an insert, runs under the write lock, so
// two concurrent creates of the same key cannot both succeed. The version
// counter is bumped before the write lock is released; readers observe data
// and version under the same read lock.
package memory

import (
	"iter"
	"slices"
	"sync"

	"github.com/IbuprofenLover/brewing-stand/application/ports"
	"github.com/IbuprofenLover/brewing-stand/domain/core/entities"
	"github.com/IbuprofenLover/brewing-stand/domain/core/validators"
	"github.com/IbuprofenLover/brewing-stand/domain/versioning"
	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
)

var _ ports.CoffeeStore = (*CoffeeStore)(nil)

// CoffeeStore is a thread-safe in-memory coffee collection
type CoffeeStore struct {
	mu sync.RWMutex
	// coffees is keyed by the exact name given at creation.
	coffees map[string]entities.Coffee
	// names maps the caseless key to the exact name.
	names   map[string]string
	version versioning.Counter
}

// NewCoffeeStore initializes and returns a new empty CoffeeStore
func NewCoffeeStore() *CoffeeStore {
	return &CoffeeStore{
		coffees: make(map[string]entities.Coffee),
		names:   make(map[string]string),
	}
}

// Get retrieves a coffee by its exact name
func (s *CoffeeStore) Get(name string) (entities.Coffee, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coffee, ok := s.coffees[name]
	if !ok {
		return entities.Coffee{}, s.version.Current(), coffeeNotFound(name)
	}
	return coffee, s.version.Current(), nil
}

// List returns the coffees matching filter. The sequence iterates over a
// snapshot taken under the read lock.
func (s *CoffeeStore) List(filter entities.CoffeeFilter) (iter.Seq[entities.Coffee], uint64, error) {
	if err := filter.Validate(); err != nil {
		return nil, s.Version(), err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]entities.Coffee, 0, len(s.coffees))
	for _, coffee := range s.coffees {
		if filter.Matches(coffee) {
			matches = append(matches, coffee)
		}
	}
	return slices.Values(matches), s.version.Current(), nil
}

// Create stores a new coffee. It fails with a conflict when a coffee with
// the same name, ignoring case, already exists.
func (s *CoffeeStore) Create(name, origin string, intensity int, aroma, coffeeType string) (entities.Coffee, error) {
	coffee, err := entities.NewCoffee(name, origin, intensity, aroma, coffeeType)
	if err != nil {
		return entities.Coffee{}, err
	}
	key := validators.CoffeeKey(coffee.Name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, taken := s.names[key]; taken {
		return entities.Coffee{}, errors.NewConflictError("coffee with name " + coffee.Name + " already exists").
			WithCode("COFFEE_EXISTS").
			WithDetail("existing", existing)
	}

	s.coffees[coffee.Name] = coffee
	s.names[key] = coffee.Name
	s.version.Bump()
	return coffee, nil
}

// Update merges patch into the named coffee
func (s *CoffeeStore) Update(name string, patch entities.CoffeePatch) (entities.Coffee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.coffees[name]
	if !ok {
		return entities.Coffee{}, coffeeNotFound(name)
	}
	if err := patch.Validate(); err != nil {
		return entities.Coffee{}, err
	}

	updated := current.Apply(patch)
	s.coffees[name] = updated
	s.version.Bump()
	return updated, nil
}

// Delete removes the named coffee. Reviews that reference it are kept.
func (s *CoffeeStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.coffees[name]; !ok {
		return coffeeNotFound(name)
	}

	delete(s.coffees, name)
	delete(s.names, validators.CoffeeKey(name))
	s.version.Bump()
	return nil
}

// ExistsByName reports whether a coffee with this name exists, ignoring case
func (s *CoffeeStore) ExistsByName(name string) bool {
	if validators.IsBlank(name) {
		return false
	}
	key := validators.CoffeeKey(name)

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.names[key]
	return ok
}

// Version returns the current mutation counter
func (s *CoffeeStore) Version() uint64 {
	return s.version.Current()
}

// Len returns the number of live coffees
func (s *CoffeeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.coffees)
}

func coffeeNotFound(name string) error {
	return errors.NewNotFoundError("coffee").
		WithCode("COFFEE_NOT_FOUND").
		WithDetail("name", name)
}
