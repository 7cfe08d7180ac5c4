package ports

import (
	"iter"

	"github.com/IbuprofenLover/brewing-stand/domain/core/entities"
)

// CoffeeStore defines the operations on the coffee collection.
// Reads also return the store version observed together with the data, so
// a cache token never pairs new data with an old version.
type CoffeeStore interface {
	// Get retrieves a coffee by its exact name
	Get(name string) (entities.Coffee, uint64, error)

	// List returns every coffee matching the filter, in no particular order
	List(filter entities.CoffeeFilter) (iter.Seq[entities.Coffee], uint64, error)

	// Create stores a new coffee unless one with the same caseless name exists
	Create(name, origin string, intensity int, aroma, coffeeType string) (entities.Coffee, error)

	// Update merges a patch into an existing coffee
	Update(name string, patch entities.CoffeePatch) (entities.Coffee, error)

	// Delete removes a coffee
	Delete(name string) error

	// Version returns the current mutation counter
	Version() uint64

	// Len returns the number of live coffees
	Len() int

	CoffeeDirectory
}

// CoffeeDirectory answers whether a coffee exists. Reviews depend on it to
// check their reference at creation time.
type CoffeeDirectory interface {
	// ExistsByName matches names without regard to case. Blank names never exist.
	ExistsByName(name string) bool
}

// ReviewStore defines the operations on the review collection
type ReviewStore interface {
	// Get retrieves a review by id
	Get(id string) (entities.Review, uint64, error)

	// List returns every review matching the filter, in no particular order
	List(filter entities.ReviewFilter) (iter.Seq[entities.Review], uint64)

	// Create stores a new review with a server generated id
	Create(coffeeName string, rating int, comment string) (entities.Review, error)

	// Update replaces the rating and comment of an existing review
	Update(id string, rating int, comment string) (entities.Review, error)

	// Delete removes a review
	Delete(id string) error

	// Version returns the current mutation counter
	Version() uint64

	// Len returns the number of live reviews
	Len() int
}
