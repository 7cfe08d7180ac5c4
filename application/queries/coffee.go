// Package queries holds the typed read requests and their conditional results.
package queries

import (
	"github.com/IbuprofenLover/brewing-stand/domain/core/entities"
	"github.com/IbuprofenLover/brewing-stand/domain/versioning"
)

// Result is the outcome of a conditional read. When NotModified is set the
// client token is still current and Value is left empty.
type Result[T any] struct {
	Value       T
	ETag        string
	NotModified bool
}

// GetCoffeeQuery represents a query to get a single coffee
type GetCoffeeQuery struct {
	Name        string
	IfNoneMatch string
}

// Scope identifies the resource for cache tokens
func (q GetCoffeeQuery) Scope() string {
	return versioning.EntityScope("coffee", q.Name)
}

// ListCoffeesQuery represents a filtered listing of coffees
type ListCoffeesQuery struct {
	Filter      entities.CoffeeFilter
	IfNoneMatch string
}

// Scope renders the filter canonically, so equal filters share a token
func (q ListCoffeesQuery) Scope() string {
	return versioning.CollectionScope("coffees", map[string]*string{
		"origin":    q.Filter.Origin,
		"intensity": versioning.IntParam(q.Filter.Intensity),
		"aroma":     q.Filter.Aroma,
		"type":      q.Filter.Type,
	})
}
