package queries

import (
	"github.com/IbuprofenLover/brewing-stand/domain/core/entities"
	"github.com/IbuprofenLover/brewing-stand/domain/versioning"
)

// GetReviewQuery represents a query to get a single review
type GetReviewQuery struct {
	ID          string
	IfNoneMatch string
}

// Scope identifies the resource for cache tokens
func (q GetReviewQuery) Scope() string {
	return versioning.EntityScope("review", q.ID)
}

// ListReviewsQuery represents a listing of reviews, optionally for one coffee
type ListReviewsQuery struct {
	Filter      entities.ReviewFilter
	IfNoneMatch string
}

// Scope renders the filter canonically
func (q ListReviewsQuery) Scope() string {
	return versioning.CollectionScope("reviews", map[string]*string{
		"coffeeName": q.Filter.CoffeeName,
	})
}
