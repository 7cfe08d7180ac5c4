package entities

import "github.com/IbuprofenLover/brewing-stand/domain/core/validators"

// Review is a rating of a coffee. ID and CoffeeName are fixed at creation.
type Review struct {
	ID         string `json:"id"`
	CoffeeName string `json:"coffeeName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// ValidateReviewInput checks creation input before an id is issued
func ValidateReviewInput(coffeeName string, rating int, comment string) error {
	if err := validators.RequireText("coffeeName", coffeeName); err != nil {
		return err
	}
	if err := validators.RequireText("comment", comment); err != nil {
		return err
	}
	return validators.ValidateRating(rating)
}

// ValidateReviewContent checks the mutable part of a review
func ValidateReviewContent(rating int, comment string) error {
	if err := validators.RequireText("comment", comment); err != nil {
		return err
	}
	return validators.ValidateRating(rating)
}

// WithContent returns a copy of r carrying a new rating and comment
func (r Review) WithContent(rating int, comment string) Review {
	updated := r
	updated.Rating = rating
	updated.Comment = comment
	return updated
}

// Key is the review's uniqueness key
func (r Review) Key() string {
	return validators.ReviewKey(r.CoffeeName, r.Rating, r.Comment)
}

// ReviewFilter selects reviews for listing
type ReviewFilter struct {
	// CoffeeName matches exactly, including case.
	CoffeeName *string
}

// Matches reports whether r satisfies the filter
func (f ReviewFilter) Matches(r Review) bool {
	return f.CoffeeName == nil || r.CoffeeName == *f.CoffeeName
}

