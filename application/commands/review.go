package commands

import (
	"github.com/IbuprofenLover/brewing-stand/domain/core/entities"
	"github.com/IbuprofenLover/brewing-stand/domain/core/validators"
)

// CreateReviewCommand represents the command to create a new review
type CreateReviewCommand struct {
	CoffeeName string
	Rating     int
	Comment    string
}

// Validate validates the command
func (cmd CreateReviewCommand) Validate() error {
	return entities.ValidateReviewInput(cmd.CoffeeName, cmd.Rating, cmd.Comment)
}

// UpdateReviewCommand replaces the rating and comment of a review
type UpdateReviewCommand struct {
	ID      string
	Rating  int
	Comment string
}

// Validate only checks the target, see UpdateCoffeeCommand
func (cmd UpdateReviewCommand) Validate() error {
	return validators.RequireText("id", cmd.ID)
}

// DeleteReviewCommand represents the removal of a review
type DeleteReviewCommand struct {
	ID string
}

// Validate validates the command
func (cmd DeleteReviewCommand) Validate() error {
	return validators.RequireText("id", cmd.ID)
}
