// Package commands holds the typed write requests handled by the services.
package commands

import (
	"github.com/IbuprofenLover/brewing-stand/domain/core/entities"
	"github.com/IbuprofenLover/brewing-stand/domain/core/validators"
)

// CreateCoffeeCommand represents the command to create a new coffee
type CreateCoffeeCommand struct {
	Name      string
	Origin    string
	Intensity int
	Aroma     string
	Type      string
}

// Validate validates the command. Intensity is clamped by the store, not checked here.
func (cmd CreateCoffeeCommand) Validate() error {
	if err := validators.RequireText("name", cmd.Name); err != nil {
		return err
	}
	return validators.RequireText("origin", cmd.Origin)
}

// UpdateCoffeeCommand represents a partial update of a coffee
type UpdateCoffeeCommand struct {
	Name  string
	Patch entities.CoffeePatch
}

// Validate only checks the target. The patch is validated once the coffee is
// known to exist, so a missing coffee reports not found first.
func (cmd UpdateCoffeeCommand) Validate() error {
	return validators.RequireText("name", cmd.Name)
}

// DeleteCoffeeCommand represents the removal of a coffee
type DeleteCoffeeCommand struct {
	Name string
}

// Validate validates the command
func (cmd DeleteCoffeeCommand) Validate() error {
	return validators.RequireText("name", cmd.Name)
}
