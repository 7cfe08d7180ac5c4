package entities

import (
	"github.com/IbuprofenLover/brewing-stand/domain/core/validators"
	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
)

// Coffee is a catalog entry identified by its name
type Coffee struct {
	Name      string `json:"name"`
	Origin    string `json:"origin"`
	Intensity int    `json:"intensity"`
	Aroma     string `json:"aroma"`
	Type      string `json:"type"`
}

// NewCoffee builds a coffee from creation input. The intensity is clamped
// into range rather than rejected.
func NewCoffee(name, origin string, intensity int, aroma, coffeeType string) (Coffee, error) {
	if err := validators.RequireText("name", name); err != nil {
		return Coffee{}, err
	}
	if err := validators.RequireText("origin", origin); err != nil {
		return Coffee{}, err
	}

	return Coffee{
		Name:      name,
		Origin:    origin,
		Intensity: validators.ClampIntensity(intensity),
		Aroma:     aroma,
		Type:      coffeeType,
	}, nil
}

// CoffeePatch carries the fields of a partial coffee update. Nil means keep.
type CoffeePatch struct {
	Origin    *string
	Intensity *int
	Aroma     *string
	Type      *string
}

// IsEmpty reports whether the patch changes nothing
func (p CoffeePatch) IsEmpty() bool {
	return p.Origin == nil && p.Intensity == nil && p.Aroma == nil && p.Type == nil
}

// Validate checks the patch on its own. Unlike creation, an out of range
// intensity is rejected here.
func (p CoffeePatch) Validate() error {
	if p.IsEmpty() {
		return errors.NewValidationError(
			"at least one attribute to modify is required from [origin, intensity, aroma, type]",
		)
	}
	if p.Intensity != nil {
		if err := validators.ValidateIntensity(*p.Intensity); err != nil {
			return err
		}
	}
	return nil
}

// Apply returns a copy of c with the patch merged in. The name never changes.
func (c Coffee) Apply(p CoffeePatch) Coffee {
	updated := c
	if p.Origin != nil {
		updated.Origin = *p.Origin
	}
	if p.Intensity != nil {
		updated.Intensity = *p.Intensity
	}
	if p.Aroma != nil {
		updated.Aroma = *p.Aroma
	}
	if p.Type != nil {
		updated.Type = *p.Type
	}
	return updated
}

// CoffeeFilter selects coffees for listing. Set fields are ANDed.
type CoffeeFilter struct {
	Origin    *string
	Intensity *int
	Aroma     *string
	Type      *string
}

// Validate rejects an intensity predicate that no coffee could satisfy
// because it lies outside the valid range.
func (f CoffeeFilter) Validate() error {
	if f.Intensity != nil {
		return validators.ValidateIntensity(*f.Intensity)
	}
	return nil
}

// Matches reports whether c satisfies every set predicate
func (f CoffeeFilter) Matches(c Coffee) bool {
	if f.Origin != nil && c.Origin != *f.Origin {
		return false
	}
	if f.Intensity != nil && c.Intensity != *f.Intensity {
		return false
	}
	if f.Aroma != nil && c.Aroma != *f.Aroma {
		return false
	}
	if f.Type != nil && c.Type != *f.Type {
		return false
	}
	return true
}
