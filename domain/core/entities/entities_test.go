package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
)

func ptr[T any](v T) *T { return &v }

func TestNewCoffee(t *testing.T) {
	t.Run("clamps intensity", func(t *testing.T) {
		low, err := NewCoffee("Espresso", "Italy", -3, "", "")
		require.NoError(t, err)
		assert.Equal(t, 1, low.Intensity)

		high, err := NewCoffee("Kenyan AA", "Kenya", 42, "fruity", "blend")
		require.NoError(t, err)
		assert.Equal(t, 10, high.Intensity)
		assert.Equal(t, "fruity", high.Aroma)
		assert.Equal(t, "blend", high.Type)
	})

	t.Run("requires name and origin", func(t *testing.T) {
		_, err := NewCoffee("  ", "Italy", 5, "", "")
		assert.True(t, errors.IsValidation(err))

		_, err = NewCoffee("Espresso", "", 5, "", "")
		assert.True(t, errors.IsValidation(err))
	})
}

func TestCoffeePatch(t *testing.T) {
	base := Coffee{Name: "Espresso", Origin: "Italy", Intensity: 8, Aroma: "bitter", Type: "blend"}

	assert.True(t, errors.IsValidation(CoffeePatch{}.Validate()))
	assert.True(t, errors.IsValidation(CoffeePatch{Intensity: ptr(11)}.Validate()))
	assert.True(t, errors.IsValidation(CoffeePatch{Intensity: ptr(0)}.Validate()))
	assert.NoError(t, CoffeePatch{Aroma: ptr("")}.Validate())

	updated := base.Apply(CoffeePatch{Origin: ptr("Brazil"), Intensity: ptr(3)})
	assert.Equal(t, Coffee{Name: "Espresso", Origin: "Brazil", Intensity: 3, Aroma: "bitter", Type: "blend"}, updated)
	assert.Equal(t, "Italy", base.Origin, "apply must not mutate the receiver")
}

func TestCoffeeFilter(t *testing.T) {
	c := Coffee{Name: "Espresso", Origin: "Italy", Intensity: 8, Aroma: "bitter", Type: "blend"}

	assert.True(t, CoffeeFilter{}.Matches(c))
	assert.True(t, CoffeeFilter{Origin: ptr("Italy"), Intensity: ptr(8)}.Matches(c))
	assert.False(t, CoffeeFilter{Origin: ptr("italy")}.Matches(c))
	assert.False(t, CoffeeFilter{Origin: ptr("Italy"), Type: ptr("preparation")}.Matches(c))

	assert.NoError(t, CoffeeFilter{Intensity: ptr(10)}.Validate())
	assert.True(t, errors.IsValidation(CoffeeFilter{Intensity: ptr(11)}.Validate()))
}

func TestReviewValidation(t *testing.T) {
	assert.NoError(t, ValidateReviewInput("Espresso", 5, "Perfect"))
	assert.True(t, errors.IsValidation(ValidateReviewInput("", 5, "Perfect")))
	assert.True(t, errors.IsValidation(ValidateReviewInput("Espresso", 5, " ")))
	assert.True(t, errors.IsValidation(ValidateReviewInput("Espresso", 6, "Perfect")))
	assert.True(t, errors.IsValidation(ValidateReviewContent(0, "Perfect")))
}

func TestReviewWithContent(t *testing.T) {
	r := Review{ID: "1", CoffeeName: "Espresso", Rating: 2, Comment: "meh"}
	updated := r.WithContent(5, "grew on me")

	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, "Espresso", updated.CoffeeName)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, "grew on me", updated.Comment)
	assert.NotEqual(t, r.Key(), updated.Key())

	assert.True(t, ReviewFilter{}.Matches(r))
	assert.True(t, ReviewFilter{CoffeeName: ptr("Espresso")}.Matches(r))
	assert.False(t, ReviewFilter{CoffeeName: ptr("espresso")}.Matches(r))
}
