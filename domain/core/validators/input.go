package validators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
)

const (
	MinIntensity = 1
	MaxIntensity = 10
	MinRating    = 1
	MaxRating    = 5
)

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ClampIntensity forces an intensity into [MinIntensity, MaxIntensity].
func ClampIntensity(intensity int) int {
	return min(max(intensity, MinIntensity), MaxIntensity)
}

// ValidateIntensity rejects an intensity outside [MinIntensity, MaxIntensity].
func ValidateIntensity(intensity int) error {
	if intensity < MinIntensity || intensity > MaxIntensity {
		return errors.NewValidationError(
			fmt.Sprintf("intensity must be between %d and %d", MinIntensity, MaxIntensity),
		).WithDetail("intensity", intensity)
	}
	return nil
}

// ParseIntensity parses a textual intensity (a query parameter) and checks its range.
func ParseIntensity(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.NewValidationError("intensity must be an integer").
			WithDetail("intensity", raw)
	}
	if err := ValidateIntensity(value); err != nil {
		return 0, err
	}
	return value, nil
}

// ValidateRating rejects a rating outside [MinRating, MaxRating].
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errors.NewValidationError(
			fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating),
		).WithDetail("rating", rating)
	}
	return nil
}

// RequireText rejects a blank value for the named field.
func RequireText(field, value string) error {
	if IsBlank(value) {
		return errors.NewValidationError(fmt.Sprintf("missing %s", field)).
			WithDetail("field", field)
	}
	return nil
}
