package memory

import (
	"github.com/IbuprofenLover/brewing-stand/application/ports"
	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
)

var (
	seedNames = []string{
		"Espresso", "Colombian Roast", "French Roast", "Ethiopian Yirgacheffe",
		"Sumatra Mandheling", "Kenyan AA", "House Blend",
		"Guatemalan Huehuetenango", "Brazilian Santos", "Italian Dark Roast",
	}
	seedOrigins = []string{
		"Italy", "Colombia", "France", "Ethiopia", "Indonesia",
		"Kenya", "USA", "Guatemala", "Brazil", "Italy",
	}
	seedAromas = []string{"coco and dark chocolate", "hints of wood", "fruity", "bitter"}
	seedTypes  = []string{"blend", "preparation", "aromatic coffee"}
)

// SeedCatalog fills store with the sample catalog through the regular create
// path. Intensities go through clamping, so the first entry ends up at 1.
// Coffees that already exist are skipped.
func SeedCatalog(store ports.CoffeeStore) (int, error) {
	created := 0
	for i, name := range seedNames {
		_, err := store.Create(name, seedOrigins[i], i%10, seedAromas[i%len(seedAromas)], seedTypes[i%len(seedTypes)])
		switch {
		case err == nil:
			created++
		case errors.IsConflict(err):
			continue
		default:
			return created, errors.Wrap(err, "seed catalog")
		}
	}
	return created, nil
}
