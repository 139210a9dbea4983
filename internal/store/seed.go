package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fairyhunter13/vendor-supply-hub/internal/model"
)

// DefaultSeed returns the state a fresh process starts with.
func DefaultSeed() model.GroupOrderState {
	return model.GroupOrderState{
		VendorCount:   7,
		OrderTotal:    12000,
		TimeRemaining: "01:23:45",
		Vendors: []string{
			"Vendor A", "Vendor B", "Vendor C", "Vendor D",
			"Vendor E", "Vendor F", "Vendor G",
		},
	}
}

// LoadSeed reads a YAML seed file. Keys missing from the file keep their DefaultSeed value.
// An empty path returns DefaultSeed.
func LoadSeed(path string) (model.GroupOrderState, error) {
	seed := DefaultSeed()
	if path == "" {
		return seed, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return model.GroupOrderState{}, fmt.Errorf("read seed file: %w", err)
	}
	if err := yaml.Unmarshal(b, &seed); err != nil {
		return model.GroupOrderState{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return seed, nil
}
