// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed default_layout.json
var defaultLayoutJSON []byte

// DefaultLayout returns the standard defense grid: three batteries and six
// cities on the ground line.
func DefaultLayout() (Layout, error) {
	var layout Layout
	if err := json.Unmarshal(defaultLayoutJSON, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to unmarshal default layout: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("default layout is invalid: %w", err)
	}
	return layout, nil
}

// LoadLayout reads a layout definition file and validates it.
func LoadLayout(path string) (Layout, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}

	var layout Layout
	if err := json.Unmarshal(file, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to unmarshal layout: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout %s is invalid: %w", path, err)
	}
	return layout, nil
}

// Validate rejects layouts the simulation cannot run on.
func (l Layout) Validate() error {
	if len(l.Towers) == 0 {
		return fmt.Errorf("layout has no towers")
	}
	if len(l.Cities) == 0 {
		return fmt.Errorf("layout has no cities")
	}
	for i, t := range l.Towers {
		if t.Ammo < 0 {
			return fmt.Errorf("tower %d has negative ammo %d", i, t.Ammo)
		}
	}
	return nil
}
