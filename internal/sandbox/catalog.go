package sandbox

import (
	"fmt"
	"image/color"

	"openbox/internal/core"
)

// Properties holds the immutable physical attributes of a particle kind.
// Conductivity and Viscosity are catalogued but not read by any current
// rule; they are kept for future physics.
type Properties struct {
	Color              color.RGBA
	Movable            bool
	Flammable          bool
	Mass               float64
	DefaultTemperature float64
	Conductivity       float64
	Viscosity          float64
	DefaultLifetime    int
}

// SaltWaterColor is the tint applied to water that has dissolved salt.
var SaltWaterColor = color.RGBA{R: 102, G: 191, B: 255, A: 255}

var catalog = [core.KindCount]Properties{
	core.Empty: {
		Color:              color.RGBA{A: 255},
		DefaultTemperature: core.AmbientTemperature,
		DefaultLifetime:    -1,
	},
	core.Sand: {
		Color:              color.RGBA{R: 255, G: 203, B: 0, A: 255},
		Movable:            true,
		Mass:               1.5,
		DefaultTemperature: 20,
		Conductivity:       0.2,
		DefaultLifetime:    -1,
	},
	core.Water: {
		Color:              color.RGBA{R: 0, G: 121, B: 241, A: 255},
		Movable:            true,
		Mass:               1.0,
		DefaultTemperature: 20,
		Conductivity:       0.5,
		Viscosity:          0.8,
		DefaultLifetime:    -1,
	},
	core.Wall: {
		Color:              color.RGBA{R: 80, G: 80, B: 80, A: 255},
		Mass:               999,
		DefaultTemperature: 20,
		Conductivity:       0.1,
		DefaultLifetime:    -1,
	},
	core.Fire: {
		Color:              color.RGBA{R: 230, G: 41, B: 55, A: 255},
		Movable:            true,
		Mass:               0.1,
		DefaultTemperature: 800,
		Conductivity:       1.0,
		DefaultLifetime:    100,
	},
	core.Smoke: {
		Color:              color.RGBA{R: 80, G: 80, B: 80, A: 255},
		Movable:            true,
		Mass:               0.2,
		DefaultTemperature: 100,
		Conductivity:       0.1,
		Viscosity:          0.3,
		DefaultLifetime:    200,
	},
	core.Steam: {
		Color:              color.RGBA{R: 200, G: 200, B: 200, A: 255},
		Movable:            true,
		Mass:               0.3,
		DefaultTemperature: 100,
		Conductivity:       0.3,
		Viscosity:          0.2,
		DefaultLifetime:    150,
	},
	core.Lava: {
		Color:              color.RGBA{R: 255, G: 161, B: 0, A: 255},
		Movable:            true,
		Mass:               2.0,
		DefaultTemperature: 1000,
		Conductivity:       0.8,
		Viscosity:          0.9,
		DefaultLifetime:    -1,
	},
	core.Ice: {
		Color:              color.RGBA{R: 102, G: 191, B: 255, A: 255},
		Mass:               0.9,
		DefaultTemperature: -10,
		Conductivity:       0.9,
		DefaultLifetime:    -1,
	},
	core.Oil: {
		Color:              color.RGBA{R: 127, G: 106, B: 79, A: 255},
		Movable:            true,
		Flammable:          true,
		Mass:               0.8,
		DefaultTemperature: 20,
		Conductivity:       0.1,
		Viscosity:          0.4,
		DefaultLifetime:    -1,
	},
	core.Acid: {
		Color:              color.RGBA{R: 0, G: 228, B: 48, A: 255},
		Movable:            true,
		Mass:               1.2,
		DefaultTemperature: 20,
		Conductivity:       0.3,
		Viscosity:          0.5,
		DefaultLifetime:    -1,
	},
	core.Wood: {
		Color:              color.RGBA{R: 211, G: 176, B: 131, A: 255},
		Flammable:          true,
		Mass:               0.7,
		DefaultTemperature: 20,
		Conductivity:       0.2,
		DefaultLifetime:    -1,
	},
	core.Plant: {
		Color:              color.RGBA{R: 0, G: 117, B: 44, A: 255},
		Flammable:          true,
		Mass:               0.6,
		DefaultTemperature: 20,
		Conductivity:       0.3,
		DefaultLifetime:    -1,
	},
	core.Salt: {
		Color:              color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Movable:            true,
		Mass:               1.1,
		DefaultTemperature: 20,
		Conductivity:       0.2,
		DefaultLifetime:    -1,
	},
	core.Glass: {
		Color:              color.RGBA{R: 255, G: 255, B: 255, A: 127},
		Mass:               1.5,
		DefaultTemperature: 20,
		Conductivity:       0.4,
		DefaultLifetime:    -1,
	},
	core.Metal: {
		Color:              color.RGBA{R: 200, G: 200, B: 200, A: 255},
		Mass:               2.0,
		DefaultTemperature: 20,
		Conductivity:       0.9,
		DefaultLifetime:    -1,
	},
}

// PropertiesOf returns the catalog entry for the given kind. Unknown kinds
// map to the neutral Empty entry so lookups never fail.
func PropertiesOf(k core.Kind) Properties {
	if !k.Valid() {
		return catalog[core.Empty]
	}
	return catalog[k]
}

// validateCatalog checks that every defined kind has a real entry. A dense
// array silently zero-fills missing variants; this turns that into a
// startup failure instead of a silently inert material.
func validateCatalog() error {
	for k := core.Kind(0); k.Valid(); k++ {
		if k == core.Empty {
			continue
		}
		p := catalog[k]
		if p.Mass <= 0 {
			return fmt.Errorf("catalog entry for %s has no mass", k)
		}
		if p.DefaultLifetime == 0 {
			return fmt.Errorf("catalog entry for %s has zero lifetime; use -1 for infinite", k)
		}
	}
	return nil
}

func init() {
	if err := validateCatalog(); err != nil {
		panic("sandbox: " + err.Error())
	}
}
