package sandbox

import "openbox/internal/core"

// interact applies the kind-specific neighborhood rules for the cell at
// (x, y). Rules read live grid state, so a conversion made earlier in the
// same tick is visible here.
func (w *World) interact(x, y int) {
	c := w.grid.At(x, y)
	if c == nil {
		return
	}

	switch c.Kind {
	case core.Water:
		// Water extinguishes adjacent fire into steam, deterministically.
		w.forNeighbors(x, y, func(n *core.Cell) {
			if n.Kind == core.Fire {
				convert(n, core.Steam)
			}
		})
		if c.Temperature < w.cfg.Params.FreezeTemperature {
			convert(c, core.Ice)
		}

	case core.Fire:
		w.forNeighbors(x, y, func(n *core.Cell) {
			if PropertiesOf(n.Kind).Flammable && w.rng.Chance(w.cfg.Params.IgniteChance) {
				convert(n, core.Fire)
			}
		})
		// The chance is rolled before the emptiness check so the draw
		// sequence does not depend on the surroundings.
		if w.rng.Chance(w.cfg.Params.SmokeChance) {
			if above := w.grid.At(x, y-1); above != nil && above.Kind == core.Empty {
				convert(above, core.Smoke)
			}
		}

	case core.Lava:
		w.forNeighbors(x, y, func(n *core.Cell) {
			if n.Kind == core.Water {
				convert(n, core.Steam)
			}
		})
		if c.Temperature < w.cfg.Params.LavaSolidifyTemperature {
			convert(c, core.Metal)
		}

	case core.Acid:
		// Glass is the sole immune solid.
		w.forNeighbors(x, y, func(n *core.Cell) {
			if n.Kind == core.Empty || n.Kind == core.Acid || n.Kind == core.Glass {
				return
			}
			if w.rng.Chance(w.cfg.Params.DissolveChance) {
				convert(n, core.Empty)
			}
		})
	}
}

// forNeighbors invokes fn for every valid cell in the 8-neighborhood of
// (x, y), excluding the cell itself.
func (w *World) forNeighbors(x, y int, fn func(*core.Cell)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if n := w.grid.At(x+dx, y+dy); n != nil {
				fn(n)
			}
		}
	}
}
