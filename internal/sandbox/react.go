package sandbox

import "openbox/internal/core"

// react runs the chemical reaction checks for the cell at (x, y). These
// run after the interaction rules in the same tick and override their
// result for this cell.
func (w *World) react(x, y int) {
	c := w.grid.At(x, y)
	if c == nil {
		return
	}

	// Sand vitrifies under extreme heat.
	if c.Kind == core.Sand && c.Temperature > w.cfg.Params.GlassTemperature {
		convert(c, core.Glass)
		return
	}

	// Water dissolves adjacent salt and keeps a salty tint. The tint is a
	// cosmetic flag on the cell, not a distinct kind.
	if c.Kind == core.Water {
		w.forNeighbors(x, y, func(n *core.Cell) {
			if n.Kind == core.Salt {
				convert(n, core.Empty)
				c.Color = SaltWaterColor
			}
		})
	}
}
