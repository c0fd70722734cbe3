package sandbox

import "openbox/internal/core"

// Place fills every cell within Euclidean distance radius of (x, y) with
// the given kind at its catalog defaults. Radius 0 sets exactly one cell.
// Placing Empty erases. Out-of-range targets are ignored; the disc is
// clipped against the grid.
func (w *World) Place(x, y int, kind core.Kind, radius int) {
	if !w.grid.InBounds(x, y) {
		return
	}
	if radius < 0 {
		radius = 0
	}
	p := PropertiesOf(kind)
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			w.grid.Set(x+dx, y+dy, core.Cell{
				Kind:        kind,
				Color:       p.Color,
				Temperature: p.DefaultTemperature,
				Lifetime:    p.DefaultLifetime,
			})
		}
	}
}

// Paint is the input-boundary placement entry point. It honors the
// symmetry mode by mirroring the brush across the vertical center line.
func (w *World) Paint(x, y int, kind core.Kind, radius int) {
	w.Place(x, y, kind, radius)
	if w.symmetry {
		w.Place(w.w-1-x, y, kind, radius)
	}
}

// Erase clears a brush-sized disc back to empty.
func (w *World) Erase(x, y, radius int) {
	w.Paint(x, y, core.Empty, radius)
}
