package sandbox

import "openbox/internal/core"

// spreadsSideways reports whether a blocked kind flows horizontally.
func spreadsSideways(k core.Kind) bool {
	return k == core.Water || k == core.Oil
}

// granular reports whether a blocked kind tumbles diagonally down.
func granular(k core.Kind) bool {
	return k == core.Sand
}

// move performs the single movement attempt for the particle at (x, y):
// straight down first, then a sideways slide for liquids or a diagonal
// tumble for granular kinds, random direction first. A successful move is
// an atomic swap; the moved particle's vestigial velocity is zeroed.
func (w *World) move(x, y int) {
	c := w.grid.At(x, y)
	if c == nil || !PropertiesOf(c.Kind).Movable {
		return
	}

	tx, ty := x, y
	moved := false

	switch {
	case w.isEmpty(x, y+1):
		w.grid.Swap(x, y, x, y+1)
		tx, ty = x, y+1
		moved = true
	case spreadsSideways(c.Kind):
		d := w.rng.Dir()
		if w.isEmpty(x+d, y) {
			w.grid.Swap(x, y, x+d, y)
			tx = x + d
			moved = true
		} else if w.isEmpty(x-d, y) {
			w.grid.Swap(x, y, x-d, y)
			tx = x - d
			moved = true
		}
	case granular(c.Kind):
		d := w.rng.Dir()
		if w.isEmpty(x+d, y+1) {
			w.grid.Swap(x, y, x+d, y+1)
			tx, ty = x+d, y+1
			moved = true
		} else if w.isEmpty(x-d, y+1) {
			w.grid.Swap(x, y, x-d, y+1)
			tx, ty = x-d, y+1
			moved = true
		}
	}

	if moved {
		mc := w.grid.At(tx, ty)
		mc.VelX = 0
		mc.VelY = 0
	}
}

func (w *World) isEmpty(x, y int) bool {
	return w.grid.InBounds(x, y) && w.grid.Get(x, y).Kind == core.Empty
}
