package core

import "image/color"

// AmbientTemperature is the resting temperature in °C that all cells relax
// toward.
const AmbientTemperature = 20.0

// Cell is the atomic simulation unit stored at one grid coordinate.
//
// Color caches the base display color for the cell's kind; reactions may
// mutate it (salt water keeps its tint). Updated is the tick-scoped claimed
// marker preventing a particle from being processed twice in one pass.
// VelX/VelY are stored and shown in the debug overlay but never integrated
// into movement.
type Cell struct {
	Kind        Kind
	Color       color.RGBA
	Updated     bool
	Temperature float64
	VelX        float64
	VelY        float64
	Lifetime    int
}

// Grid is a fixed-size arena of cells in row-major order. All access is
// bounds-checked; out-of-range reads return the zero cell and out-of-range
// writes are no-ops.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Cells exposes the backing slice so hot loops can index cells directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns a copy of the cell at (x, y), or the zero cell when out of
// bounds.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Cell{}
	}
	return g.cells[g.Index(x, y)]
}

// Set overwrites the cell at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = c
}

// At returns a pointer to the cell at (x, y) for in-place mutation, or nil
// when out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// Swap exchanges the full state of two cells, Updated flags included, so a
// moved particle stays claimed for the remainder of the tick. Either
// coordinate being out of range makes the swap a no-op.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		return
	}
	i := g.Index(x1, y1)
	j := g.Index(x2, y2)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// ClearUpdated resets every cell's claimed marker ahead of a tick.
func (g *Grid) ClearUpdated() {
	for i := range g.cells {
		g.cells[i].Updated = false
	}
}

// Reset reinitializes every cell to empty at ambient temperature, then
// stamps the outer ring with the provided wall cell. The boundary is not
// re-enforced afterwards; explicit placement may overwrite it.
func (g *Grid) Reset(wall Cell) {
	for i := range g.cells {
		g.cells[i] = Cell{
			Kind:        Empty,
			Temperature: AmbientTemperature,
			Lifetime:    -1,
		}
	}
	for x := 0; x < g.W; x++ {
		g.cells[g.Index(x, 0)] = wall
		g.cells[g.Index(x, g.H-1)] = wall
	}
	for y := 0; y < g.H; y++ {
		g.cells[g.Index(0, y)] = wall
		g.cells[g.Index(g.W-1, y)] = wall
	}
}
