package ui

// View describes the camera transform applied to the grid image: screen
// position = cell position * Scale - Offset.
type View struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// CellOf converts a screen coordinate to grid coordinates under the view.
func (v View) CellOf(screenX, screenY float64) (int, int) {
	if v.Scale <= 0 {
		return -1, -1
	}
	x := int((screenX + v.OffsetX) / v.Scale)
	y := int((screenY + v.OffsetY) / v.Scale)
	return x, y
}

// Status carries the HUD state the front end wants shown this frame.
type Status struct {
	Tool     string
	Brush    int
	Paused   bool
	Symmetry bool
	Debug    bool

	// Hovered cell, or (-1,-1) when the cursor is outside the grid.
	CursorX int
	CursorY int
}
