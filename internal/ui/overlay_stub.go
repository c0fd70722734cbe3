//go:build !ebiten

package ui

import "openbox/internal/sandbox"

// Overlay is a placeholder that satisfies the API expected by the GUI
// build.
type Overlay struct{}

// NewOverlay returns a no-op overlay in headless builds.
func NewOverlay(*sandbox.World) *Overlay { return &Overlay{} }

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(any, View, Status) {}
