//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"openbox/internal/sandbox"
)

// Overlay draws the HUD and the optional debug visuals on top of the grid.
type Overlay struct {
	world *sandbox.World
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay bound to the given world.
func NewOverlay(world *sandbox.World) *Overlay {
	o := &Overlay{world: world}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the HUD text and, in debug mode, the velocity vectors.
func (o *Overlay) Draw(screen *ebiten.Image, v View, st Status) {
	const lineHeight = 16
	y := 8
	printLine := func(s string) {
		ebitenutil.DebugPrintAt(screen, s, 8, y)
		y += lineHeight
	}

	printLine(fmt.Sprintf("Particle Type: %s", st.Tool))
	printLine(fmt.Sprintf("Brush Size: %d", st.Brush))
	if o.world.Grid().InBounds(st.CursorX, st.CursorY) {
		printLine(fmt.Sprintf("Temperature: %.1fC", o.world.Grid().Get(st.CursorX, st.CursorY).Temperature))
	} else {
		printLine("Temperature: --C")
	}
	printLine(fmt.Sprintf("TPS: %.0f", ebiten.ActualTPS()))
	if st.Symmetry {
		printLine("SYMMETRY")
	}

	if st.Paused {
		w := screen.Bounds().Dx()
		ebitenutil.DebugPrintAt(screen, "PAUSED", w/2-24, 8)
	}

	o.drawHelp(screen)

	if st.Debug {
		o.drawVelocities(screen, v)
	}
}

func (o *Overlay) drawHelp(screen *ebiten.Image) {
	const lineHeight = 16
	lines := []string{
		"Controls:",
		"1-9: select particle type",
		"[/]: adjust brush size",
		"Space: pause/resume  N: single step",
		"R: reset  S: save  L: load",
		"M: symmetry  F3: debug overlay",
		"Ctrl+drag: pan  Ctrl+wheel: zoom",
		"Arrows: wind bias",
	}
	y := screen.Bounds().Dy() - lineHeight*len(lines) - 8
	for _, s := range lines {
		ebitenutil.DebugPrintAt(screen, s, 8, y)
		y += lineHeight
	}
}

// drawVelocities renders the stored (vestigial) velocity of every non-empty
// cell as a short vector from its center.
func (o *Overlay) drawVelocities(screen *ebiten.Image, v View) {
	grid := o.world.Grid()
	cells := grid.Cells()
	for i := range cells {
		c := &cells[i]
		if c.VelX == 0 && c.VelY == 0 {
			continue
		}
		x := i % grid.W
		y := i / grid.W
		cx := (float64(x)+0.5)*v.Scale - v.OffsetX
		cy := (float64(y)+0.5)*v.Scale - v.OffsetY
		o.drawLine(screen, cx, cy, cx+c.VelX*5, cy+c.VelY*5, 1, color.RGBA{R: 230, G: 41, B: 55, A: 255})
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
