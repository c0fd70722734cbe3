//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"openbox/internal/core"
)

// GridPainter updates a single RGBA image from a simulation's display
// colors and draws it with a view transform.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the simulation's current colors into the painter image and
// draws it scaled to scale pixels per cell, offset by (offsetX, offsetY)
// screen pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, offsetX, offsetY, scale float64) {
	size := sim.Size()
	if size.W != gp.w || size.H != gp.h {
		return
	}
	sim.FillRGBA(gp.buf)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(-offsetX, -offsetY)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
