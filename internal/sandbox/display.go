package sandbox

import (
	"image/color"

	"openbox/internal/core"
)

// TemperatureColor tints a base color by temperature: hot cells shift
// toward red above 100°C, cold cells toward blue below 0°C. Channels clamp
// to [0,255].
func TemperatureColor(base color.RGBA, temperature float64) color.RGBA {
	if temperature > 100 {
		excess := int(temperature - 100)
		return color.RGBA{
			R: clampChannel(int(base.R) + excess/4),
			G: clampChannel(int(base.G) - excess/8),
			B: clampChannel(int(base.B) - excess/8),
			A: base.A,
		}
	}
	if temperature < 0 {
		chill := int(-temperature)
		return color.RGBA{
			R: clampChannel(int(base.R) - chill/8),
			G: clampChannel(int(base.G) - chill/8),
			B: clampChannel(int(base.B) + chill/4),
			A: base.A,
		}
	}
	return base
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ColorAt returns the display color for the cell at (x, y): the cached
// base color adjusted by temperature. Empty cells render as background.
func (w *World) ColorAt(x, y int) color.RGBA {
	c := w.grid.Get(x, y)
	if c.Kind == core.Empty {
		return color.RGBA{A: 255}
	}
	return TemperatureColor(c.Color, c.Temperature)
}

// FillRGBA writes the current display colors into buf as packed RGBA in
// row-major order. Buffers of the wrong length are left untouched.
func (w *World) FillRGBA(buf []byte) {
	cells := w.grid.Cells()
	if len(buf) != len(cells)*4 {
		return
	}
	for i := range cells {
		base := i * 4
		c := &cells[i]
		if c.Kind == core.Empty {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 255
			continue
		}
		col := TemperatureColor(c.Color, c.Temperature)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
