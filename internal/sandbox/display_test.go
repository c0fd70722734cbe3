package sandbox

import (
	"image/color"
	"testing"

	"openbox/internal/core"
)

func TestTemperatureColorNeutralBand(t *testing.T) {
	base := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	for _, temp := range []float64{0, 20, 100} {
		if got := TemperatureColor(base, temp); got != base {
			t.Fatalf("temperature %v should not tint, got %v", temp, got)
		}
	}
}

func TestTemperatureColorHotShiftsRed(t *testing.T) {
	base := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	got := TemperatureColor(base, 300)
	want := color.RGBA{R: 150, G: 75, B: 75, A: 255}
	if got != want {
		t.Fatalf("hot tint = %v, want %v", got, want)
	}
}

func TestTemperatureColorColdShiftsBlue(t *testing.T) {
	base := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	got := TemperatureColor(base, -80)
	want := color.RGBA{R: 90, G: 90, B: 120, A: 255}
	if got != want {
		t.Fatalf("cold tint = %v, want %v", got, want)
	}
}

func TestTemperatureColorClampsChannels(t *testing.T) {
	base := color.RGBA{R: 250, G: 10, B: 10, A: 255}
	got := TemperatureColor(base, 2000)
	want := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	if got != want {
		t.Fatalf("clamped tint = %v, want %v", got, want)
	}
}

func TestFillRGBA(t *testing.T) {
	w := New(4, 4)
	buf := make([]byte, 4*4*4)
	w.FillRGBA(buf)

	// Corner wall.
	wall := PropertiesOf(core.Wall).Color
	if buf[0] != wall.R || buf[1] != wall.G || buf[2] != wall.B || buf[3] != wall.A {
		t.Fatalf("corner pixel = %v, want wall color", buf[:4])
	}
	// Interior cell (1,1) is empty and renders as opaque background.
	base := (1*4 + 1) * 4
	if buf[base] != 0 || buf[base+1] != 0 || buf[base+2] != 0 || buf[base+3] != 255 {
		t.Fatalf("empty pixel = %v, want opaque black", buf[base:base+4])
	}
}

func TestFillRGBAIgnoresWrongSizeBuffer(t *testing.T) {
	w := New(4, 4)
	buf := make([]byte, 7)
	w.FillRGBA(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("wrong-size buffer byte %d was written: %d", i, b)
		}
	}
}
