package stream

import (
	"testing"

	"openbox/internal/core"
	"openbox/internal/sandbox"
)

func TestNewFrameCapturesWorld(t *testing.T) {
	w := sandbox.New(6, 5)
	w.Place(2, 2, core.Sand, 0)
	w.Step()

	f := NewFrame(w)

	if f.Width != 6 || f.Height != 5 {
		t.Fatalf("frame size = %dx%d, want 6x5", f.Width, f.Height)
	}
	if f.Tick != 1 {
		t.Fatalf("frame tick = %d, want 1", f.Tick)
	}
	if want := 6 * 5 * 4; len(f.Pixels) != want {
		t.Fatalf("pixel buffer is %d bytes, want %d", len(f.Pixels), want)
	}
}

func TestFrameJSONRoundTrip(t *testing.T) {
	w := sandbox.New(4, 4)
	w.SetPaused(true)
	f := NewFrame(w)

	data, err := f.JSON()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeFrame(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.Tick != f.Tick || got.Width != f.Width || got.Height != f.Height || got.Paused != f.Paused {
		t.Fatalf("decoded header %+v does not match original", got)
	}
	if len(got.Pixels) != len(f.Pixels) {
		t.Fatalf("decoded %d pixel bytes, want %d", len(got.Pixels), len(f.Pixels))
	}
	for i := range f.Pixels {
		if got.Pixels[i] != f.Pixels[i] {
			t.Fatalf("pixel byte %d = %d, want %d", i, got.Pixels[i], f.Pixels[i])
		}
	}
}

func TestDecodeFrameRejectsGarbage(t *testing.T) {
	if _, err := DecodeFrame([]byte("not json")); err == nil {
		t.Fatal("garbage input must fail to decode")
	}
}
