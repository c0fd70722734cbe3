package stream

import (
	"encoding/json"
	"fmt"

	"openbox/internal/sandbox"
)

// Frame is one rendered tick of the world, broadcast to live-view
// clients. Pixels is the packed row-major RGBA image of the grid; JSON
// encoding base64s it.
type Frame struct {
	Tick   uint64 `json:"tick"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Paused bool   `json:"paused"`
	Pixels []byte `json:"pixels"`
}

// NewFrame captures the world's current display state. The caller must
// hold whatever lock serializes world access.
func NewFrame(w *sandbox.World) Frame {
	size := w.Size()
	buf := make([]byte, size.W*size.H*4)
	w.FillRGBA(buf)
	return Frame{
		Tick:   w.Tick(),
		Width:  size.W,
		Height: size.H,
		Paused: w.Paused(),
		Pixels: buf,
	}
}

// JSON encodes the frame for transport.
func (f Frame) JSON() ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return data, nil
}

// DecodeFrame parses a frame previously produced by JSON.
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}
	return f, nil
}
