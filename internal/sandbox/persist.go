package sandbox

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"openbox/internal/core"
)

// cellRecordSize is the fixed on-disk size of one cell: kind byte, RGBA
// color, temperature, two velocity components and the lifetime counter.
const cellRecordSize = 1 + 4 + 8 + 8 + 8 + 8

// Save writes the entire grid as fixed-size little-endian cell records in
// column-major order (all y for each x), matching the historical format.
// There is no header or version; the grid dimensions are implicit.
func (w *World) Save(out io.Writer) error {
	var rec [cellRecordSize]byte
	for x := 0; x < w.w; x++ {
		for y := 0; y < w.h; y++ {
			encodeCell(rec[:], w.grid.Get(x, y))
			if _, err := out.Write(rec[:]); err != nil {
				return fmt.Errorf("write cell (%d,%d): %w", x, y, err)
			}
		}
	}
	return nil
}

// Load restores a grid previously written by Save. The payload must be
// exactly width*height records; anything else is rejected before any cell
// is touched.
func (w *World) Load(in io.Reader) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read save data: %w", err)
	}
	want := w.w * w.h * cellRecordSize
	if len(data) != want {
		return fmt.Errorf("save data is %d bytes, want %d for a %dx%d grid", len(data), want, w.w, w.h)
	}

	cells := make([]core.Cell, w.w*w.h)
	off := 0
	for x := 0; x < w.w; x++ {
		for y := 0; y < w.h; y++ {
			c, err := decodeCell(data[off : off+cellRecordSize])
			if err != nil {
				return fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			cells[w.grid.Index(x, y)] = c
			off += cellRecordSize
		}
	}

	copy(w.grid.Cells(), cells)
	return nil
}

// SaveFile saves the grid to the named file, truncating any existing one.
func (w *World) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save file: %w", err)
	}
	if err := w.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close save file: %w", err)
	}
	return nil
}

// LoadFile restores the grid from the named file.
func (w *World) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open save file: %w", err)
	}
	defer f.Close()
	return w.Load(f)
}

func encodeCell(dst []byte, c core.Cell) {
	dst[0] = byte(c.Kind)
	dst[1] = c.Color.R
	dst[2] = c.Color.G
	dst[3] = c.Color.B
	dst[4] = c.Color.A
	binary.LittleEndian.PutUint64(dst[5:], math.Float64bits(c.Temperature))
	binary.LittleEndian.PutUint64(dst[13:], math.Float64bits(c.VelX))
	binary.LittleEndian.PutUint64(dst[21:], math.Float64bits(c.VelY))
	binary.LittleEndian.PutUint64(dst[29:], uint64(int64(c.Lifetime)))
}

func decodeCell(src []byte) (core.Cell, error) {
	kind := core.Kind(src[0])
	if !kind.Valid() {
		return core.Cell{}, fmt.Errorf("invalid kind byte %d", src[0])
	}
	c := core.Cell{
		Kind:        kind,
		Temperature: math.Float64frombits(binary.LittleEndian.Uint64(src[5:])),
		VelX:        math.Float64frombits(binary.LittleEndian.Uint64(src[13:])),
		VelY:        math.Float64frombits(binary.LittleEndian.Uint64(src[21:])),
		Lifetime:    int(int64(binary.LittleEndian.Uint64(src[29:]))),
	}
	c.Color.R = src[1]
	c.Color.G = src[2]
	c.Color.B = src[3]
	c.Color.A = src[4]
	return c, nil
}
