package app

import "flag"

// Config holds the GUI launch options.
type Config struct {
	ScreenW  int
	ScreenH  int
	CellSize int
	TPS      int
	Seed     int64
	SavePath string
}

// NewConfig returns the default configuration: a 1280x720 window with 8px
// cells at 60 ticks per second.
func NewConfig() Config {
	return Config{
		ScreenW:  1280,
		ScreenH:  720,
		CellSize: 8,
		TPS:      60,
		Seed:     1337,
		SavePath: "sandbox_save.dat",
	}
}

// Bind registers the configuration flags on the given flag set.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.ScreenW, "width", c.ScreenW, "window width in pixels")
	fs.IntVar(&c.ScreenH, "height", c.ScreenH, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "path used by save/load")
}

// GridSize derives the grid dimensions from the display resolution and the
// cell-size divisor.
func (c Config) GridSize() (int, int) {
	cell := c.CellSize
	if cell <= 0 {
		cell = 1
	}
	return c.ScreenW / cell, c.ScreenH / cell
}
