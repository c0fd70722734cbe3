package sandbox

import (
	"openbox/internal/core"
	rng "openbox/pkg/core"
)

// World owns the cell grid and drives one falling-sand tick at a time.
//
// A tick is a single bottom-to-top, left-to-right pass over the grid. Each
// cell is claimed once per tick; per cell the phases run in a fixed order
// (lifetime, movement, heat diffusion, interactions, reactions) and a kind
// change made by an earlier phase is visible to the later ones. The world
// itself is not safe for concurrent use; callers serialize Step against
// placement and persistence.
type World struct {
	cfg Config

	w, h int
	grid *core.Grid
	rng  *rng.RNG

	paused   bool
	symmetry bool

	// Wind bias is collected from the input boundary but not yet applied
	// to any particle. Reserved hook.
	windX, windY float64

	tick uint64
}

// New returns a sandbox world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox world configured from the provided
// options. The grid starts reset with the wall boundary in place.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:  cfg,
		w:    cfg.Width,
		h:    cfg.Height,
		grid: core.NewGrid(cfg.Width, cfg.Height),
		rng:  rng.NewRNG(cfg.Seed),
	}
	w.w = w.grid.W
	w.h = w.grid.H
	w.grid.Reset(w.wallCell())
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandbox" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Grid exposes the cell arena for direct inspection.
func (w *World) Grid() *core.Grid { return w.grid }

// Tick reports how many simulation steps have run since the last reset.
func (w *World) Tick() uint64 { return w.tick }

// Paused reports whether the external pause toggle is set. Step itself
// always completes a full pass; the driving loop consults this flag.
func (w *World) Paused() bool { return w.paused }

// SetPaused sets the external pause toggle.
func (w *World) SetPaused(p bool) { w.paused = p }

// TogglePause flips the pause toggle and returns the new state.
func (w *World) TogglePause() bool {
	w.paused = !w.paused
	return w.paused
}

// Symmetry reports whether placements are mirrored across the vertical
// center line.
func (w *World) Symmetry() bool { return w.symmetry }

// ToggleSymmetry flips the symmetry mode and returns the new state.
func (w *World) ToggleSymmetry() bool {
	w.symmetry = !w.symmetry
	return w.symmetry
}

// SetWind records the directional wind bias from the input boundary.
func (w *World) SetWind(x, y float64) {
	w.windX, w.windY = x, y
}

// Wind returns the current wind bias.
func (w *World) Wind() (float64, float64) { return w.windX, w.windY }

// Reset reinitializes every cell to empty at ambient temperature with the
// wall ring stamped, and reseeds the RNG. A zero seed falls back to the
// configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng.Reseed(seed)
	w.grid.Reset(w.wallCell())
	w.tick = 0
}

// Step advances the simulation by one full tick.
func (w *World) Step() {
	w.grid.ClearUpdated()
	for y := w.h - 1; y >= 0; y-- {
		for x := 0; x < w.w; x++ {
			w.updateCell(x, y)
		}
	}
	w.tick++
}

// updateCell runs one cell's update phases. The scan is bottom-to-top, so
// a swap can only land a particle in an already-visited row; the claimed
// check is a defensive invariant rather than a load-bearing mechanism.
func (w *World) updateCell(x, y int) {
	c := w.grid.At(x, y)
	if c == nil || c.Updated {
		return
	}
	c.Updated = true

	if c.Lifetime > 0 {
		c.Lifetime--
		if c.Lifetime <= 0 {
			w.clearCell(c)
			return
		}
	}

	w.move(x, y)
	// Later phases act on whatever now occupies (x, y); a particle that
	// moved this tick is diffused and reacted at its old coordinate's new
	// occupant, matching the single-pass in-place model.
	w.diffuseHeat(x, y)
	w.interact(x, y)
	w.react(x, y)
}

// convert switches a cell to a new kind in place, refreshing the cached
// base color. Temperature, velocity and lifetime carry over.
func convert(c *core.Cell, k core.Kind) {
	c.Kind = k
	c.Color = PropertiesOf(k).Color
}

func (w *World) clearCell(c *core.Cell) {
	convert(c, core.Empty)
}

func (w *World) wallCell() core.Cell {
	p := PropertiesOf(core.Wall)
	return core.Cell{
		Kind:        core.Wall,
		Color:       p.Color,
		Temperature: p.DefaultTemperature,
		Lifetime:    p.DefaultLifetime,
	}
}

// SetFloatParameter adjusts a named rule parameter at runtime. Chance
// values clamp to [0,1]. Returns false for unknown keys.
func (w *World) SetFloatParameter(key string, value float64) bool {
	clamp01 := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	switch key {
	case "ignite_chance":
		w.cfg.Params.IgniteChance = clamp01(value)
	case "smoke_chance":
		w.cfg.Params.SmokeChance = clamp01(value)
	case "dissolve_chance":
		w.cfg.Params.DissolveChance = clamp01(value)
	case "temperature_spread":
		w.cfg.Params.TemperatureSpread = clamp01(value)
	case "cooling_rate":
		if value < 0 {
			value = 0
		}
		w.cfg.Params.CoolingRate = value
	default:
		return false
	}
	return true
}

func init() {
	core.Register("sandbox", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
