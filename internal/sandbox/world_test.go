package sandbox

import (
	"testing"

	"openbox/internal/core"
)

func TestFiniteLifetimeExpires(t *testing.T) {
	w := New(5, 6)
	w.Place(2, 2, core.Wood, 0)
	w.Grid().At(2, 2).Lifetime = 2

	w.Step()
	if got := kindAt(w, 2, 2); got != core.Wood {
		t.Fatalf("particle should survive its first step, got %v", got)
	}
	w.Step()
	if got := kindAt(w, 2, 2); got != core.Empty {
		t.Fatalf("particle should expire after its lifetime runs out, got %v", got)
	}
}

func TestResetRestoresBoundaryAndTick(t *testing.T) {
	w := New(6, 6)
	w.Place(3, 3, core.Lava, 1)
	w.Place(0, 2, core.Sand, 0) // explicit placement may overwrite the wall
	w.Step()
	if w.Tick() == 0 {
		t.Fatal("step should advance the tick counter")
	}

	w.Reset(0)

	if w.Tick() != 0 {
		t.Fatalf("reset should zero the tick counter, got %d", w.Tick())
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			border := x == 0 || x == 5 || y == 0 || y == 5
			got := kindAt(w, x, y)
			if border && got != core.Wall {
				t.Fatalf("(%d,%d) should be boundary wall after reset, got %v", x, y, got)
			}
			if !border && got != core.Empty {
				t.Fatalf("(%d,%d) should be empty after reset, got %v", x, y, got)
			}
		}
	}
}

func TestResetWithSeedIsDeterministic(t *testing.T) {
	run := func() []core.Kind {
		w := New(9, 9)
		w.Reset(99)
		w.Place(4, 2, core.Water, 1)
		for i := 0; i < 10; i++ {
			w.Step()
		}
		kinds := make([]core.Kind, len(w.Grid().Cells()))
		for i := range w.Grid().Cells() {
			kinds[i] = w.Grid().Cells()[i].Kind
		}
		return kinds
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at cell %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPauseAndSymmetryToggles(t *testing.T) {
	w := New(5, 5)
	if w.Paused() || w.Symmetry() {
		t.Fatal("fresh world should start unpaused and asymmetric")
	}
	if !w.TogglePause() || !w.Paused() {
		t.Fatal("toggle should pause")
	}
	if w.TogglePause() || w.Paused() {
		t.Fatal("second toggle should resume")
	}
	if !w.ToggleSymmetry() || !w.Symmetry() {
		t.Fatal("toggle should enable symmetry")
	}
	w.SetPaused(true)
	if !w.Paused() {
		t.Fatal("SetPaused(true) should pause")
	}
}

func TestSetFloatParameter(t *testing.T) {
	w := New(5, 5)

	if !w.SetFloatParameter("ignite_chance", 3) {
		t.Fatal("ignite_chance is a known parameter")
	}
	if got := w.cfg.Params.IgniteChance; got != 1 {
		t.Fatalf("chance should clamp to 1, got %v", got)
	}
	if !w.SetFloatParameter("dissolve_chance", -2) {
		t.Fatal("dissolve_chance is a known parameter")
	}
	if got := w.cfg.Params.DissolveChance; got != 0 {
		t.Fatalf("chance should clamp to 0, got %v", got)
	}
	if w.SetFloatParameter("gravity", 9.8) {
		t.Fatal("unknown parameters must be rejected")
	}
}

func TestRegistryProvidesSandbox(t *testing.T) {
	factory, ok := core.Sims()["sandbox"]
	if !ok {
		t.Fatal("sandbox sim should self-register")
	}
	sim := factory(map[string]string{"w": "12", "h": "10"})
	if sim.Name() != "sandbox" {
		t.Fatalf("sim name = %q, want sandbox", sim.Name())
	}
	if size := sim.Size(); size.W != 12 || size.H != 10 {
		t.Fatalf("sim size = %dx%d, want 12x10", size.W, size.H)
	}
	if _, ok := sim.(*World); !ok {
		t.Fatalf("factory should build a *World, got %T", sim)
	}
}

func TestWindIsRecorded(t *testing.T) {
	w := New(5, 5)
	w.SetWind(0.3, -0.1)
	x, y := w.Wind()
	if x != 0.3 || y != -0.1 {
		t.Fatalf("wind = (%v,%v), want (0.3,-0.1)", x, y)
	}
}
