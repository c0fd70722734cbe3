package sandbox

import (
	"testing"

	"openbox/internal/core"
)

// smallWorld builds a walled world of the given size with rule chances
// pinned so the scenario under test is deterministic.
func smallWorld(width, height int, tune func(*Params)) *World {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	if tune != nil {
		tune(&cfg.Params)
	}
	return NewWithConfig(cfg)
}

func TestWaterExtinguishesAdjacentFire(t *testing.T) {
	w := New(5, 5)
	w.Place(1, 3, core.Water, 0)
	w.Place(2, 3, core.Fire, 0)

	w.Step()

	if got := kindAt(w, 2, 3); got != core.Steam {
		t.Fatalf("fire next to water should become steam, got %v", got)
	}
	if got := kindAt(w, 1, 3); got != core.Water {
		t.Fatalf("water should survive the extinguish, got %v", got)
	}
}

func TestWaterFreezesBelowZero(t *testing.T) {
	w := New(5, 5)
	// Pen the water in so it cannot flow away before the freeze check.
	w.Place(1, 3, core.Wall, 0)
	w.Place(3, 3, core.Wall, 0)
	w.Place(2, 3, core.Water, 0)
	setAllTemperatures(w, -10)

	w.Step()

	if got := kindAt(w, 2, 3); got != core.Ice {
		t.Fatalf("freezing water should become ice, got %v", got)
	}
}

func TestWaterAboveZeroDoesNotFreeze(t *testing.T) {
	w := New(5, 5)
	w.Place(1, 3, core.Wall, 0)
	w.Place(3, 3, core.Wall, 0)
	w.Place(2, 3, core.Water, 0)

	w.Step()

	if got := kindAt(w, 2, 3); got != core.Water {
		t.Fatalf("ambient water should stay water, got %v", got)
	}
}

func TestLavaBoilsAdjacentWater(t *testing.T) {
	w := New(5, 5)
	w.Place(1, 3, core.Lava, 0)
	w.Place(2, 3, core.Water, 0)

	w.Step()

	if got := kindAt(w, 2, 3); got != core.Steam {
		t.Fatalf("water next to lava should become steam, got %v", got)
	}
	if got := kindAt(w, 1, 3); got != core.Lava {
		t.Fatalf("fresh lava should still be molten after one step, got %v", got)
	}
}

func TestLavaSolidifiesIntoMetalWhenCool(t *testing.T) {
	w := New(5, 5)
	w.Place(2, 3, core.Lava, 0)

	// One step sheds most of the heat but stays above the solidify point;
	// the second drops below it.
	w.Step()
	if got := kindAt(w, 2, 3); got != core.Lava {
		t.Fatalf("lava should still be molten after one step, got %v", got)
	}
	w.Step()
	if got := kindAt(w, 2, 3); got != core.Metal {
		t.Fatalf("cooled lava should solidify into metal, got %v", got)
	}
}

func TestFireIgnitesFlammableNeighbor(t *testing.T) {
	w := smallWorld(5, 5, func(p *Params) {
		p.IgniteChance = 1
		p.SmokeChance = 0
	})
	w.Place(1, 3, core.Fire, 0)
	w.Place(2, 3, core.Wood, 0)

	w.Step()

	if got := kindAt(w, 2, 3); got != core.Fire {
		t.Fatalf("wood next to fire should ignite, got %v", got)
	}
}

func TestFireIgnitionRespectsChance(t *testing.T) {
	w := smallWorld(5, 5, func(p *Params) {
		p.IgniteChance = 0
		p.SmokeChance = 0
	})
	w.Place(1, 3, core.Fire, 0)
	w.Place(2, 3, core.Wood, 0)

	for i := 0; i < 5; i++ {
		w.Step()
	}

	if got := kindAt(w, 2, 3); got != core.Wood {
		t.Fatalf("wood must never ignite at zero chance, got %v", got)
	}
}

func TestFireSpawnsSmokeAbove(t *testing.T) {
	w := smallWorld(5, 5, func(p *Params) {
		p.IgniteChance = 0
		p.SmokeChance = 1
	})
	w.Place(2, 3, core.Fire, 0)

	w.Step()

	if got := kindAt(w, 2, 2); got != core.Smoke {
		t.Fatalf("fire should emit smoke above itself, got %v", got)
	}
	if got := kindAt(w, 2, 3); got != core.Fire {
		t.Fatalf("fire should persist, got %v", got)
	}
}

func TestAcidDissolvesNeighborsButSparesGlass(t *testing.T) {
	w := smallWorld(7, 5, func(p *Params) {
		p.DissolveChance = 1
	})
	w.Place(3, 3, core.Acid, 0)
	w.Place(2, 3, core.Wood, 0)
	w.Place(4, 3, core.Glass, 0)

	w.Step()

	if got := kindAt(w, 2, 3); got != core.Empty {
		t.Fatalf("acid should dissolve wood, got %v", got)
	}
	if got := kindAt(w, 4, 3); got != core.Glass {
		t.Fatalf("glass must resist acid, got %v", got)
	}
	if got := kindAt(w, 3, 3); got != core.Acid {
		t.Fatalf("acid itself should survive, got %v", got)
	}
}

func TestAcidNeverDissolvesAtZeroChance(t *testing.T) {
	w := smallWorld(7, 5, func(p *Params) {
		p.DissolveChance = 0
	})
	w.Place(3, 3, core.Acid, 0)
	w.Place(2, 3, core.Wood, 0)

	for i := 0; i < 5; i++ {
		w.Step()
	}

	if got := kindAt(w, 2, 3); got != core.Wood {
		t.Fatalf("wood must survive inert acid, got %v", got)
	}
}
