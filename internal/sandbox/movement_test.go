package sandbox

import (
	"testing"

	"openbox/internal/core"
)

// kindAt reads the kind at (x, y) through the public grid accessor.
func kindAt(w *World, x, y int) core.Kind {
	return w.Grid().Get(x, y).Kind
}

// countKind tallies how many cells hold the given kind.
func countKind(w *World, k core.Kind) int {
	n := 0
	for i := range w.Grid().Cells() {
		if w.Grid().Cells()[i].Kind == k {
			n++
		}
	}
	return n
}

func TestSandFallsOneRowPerTick(t *testing.T) {
	w := New(5, 6)
	w.Place(2, 1, core.Sand, 0)

	for step, wantY := range []int{2, 3, 4} {
		w.Step()
		if got := kindAt(w, 2, wantY); got != core.Sand {
			t.Fatalf("after step %d sand should be at (2,%d), got %v there", step+1, wantY, got)
		}
		if n := countKind(w, core.Sand); n != 1 {
			t.Fatalf("after step %d expected exactly 1 sand cell, got %d", step+1, n)
		}
	}

	// Resting on the floor with walled-off diagonals, nothing changes.
	w.Step()
	if kindAt(w, 2, 4) != core.Sand {
		t.Fatal("settled sand should stay on the floor")
	}
	if n := countKind(w, core.Sand); n != 1 {
		t.Fatalf("expected exactly 1 sand cell at rest, got %d", n)
	}
}

func TestImmovableKindStaysPut(t *testing.T) {
	w := New(5, 6)
	w.Place(2, 2, core.Wood, 0)

	for i := 0; i < 3; i++ {
		w.Step()
	}
	if kindAt(w, 2, 2) != core.Wood {
		t.Fatal("wood has no gravity and should not move")
	}
}

func TestBlockedWaterSpreadsSideways(t *testing.T) {
	w := New(7, 5)
	w.Place(3, 3, core.Water, 0)

	w.Step()

	if kindAt(w, 3, 3) != core.Empty {
		t.Fatal("blocked water should vacate its cell by flowing sideways")
	}
	left, right := kindAt(w, 2, 3), kindAt(w, 4, 3)
	if (left == core.Water) == (right == core.Water) {
		t.Fatalf("water should occupy exactly one side, left=%v right=%v", left, right)
	}
	if n := countKind(w, core.Water); n != 1 {
		t.Fatalf("expected exactly 1 water cell, got %d", n)
	}
}

func TestBlockedSandTumblesDiagonally(t *testing.T) {
	w := New(7, 5)
	w.Place(3, 3, core.Sand, 0)
	w.Place(3, 2, core.Sand, 0)

	w.Step()

	if kindAt(w, 3, 3) != core.Sand {
		t.Fatal("bottom sand should stay on the floor")
	}
	if kindAt(w, 3, 2) != core.Empty {
		t.Fatal("top sand should tumble off the pile")
	}
	left, right := kindAt(w, 2, 3), kindAt(w, 4, 3)
	if (left == core.Sand) == (right == core.Sand) {
		t.Fatalf("tumbled sand should land on exactly one diagonal, left=%v right=%v", left, right)
	}
}

func TestMovedParticleVelocityIsZeroed(t *testing.T) {
	w := New(5, 6)
	w.Place(2, 1, core.Sand, 0)
	c := w.Grid().At(2, 1)
	c.VelX = 1.5
	c.VelY = -2.0

	w.Step()

	moved := w.Grid().Get(2, 2)
	if moved.Kind != core.Sand {
		t.Fatalf("sand should have fallen to (2,2), got %v", moved.Kind)
	}
	if moved.VelX != 0 || moved.VelY != 0 {
		t.Fatalf("moved particle velocity should be zeroed, got (%f,%f)", moved.VelX, moved.VelY)
	}
}

func TestWallsNeverMove(t *testing.T) {
	w := New(5, 5)
	before := countKind(w, core.Wall)
	for i := 0; i < 5; i++ {
		w.Step()
	}
	if got := countKind(w, core.Wall); got != before {
		t.Fatalf("wall count changed from %d to %d", before, got)
	}
	for x := 0; x < 5; x++ {
		if kindAt(w, x, 0) != core.Wall || kindAt(w, x, 4) != core.Wall {
			t.Fatalf("boundary wall missing at column %d", x)
		}
	}
}
