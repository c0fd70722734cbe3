package sandbox

import (
	"testing"

	"openbox/internal/core"
)

func TestCatalogIsComplete(t *testing.T) {
	if err := validateCatalog(); err != nil {
		t.Fatalf("catalog validation failed: %v", err)
	}
	for k := core.Kind(1); k.Valid(); k++ {
		p := PropertiesOf(k)
		if p.Mass <= 0 {
			t.Fatalf("%s has no mass", k)
		}
		if p.Color.A == 0 {
			t.Fatalf("%s is fully transparent", k)
		}
	}
}

func TestPropertiesOfInvalidKindIsNeutral(t *testing.T) {
	p := PropertiesOf(core.Kind(200))
	if p.Movable || p.Flammable || p.Mass != 0 {
		t.Fatalf("invalid kinds should map to the neutral entry, got %+v", p)
	}
}

func TestFlammabilityAssignments(t *testing.T) {
	for _, k := range []core.Kind{core.Oil, core.Wood, core.Plant} {
		if !PropertiesOf(k).Flammable {
			t.Fatalf("%s should be flammable", k)
		}
	}
	for _, k := range []core.Kind{core.Water, core.Sand, core.Wall, core.Metal, core.Fire} {
		if PropertiesOf(k).Flammable {
			t.Fatalf("%s should not be flammable", k)
		}
	}
}

func TestTransientKindsHaveFiniteLifetimes(t *testing.T) {
	for _, k := range []core.Kind{core.Fire, core.Smoke, core.Steam} {
		if PropertiesOf(k).DefaultLifetime <= 0 {
			t.Fatalf("%s should expire on its own", k)
		}
	}
	for _, k := range []core.Kind{core.Sand, core.Water, core.Wall} {
		if PropertiesOf(k).DefaultLifetime != -1 {
			t.Fatalf("%s should be permanent", k)
		}
	}
}
