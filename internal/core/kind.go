package core

import "strings"

// Kind identifies the material occupying a cell. The ordinal values are
// part of the save format and must not be reordered.
type Kind uint8

const (
	Empty Kind = iota
	Sand
	Water
	Wall
	Fire
	Smoke
	Steam
	Lava
	Ice
	Oil
	Acid
	Wood
	Plant
	Salt
	Glass
	Metal

	// KindCount is the number of defined kinds, for dense per-kind tables.
	KindCount = iota
)

var kindNames = [KindCount]string{
	Empty: "empty",
	Sand:  "sand",
	Water: "water",
	Wall:  "wall",
	Fire:  "fire",
	Smoke: "smoke",
	Steam: "steam",
	Lava:  "lava",
	Ice:   "ice",
	Oil:   "oil",
	Acid:  "acid",
	Wood:  "wood",
	Plant: "plant",
	Salt:  "salt",
	Glass: "glass",
	Metal: "metal",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool { return int(k) < KindCount }

// ParseKind resolves a kind by its lowercase name. Unknown names map to
// Empty with ok=false.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return Empty, false
}
