package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cell simulation must implement for the
// front ends in this repository.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// FillRGBA writes the current display colors into buf as packed RGBA,
	// one cell per four bytes in row-major order.
	FillRGBA(buf []byte)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
