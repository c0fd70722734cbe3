package sandbox

import "openbox/internal/core"

// diffuseHeat blends the cell's temperature toward the mean of itself and
// its valid 8-neighbors, then relaxes it linearly toward ambient. The
// relaxation step is unclamped on purpose: a cell just off ambient can
// oscillate around it by one cooling step.
func (w *World) diffuseHeat(x, y int) {
	c := w.grid.At(x, y)
	if c == nil {
		return
	}

	sum := c.Temperature
	count := 1
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := w.grid.At(x+dx, y+dy)
			if n == nil {
				continue
			}
			sum += n.Temperature
			count++
		}
	}

	mean := sum / float64(count)
	c.Temperature += (mean - c.Temperature) * w.cfg.Params.TemperatureSpread

	if c.Temperature > core.AmbientTemperature {
		c.Temperature -= w.cfg.Params.CoolingRate
	} else if c.Temperature < core.AmbientTemperature {
		c.Temperature += w.cfg.Params.CoolingRate
	}
}
