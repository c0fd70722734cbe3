package sandbox

import "strconv"

// Params holds the tunable probabilities and thresholds for the sandbox
// rules. Chances are per tick and per affected neighbor.
type Params struct {
	IgniteChance   float64
	SmokeChance    float64
	DissolveChance float64

	TemperatureSpread float64
	CoolingRate       float64

	GlassTemperature        float64
	LavaSolidifyTemperature float64
	FreezeTemperature       float64
}

// Config controls the sandbox dimensions and rule parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration: a 160x90 grid (a
// 1280x720 display divided by an 8px cell) with the stock rule constants.
func DefaultConfig() Config {
	return Config{
		Width:  160,
		Height: 90,
		Seed:   1337,
		Params: Params{
			IgniteChance:            0.10,
			SmokeChance:             0.05,
			DissolveChance:          0.20,
			TemperatureSpread:       0.2,
			CoolingRate:             0.05,
			GlassTemperature:        1700,
			LavaSolidifyTemperature: 800,
			FreezeTemperature:       0,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["ignite_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.IgniteChance = parsed
		}
	}
	if v, ok := cfg["smoke_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SmokeChance = parsed
		}
	}
	if v, ok := cfg["dissolve_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DissolveChance = parsed
		}
	}
	if v, ok := cfg["temperature_spread"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.TemperatureSpread = parsed
		}
	}
	if v, ok := cfg["cooling_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.CoolingRate = parsed
		}
	}
	return c
}
