package main

import (
	"flag"
	"os"
	"strconv"
)

// ServerConfig holds the live-view server configuration.
type ServerConfig struct {
	Addr     string
	Width    int
	Height   int
	Seed     int64
	TPS      int
	SavePath string
	LogLevel string
}

// configResolver defines how to resolve a single configuration value from
// a CLI flag with an environment-variable fallback.
type configResolver struct {
	flagName    string
	envVarName  string
	defaultVal  string
	description string
	setter      func(*ServerConfig, string)
}

// loadServerConfig loads the server configuration from CLI flags and
// environment variables. Flags win over the environment; the environment
// wins over the defaults.
func loadServerConfig() ServerConfig {
	cfg := ServerConfig{}

	atoi := func(v string, fallback int) int {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
		return fallback
	}

	resolvers := []configResolver{
		{
			flagName:    "addr",
			envVarName:  "OPENBOX_ADDR",
			defaultVal:  ":8080",
			description: "HTTP listen address (e.g. :8080)",
			setter:      func(c *ServerConfig, v string) { c.Addr = v },
		},
		{
			flagName:    "grid-width",
			envVarName:  "OPENBOX_GRID_WIDTH",
			defaultVal:  "160",
			description: "grid width in cells",
			setter:      func(c *ServerConfig, v string) { c.Width = atoi(v, 160) },
		},
		{
			flagName:    "grid-height",
			envVarName:  "OPENBOX_GRID_HEIGHT",
			defaultVal:  "90",
			description: "grid height in cells",
			setter:      func(c *ServerConfig, v string) { c.Height = atoi(v, 90) },
		},
		{
			flagName:    "seed",
			envVarName:  "OPENBOX_SEED",
			defaultVal:  "1337",
			description: "random seed",
			setter: func(c *ServerConfig, v string) {
				if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
					c.Seed = parsed
				} else {
					c.Seed = 1337
				}
			},
		},
		{
			flagName:    "tps",
			envVarName:  "OPENBOX_TPS",
			defaultVal:  "60",
			description: "simulation ticks per second",
			setter:      func(c *ServerConfig, v string) { c.TPS = atoi(v, 60) },
		},
		{
			flagName:    "save",
			envVarName:  "OPENBOX_SAVE_PATH",
			defaultVal:  "sandbox_save.dat",
			description: "path used by the save/load endpoints",
			setter:      func(c *ServerConfig, v string) { c.SavePath = v },
		},
		{
			flagName:    "log-level",
			envVarName:  "OPENBOX_LOG_LEVEL",
			defaultVal:  "info",
			description: "log level (debug, info, warn, error)",
			setter:      func(c *ServerConfig, v string) { c.LogLevel = v },
		},
	}

	values := make([]*string, len(resolvers))
	for i, r := range resolvers {
		def := r.defaultVal
		if env := os.Getenv(r.envVarName); env != "" {
			def = env
		}
		values[i] = flag.String(r.flagName, def, r.description)
	}
	flag.Parse()

	for i, r := range resolvers {
		r.setter(&cfg, *values[i])
	}
	return cfg
}
