package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// Default returns the hardcoded default configuration, used as the last
// fallback if even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:          64,
			Height:         64,
			TicksPerUpdate: 1,
		},
		Display: DisplayConfig{
			AliveChar: "█",
			DeadChar:  " ",
			ShowHUD:   true,
		},
		Simulation: SimulationConfig{
			FPS: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
