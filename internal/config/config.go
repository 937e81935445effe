// Package config provides YAML-based configuration loading for the
// simulator: grid dimensions, pacing, and display characters.
package config

// Config contains all user-tunable settings.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Display    DisplayConfig    `yaml:"display"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// GridConfig defines the universe dimensions and the update multiplier.
// A zero width or height means "fit the terminal".
type GridConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	TicksPerUpdate int `yaml:"ticks_per_update"`
}

// DisplayConfig defines how cells are drawn.
type DisplayConfig struct {
	AliveChar string `yaml:"alive_char"`
	DeadChar  string `yaml:"dead_char"`
	ShowHUD   bool   `yaml:"show_hud"`
}

// SimulationConfig defines wall-clock pacing.
type SimulationConfig struct {
	FPS int `yaml:"fps"` // Host updates per second
}

// AliveRune returns the first rune of AliveChar, defaulting to a full block.
func (d DisplayConfig) AliveRune() rune {
	for _, r := range d.AliveChar {
		return r
	}
	return '█'
}

// DeadRune returns the first rune of DeadChar, defaulting to a space.
func (d DisplayConfig) DeadRune() rune {
	for _, r := range d.DeadChar {
		return r
	}
	return ' '
}
