package core

// RuntimeConfig carries the host-resolved parameters the simulation starts
// from: grid dimensions, pacing, and the RNG seed for reproducible boards.
type RuntimeConfig struct {
	GridW          int   // Universe width in cells
	GridH          int   // Universe height in cells
	TickRate       int   // Host updates per second (default 10)
	TicksPerUpdate int   // Engine generations per host update
	Seed           int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:          64,
		GridH:          64,
		TickRate:       10,
		TicksPerUpdate: 1,
		Seed:           0,
	}
}
