package core

// RuntimeConfig contains settings the platform passes to the duel when a
// session starts. Gameplay tuning lives in the config package; this only
// describes the host terminal and loop.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Normalize fills zero or negative fields with defaults.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}
