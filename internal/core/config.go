package core

// RuntimeConfig contains configuration passed to hosts at initialization.
// The simulation itself only reads Seed; TickRate drives the host clock.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal hosts only)
	ScreenH  int   // Terminal height in characters (terminal hosts only)
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
