// Package core holds the input abstractions shared by the mini-games and
// the terminal front end.
package core

// RuntimeConfig contains configuration passed to the UI at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Mini-game ticks per second
	Seed     int64 // RNG seed for the pixel hunts
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
	}
}
