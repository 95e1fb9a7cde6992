package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The host uses this to size the raster and to seed the simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host (default 60)
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

// Snapshot is the read-only view of a session that the host displays
// as HUD text each frame.
type Snapshot struct {
	Mode      string  // Current mode name
	Character string  // Selected character ID
	Score     int     // Current score
	Hearts    int     // Current hearts, 0..max
	MaxHearts int     // Heart capacity
	Speed     float64 // Current world scroll speed
	Frame     int     // Frames simulated this session
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	Snapshot Snapshot

	// Continue is false once the game has left its playing mode; the host
	// must stop requesting frames until a new session starts.
	Continue bool
}
