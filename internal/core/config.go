package core

// RuntimeConfig contains host settings passed to demos at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Logical screen width in pixels
	ScreenH  int   // Logical screen height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic particle bursts
	ShowFPS  bool  // Draw the host's FPS overlay
}

// TickSeconds returns the fixed elapsed time of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// Frame is everything a demo receives for one simulation tick.
type Frame struct {
	Elapsed float64    // Seconds since the previous tick
	Crank   float64    // Crank rotation since the previous tick, in degrees
	Input   InputFrame // Discrete actions triggered this tick
}
