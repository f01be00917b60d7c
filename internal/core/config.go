package core

// RuntimeConfig contains configuration passed to demos at initialization.
type RuntimeConfig struct {
	ScreenW  int       // Viewport width in pixels
	ScreenH  int       // Viewport height in pixels
	TickRate int       // Frames per second; 0 means the demo default
	Speed    int       // Distance per frame; 0 means the demo default
	Start    Point     // Initial entity position, relative to the viewport center
	Sprite   Rect      // Region of the texture drawn for the entity
	Facing   Direction // Initial facing direction
}

// DefaultConfig returns the stock 800x600 viewport with the first atlas frame.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 0,
		Speed:    0,
		Start:    Point{},
		Sprite:   NewRect(0, 0, 26, 36),
		Facing:   DirRight,
	}
}

// DemoState represents the current progress of a demo.
type DemoState struct {
	Tick   uint64 // Frames stepped since Reset
	Moving bool   // Whether velocity is non-zero
}

// StepResult is returned by Demo.Step() after each frame.
type StepResult struct {
	State DemoState
}
