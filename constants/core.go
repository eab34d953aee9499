package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SimulationInterval is the fixed physics step interval (clock tick)
	SimulationInterval = 10 * time.Millisecond

	// MinFrameRate and MaxFrameRate bound the configurable frame rate
	MinFrameRate = 15
	MaxFrameRate = 120
)

// Event Queue Sizing
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// StatusMessageDuration is how long a transient HUD message stays visible
const StatusMessageDuration = 2 * time.Second
