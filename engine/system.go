package engine

import "time"

// System is implemented by every simulation pass
type System interface {
	// Update runs one tick worth of work. Called with the world
	// update mutex held, before the physics step
	Update(world *World, dt time.Duration)

	// Priority orders systems within a tick. Lower values run first
	Priority() int
}
