package events

import (
	"github.com/lixenwraith/boxes/core"
)

// SpawnRequestPayload carries everything the world needs to create a box
type SpawnRequestPayload struct {
	Kind  core.ShapeKind
	Size  core.SizeClass
	Color int // palette index
	X, Y  float64
	Grab  bool // grab the new box immediately (press-and-drag spawn)
}

// PointPayload is a world-space coordinate pair
type PointPayload struct {
	X, Y float64
}

// TiltPayload carries the sticky tilt vector, each axis in [-1, 1]
type TiltPayload struct {
	X, Y float64
}

// GravityModePayload switches the gravity source
type GravityModePayload struct {
	Mode core.GravityMode
}

// ImpactPayload reports a collision impulse magnitude
type ImpactPayload struct {
	Impulse float64
}

// CuePayload names a feedback sound to play
type CuePayload struct {
	Cue core.Cue
}

// BoxLifecyclePayload identifies a box in spawn/grab/release events
type BoxLifecyclePayload struct {
	ID   uint64
	Kind core.ShapeKind
}

// ConfigReloadPayload carries the re-read config. Typed as any to keep this
// package free of the config dependency; the tuning system asserts it.
type ConfigReloadPayload struct {
	Config any
}
