package events

import (
	"time"
)

// EventType represents the type of sandbox event
type EventType int

const (
	// EventSpawnRequest asks the world to create a box
	// Trigger: InputHandler (mouse press on empty canvas, future scripted spawns)
	// Consumer: SpawnSystem | Payload: *SpawnRequestPayload
	EventSpawnRequest EventType = iota

	// EventGrabRequest asks the drag system to pick up the box under a point
	// Trigger: InputHandler (mouse press on a box)
	// Consumer: DragSystem | Payload: *PointPayload
	EventGrabRequest

	// EventReleaseRequest drops the currently grabbed box
	// Trigger: InputHandler (mouse release) | Payload: nil
	// Consumer: DragSystem
	EventReleaseRequest

	// EventTiltChange carries a new sticky tilt vector
	// Trigger: InputHandler (arrow keys, tilt centering)
	// Consumer: GravitySystem | Payload: *TiltPayload
	EventTiltChange

	// EventGravityModeChange switches the gravity source
	// Trigger: InputHandler (menu or 'g' cycle)
	// Consumer: GravitySystem | Payload: *GravityModePayload
	EventGravityModeChange

	// EventShakeDetected signals that the tilt reversal gesture fired
	// Trigger: GravitySystem shake detector
	// Consumer: AudioSystem | Payload: nil
	// The reset prompt flag is raised on the context by the detector itself
	EventShakeDetected

	// EventResetConfirmed empties the canvas
	// Trigger: InputHandler (confirm dialog accepted)
	// Consumer: ResetSystem | Payload: nil
	EventResetConfirmed

	// EventConfigReload applies a freshly loaded config file
	// Trigger: config.Watcher
	// Consumer: TuningSystem | Payload: *ConfigReloadPayload
	EventConfigReload

	// EventImpact reports a box collision above the sound threshold
	// Trigger: world collision handler (post-solve)
	// Consumer: AudioSystem | Payload: *ImpactPayload
	// Latency: next tick dispatch
	EventImpact

	// EventBoxSpawned signals a box was created
	// Trigger: SpawnSystem | Payload: *BoxLifecyclePayload
	// Consumer: AudioSystem
	EventBoxSpawned

	// EventBoxGrabbed signals a box was picked up
	// Trigger: DragSystem | Payload: *BoxLifecyclePayload
	// Consumer: AudioSystem
	EventBoxGrabbed

	// EventBoxReleased signals a box was dropped
	// Trigger: DragSystem | Payload: *BoxLifecyclePayload
	// Consumer: AudioSystem
	EventBoxReleased

	// EventWorldReset signals the canvas was emptied
	// Trigger: ResetSystem | Payload: nil
	// Consumer: AudioSystem
	EventWorldReset

	// EventCueRequest asks for a feedback sound directly
	// Trigger: InputHandler (menu ticks, rejected actions)
	// Consumer: AudioSystem | Payload: *CuePayload
	EventCueRequest
)

// GameEvent represents a single sandbox event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
