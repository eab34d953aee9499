package systems

import (
	"time"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/events"
)

// DragSystem owns the held-box state: grab requests pin a box, release
// drops it, and every tick in between drives the box toward the pointer.
// There is no other stateful interaction in the sandbox
type DragSystem struct {
	ctx *engine.Context
}

// NewDragSystem creates a new drag system
func NewDragSystem(ctx *engine.Context) engine.System {
	return &DragSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *DragSystem) Priority() int {
	return constants.PriorityDrag
}

// EventTypes returns the event types DragSystem handles
func (s *DragSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventGrabRequest,
		events.EventReleaseRequest,
	}
}

// HandleEvent processes grab and release requests
func (s *DragSystem) HandleEvent(world *engine.World, event events.GameEvent) {
	switch event.Type {
	case events.EventGrabRequest:
		payload, ok := event.Payload.(*events.PointPayload)
		if !ok {
			return
		}
		// The box may have drifted since the input hit test; a miss
		// here is a harmless no-op
		if box := world.Grab(payload.X, payload.Y); box != nil {
			s.ctx.Queue.Emit(events.EventBoxGrabbed, &events.BoxLifecyclePayload{ID: box.ID, Kind: box.Kind})
		}

	case events.EventReleaseRequest:
		if box := world.Release(); box != nil {
			s.ctx.Queue.Emit(events.EventBoxReleased, &events.BoxLifecyclePayload{ID: box.ID, Kind: box.Kind})
		}
	}
}

// Update drives the held box toward the pointer. The velocity is set
// fresh each tick so the box chases the pointer instead of teleporting,
// and a release keeps the last chase velocity as throw momentum
func (s *DragSystem) Update(world *engine.World, dt time.Duration) {
	if world.Grabbed() == nil {
		return
	}

	// Lost-release guard: a dropped mouse-up event must not leave a
	// box glued to a stale pointer
	if !s.ctx.PointerDown.Load() {
		if box := world.Release(); box != nil {
			s.ctx.Queue.Emit(events.EventBoxReleased, &events.BoxLifecyclePayload{ID: box.ID, Kind: box.Kind})
		}
		return
	}

	px, py := s.ctx.Pointer()
	world.DragStep(px, py)
}
