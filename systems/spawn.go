package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/events"
)

// SpawnSystem turns spawn requests into live boxes
type SpawnSystem struct {
	ctx *engine.Context
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(ctx *engine.Context) engine.System {
	return &SpawnSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// EventTypes returns the event types SpawnSystem handles
func (s *SpawnSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSpawnRequest,
	}
}

// HandleEvent creates the requested box and optionally pins the grab to
// it, the press-and-drag spawn path
func (s *SpawnSystem) HandleEvent(world *engine.World, event events.GameEvent) {
	payload, ok := event.Payload.(*events.SpawnRequestPayload)
	if !ok {
		return
	}

	box := world.Spawn(payload.Kind, payload.Size, payload.Color, payload.X, payload.Y)
	if box == nil {
		return
	}

	if payload.Grab {
		world.GrabBox(box)
	}

	s.ctx.Queue.Emit(events.EventBoxSpawned, &events.BoxLifecyclePayload{ID: box.ID, Kind: box.Kind})
	s.ctx.Log.Debug("box spawned",
		zap.Uint64("id", box.ID),
		zap.Stringer("kind", box.Kind),
		zap.Stringer("size", box.Size),
		zap.Float64("x", payload.X),
		zap.Float64("y", payload.Y),
	)
}

// Update implements System (no tick-based logic)
func (s *SpawnSystem) Update(world *engine.World, dt time.Duration) {}
