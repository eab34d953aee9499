package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/events"
)

// ResetSystem empties the canvas once the confirm dialog accepts.
// The shake gesture and the keyboard shortcut only raise the prompt;
// this is the single place boxes are cleared in bulk
type ResetSystem struct {
	ctx *engine.Context
}

// NewResetSystem creates a new reset system
func NewResetSystem(ctx *engine.Context) engine.System {
	return &ResetSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *ResetSystem) Priority() int {
	return constants.PriorityReset
}

// EventTypes returns the event types ResetSystem handles
func (s *ResetSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventResetConfirmed,
	}
}

// HandleEvent clears the world
func (s *ResetSystem) HandleEvent(world *engine.World, event events.GameEvent) {
	count := world.Count()
	world.Reset()

	s.ctx.Queue.Emit(events.EventWorldReset, nil)
	s.ctx.SetStatus("Canvas cleared")
	s.ctx.Log.Info("canvas reset", zap.Int("boxes", count))
}

// Update implements System (no tick-based logic)
func (s *ResetSystem) Update(world *engine.World, dt time.Duration) {}
