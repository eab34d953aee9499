package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/engine"
)

// CullSystem removes boxes stranded outside the canvas. Walls normally
// keep everything inside, but a resize can shrink the canvas around a
// box and a hard drag can tunnel one through a corner.
// It runs last in the tick so other systems see the box's final state
type CullSystem struct {
	ctx *engine.Context

	strays []*engine.Box // scratch, reused across ticks
}

// NewCullSystem creates a new cull system
func NewCullSystem(ctx *engine.Context) engine.System {
	return &CullSystem{ctx: ctx}
}

// Priority returns the system's priority (runs after the interaction systems)
func (s *CullSystem) Priority() int {
	return constants.PriorityCull
}

// Update collects boxes beyond the margin and removes them.
// Collect first: removal reorders the iteration base
func (s *CullSystem) Update(world *engine.World, dt time.Duration) {
	margin := constants.CullMargin
	s.strays = s.strays[:0]

	world.EachBox(func(b *engine.Box) {
		pos := b.Position()
		if pos.X < -margin || pos.X > world.Width()+margin ||
			pos.Y < -margin || pos.Y > world.Height()+margin {
			s.strays = append(s.strays, b)
		}
	})

	for _, b := range s.strays {
		s.ctx.Log.Debug("culled stray box",
			zap.Uint64("id", b.ID),
			zap.Float64("x", b.Position().X),
			zap.Float64("y", b.Position().Y),
		)
		world.Remove(b)
	}
}
