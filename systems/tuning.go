package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/boxes/config"
	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/events"
)

// TuningSystem applies re-read config files to the running world.
// The watcher validates and parses off-tick; this system only swaps
// the already-vetted values in
type TuningSystem struct {
	ctx *engine.Context
}

// NewTuningSystem creates a new tuning system
func NewTuningSystem(ctx *engine.Context) engine.System {
	return &TuningSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *TuningSystem) Priority() int {
	return constants.PriorityTuning
}

// EventTypes returns the event types TuningSystem handles
func (s *TuningSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventConfigReload,
	}
}

// HandleEvent swaps in the reloaded parameters
func (s *TuningSystem) HandleEvent(world *engine.World, event events.GameEvent) {
	payload, ok := event.Payload.(*events.ConfigReloadPayload)
	if !ok {
		return
	}
	cfg, ok := payload.Config.(*config.Config)
	if !ok {
		return
	}

	world.ApplyTuning(cfg.Tuning())
	s.ctx.SetPalette(cfg.PaletteColors())

	s.ctx.SetStatus("Config reloaded")
	s.ctx.Log.Info("config applied",
		zap.Float64("gravity_scale", cfg.Physics.GravityScale),
		zap.Float64("drag_gain", cfg.Physics.DragGain),
		zap.Int("max_boxes", cfg.Physics.MaxBoxes),
		zap.Int("palette", len(cfg.Palette)),
	)
}

// Update implements System (no tick-based logic)
func (s *TuningSystem) Update(world *engine.World, dt time.Duration) {}
