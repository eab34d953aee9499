package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/events"
)

// ShakeDetector recognizes the shake gesture as rapid tilt direction
// reversals on the X axis inside a rolling window, with a cooldown so
// one vigorous shake fires once
type ShakeDetector struct {
	lastSign  int
	reversals []time.Time
	firedAt   time.Time
}

// Feed records a tilt sample and reports whether the gesture fired
func (d *ShakeDetector) Feed(x float64, now time.Time) bool {
	sign := 0
	if x > 0.01 {
		sign = 1
	} else if x < -0.01 {
		sign = -1
	}
	if sign == 0 {
		return false
	}

	if d.lastSign != 0 && sign != d.lastSign {
		d.reversals = append(d.reversals, now)
	}
	d.lastSign = sign

	// Slide the window
	cutoff := now.Add(-constants.ShakeWindow)
	keep := 0
	for keep < len(d.reversals) && d.reversals[keep].Before(cutoff) {
		keep++
	}
	d.reversals = d.reversals[keep:]

	if len(d.reversals) >= constants.ShakeReversals {
		if !d.firedAt.IsZero() && now.Sub(d.firedAt) < constants.ShakeCooldown {
			return false
		}
		d.firedAt = now
		d.reversals = d.reversals[:0]
		return true
	}
	return false
}

// GravitySystem forwards tilt into space gravity and watches the tilt
// stream for the shake gesture. A recognized shake only raises the
// reset prompt, it never clears the canvas by itself
type GravitySystem struct {
	ctx      *engine.Context
	detector ShakeDetector
}

// NewGravitySystem creates a new gravity system
func NewGravitySystem(ctx *engine.Context) engine.System {
	return &GravitySystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *GravitySystem) Priority() int {
	return constants.PriorityGravity
}

// EventTypes returns the event types GravitySystem handles
func (s *GravitySystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventTiltChange,
		events.EventGravityModeChange,
	}
}

// HandleEvent applies tilt and mode changes to the world
func (s *GravitySystem) HandleEvent(world *engine.World, event events.GameEvent) {
	switch event.Type {
	case events.EventTiltChange:
		payload, ok := event.Payload.(*events.TiltPayload)
		if !ok {
			return
		}
		world.SetTilt(payload.X, payload.Y)

		if s.detector.Feed(payload.X, event.Timestamp) {
			s.promptReset()
		}

	case events.EventGravityModeChange:
		payload, ok := event.Payload.(*events.GravityModePayload)
		if !ok {
			return
		}
		world.SetGravityMode(payload.Mode)
		s.ctx.SetStatus("Gravity: " + payload.Mode.String())
		s.ctx.Log.Debug("gravity mode changed", zap.Stringer("mode", payload.Mode))
	}
}

// promptReset raises the confirm dialog and announces the gesture
func (s *GravitySystem) promptReset() {
	if s.ctx.Mode() == core.ModeConfirm {
		return
	}
	s.ctx.SetMode(core.ModeConfirm)
	s.ctx.Queue.Emit(events.EventShakeDetected, nil)
	s.ctx.Log.Debug("shake detected")
}

// Update implements System (no tick-based logic)
func (s *GravitySystem) Update(world *engine.World, dt time.Duration) {}
