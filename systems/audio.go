package systems

import (
	"time"

	"github.com/lixenwraith/boxes/audio"
	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/events"
)

// AudioSystem maps lifecycle events to feedback cues.
// Decouples the simulation systems from direct speaker access
type AudioSystem struct {
	ctx    *engine.Context
	player *audio.Player // nil-safe: all methods no-op without a device
}

// NewAudioSystem creates an audio system with the given player.
// player may be nil if audio is disabled
func NewAudioSystem(ctx *engine.Context, player *audio.Player) engine.System {
	return &AudioSystem{
		ctx:    ctx,
		player: player,
	}
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return constants.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventBoxSpawned,
		events.EventBoxGrabbed,
		events.EventBoxReleased,
		events.EventImpact,
		events.EventShakeDetected,
		events.EventWorldReset,
		events.EventCueRequest,
	}
}

// HandleEvent plays the cue for the event, honoring the mute flag
func (s *AudioSystem) HandleEvent(world *engine.World, event events.GameEvent) {
	if s.ctx.IsMuted.Load() {
		return
	}

	switch event.Type {
	case events.EventBoxSpawned:
		s.player.Play(core.CueSpawn)
	case events.EventBoxGrabbed:
		s.player.Play(core.CueGrab)
	case events.EventBoxReleased:
		s.player.Play(core.CueRelease)
	case events.EventShakeDetected:
		s.player.Play(core.CueShake)
	case events.EventWorldReset:
		s.player.Play(core.CueReset)

	case events.EventImpact:
		payload, ok := event.Payload.(*events.ImpactPayload)
		if !ok {
			return
		}
		s.player.PlayScaled(core.CueImpact, impactGain(payload.Impulse))

	case events.EventCueRequest:
		payload, ok := event.Payload.(*events.CuePayload)
		if !ok {
			return
		}
		s.player.Play(payload.Cue)
	}
}

// impactGain maps a collision impulse onto loudness in [0.2, 1].
// Impulses below the sound threshold never reach this system
func impactGain(impulse float64) float64 {
	span := constants.ImpactSoundFullImpulse - constants.ImpactSoundImpulse
	g := (impulse - constants.ImpactSoundImpulse) / span
	if g < 0 {
		g = 0
	}
	if g > 1 {
		g = 1
	}
	return 0.2 + 0.8*g
}

// Update implements System (no tick-based logic)
func (s *AudioSystem) Update(world *engine.World, dt time.Duration) {}
