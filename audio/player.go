package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)

	// masterGain keeps headroom when several cues overlap
	masterGain = 0.4

	// minGain is the floor for scaled playback; quieter than this is inaudible
	minGain = 0.05
)

// Player renders feedback cues through the speaker. All cue buffers are
// synthesized once at startup; playback is a cheap streamer handoff.
//
// A nil Player is valid and silently drops every call, so callers never
// need to branch on whether an audio device exists.
type Player struct {
	mu       sync.Mutex
	lastPlay [core.CueCount]time.Time
	cues     [core.CueCount]floatBuffer
	log      *zap.Logger
}

// NewPlayer initializes the speaker and pre-renders all cues.
// Returns nil when no audio device is available.
func NewPlayer(log *zap.Logger) *Player {
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferLength)); err != nil {
		log.Warn("audio device unavailable, sound disabled", zap.Error(err))
		return nil
	}

	p := &Player{log: log}
	for cue := core.Cue(0); cue < core.CueCount; cue++ {
		p.cues[cue] = generateCue(cue)
	}
	log.Debug("audio player ready",
		zap.Int("sample_rate", int(sampleRate)),
		zap.Duration("buffer", constants.AudioBufferLength))
	return p
}

// Play plays a cue at full volume
func (p *Player) Play(cue core.Cue) {
	p.PlayScaled(cue, 1.0)
}

// PlayScaled plays a cue with a volume factor in (0, 1].
// Repeats of the same cue within MinCueGap are dropped.
func (p *Player) PlayScaled(cue core.Cue, gain float64) {
	if p == nil || cue >= core.CueCount {
		return
	}
	buf := p.cues[cue]
	if len(buf) == 0 {
		return
	}

	p.mu.Lock()
	now := time.Now()
	if now.Sub(p.lastPlay[cue]) < constants.MinCueGap {
		p.mu.Unlock()
		return
	}
	p.lastPlay[cue] = now
	p.mu.Unlock()

	if gain > 1.0 {
		gain = 1.0
	} else if gain < minGain {
		gain = minGain
	}

	speaker.Play(&bufferStreamer{buf: buf, gain: gain * masterGain})
}

// Close shuts down the speaker
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Close()
}

// bufferStreamer streams a pre-rendered mono buffer to both channels,
// scaled by a fixed gain. Exhausts after one pass.
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	pos  int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos] * s.gain
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error {
	return nil
}
