package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferLength is the speaker buffer duration; short keeps cue
	// latency under one frame of perceptible lag
	AudioBufferLength = 50 * time.Millisecond

	// MinCueGap is the minimum gap between two plays of the same cue,
	// throttling impact bursts during pile-ups
	MinCueGap = 40 * time.Millisecond
)

// Spawn Cue Timing
const (
	SpawnCueDuration = 70 * time.Millisecond
	SpawnCueAttack   = 5 * time.Millisecond
	SpawnCueRelease  = 40 * time.Millisecond
)

// Grab / Release Cue Timing
const (
	GrabCueDuration  = 30 * time.Millisecond
	GrabCueAttack    = 2 * time.Millisecond
	GrabCueRelease   = 15 * time.Millisecond
	ReleaseCueFactor = 0.75 // release pitch relative to grab
)

// Impact Cue Timing
const (
	ImpactCueDuration = 90 * time.Millisecond
	ImpactCueAttack   = 2 * time.Millisecond
	ImpactCueRelease  = 70 * time.Millisecond
)

// Shake / Reset Cue Timing
const (
	ShakeCueDuration = 220 * time.Millisecond
	ShakeCueAttack   = 30 * time.Millisecond
	ShakeCueRelease  = 120 * time.Millisecond
	ResetCueDuration = 350 * time.Millisecond
	ResetCueAttack   = 10 * time.Millisecond
	ResetCueRelease  = 250 * time.Millisecond
)

// Menu / Error Cue Timing
const (
	MenuCueDuration  = 25 * time.Millisecond
	MenuCueAttack    = 2 * time.Millisecond
	MenuCueRelease   = 12 * time.Millisecond
	ErrorCueDuration = 80 * time.Millisecond
	ErrorCueAttack   = 5 * time.Millisecond
	ErrorCueRelease  = 20 * time.Millisecond
)
