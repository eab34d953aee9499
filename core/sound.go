package core

// Cue represents different feedback sound effects
type Cue uint8

const (
	CueSpawn   Cue = iota // Box created
	CueGrab               // Box picked up
	CueRelease            // Box dropped
	CueImpact             // Body collision, volume scaled by impulse
	CueShake              // Shake gesture recognized
	CueReset              // Canvas cleared
	CueMenu               // Menu navigation tick
	CueError              // Rejected action buzz
	CueCount
)
