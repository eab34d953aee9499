package constants

import "time"

// Tilt Input
const (
	// TiltStep is the tilt delta added per arrow key press
	TiltStep = 0.25

	// TiltMax clamps each tilt axis, mirroring a device held at full tilt
	TiltMax = 1.0
)

// Shake Gesture Detection
const (
	// ShakeWindow bounds the time span of the reversal sequence
	ShakeWindow = 900 * time.Millisecond

	// ShakeReversals is how many horizontal tilt direction flips within
	// ShakeWindow count as a shake
	ShakeReversals = 4

	// ShakeCooldown suppresses re-detection right after a shake fired
	ShakeCooldown = 1500 * time.Millisecond
)
