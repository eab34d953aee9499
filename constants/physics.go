package constants

// Physics Tuning Defaults
// All of these are overridable through the config file; the values here are
// the validated fallbacks.
const (
	// DefaultGravityScale converts the unit tilt vector into world
	// acceleration. Tilt magnitude is clamped to 1, so this is also the
	// acceleration under full tilt (world units per second squared).
	DefaultGravityScale = 60.0

	// DefaultDragGain is the velocity gain toward the pointer while a box
	// is grabbed: v = (pointer - pos) * gain
	DefaultDragGain = 10.0

	// DefaultElasticity is the restitution applied to box and wall shapes
	DefaultElasticity = 0.5

	// DefaultFriction is the friction coefficient for box and wall shapes
	DefaultFriction = 0.7

	// DefaultMaxBoxes caps the body count; spawning past it culls the oldest
	DefaultMaxBoxes = 256

	// DefaultSleepThreshold is the idle time before bodies sleep (seconds)
	DefaultSleepThreshold = 0.5
)

// Space Behavior
const (
	// SpaceIterations is the solver iteration count per step
	SpaceIterations = 10

	// WallRadius is the collision radius of the canvas edge segments
	WallRadius = 0.5

	// GrabSlop is the query distance around the pointer that still counts
	// as touching a box (world units)
	GrabSlop = 1.5

	// CullMargin is how far outside the canvas a body must wander before
	// the cull system removes it (world units)
	CullMargin = 30.0

	// BoxMass is the uniform mass of every spawned box. The toy never
	// varies density; size only changes the moment of inertia.
	BoxMass = 1.0

	// ImpactSoundImpulse is the minimum collision impulse that triggers an
	// impact cue
	ImpactSoundImpulse = 18.0

	// ImpactSoundFullImpulse is the impulse mapped to full cue volume
	ImpactSoundFullImpulse = 120.0
)

// Collision categories for shape filters
const (
	CategoryBox  = 1 << 0
	CategoryWall = 1 << 1
)

// CollisionTypeBox tags box shapes for the impact sound handler
const CollisionTypeBox = 1
