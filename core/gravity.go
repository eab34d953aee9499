package core

// GravityMode selects the gravity source for the physics space
type GravityMode uint8

const (
	// GravityTilt passes the tilt vector through to the space, scaled by a constant
	GravityTilt GravityMode = iota

	// GravityDown applies a fixed downward vector regardless of tilt
	GravityDown

	// GravityZero disables gravity entirely
	GravityZero

	GravityModeCount
)

func (m GravityMode) String() string {
	switch m {
	case GravityTilt:
		return "Tilt"
	case GravityDown:
		return "Down"
	case GravityZero:
		return "Zero-G"
	}
	return "Unknown"
}

func (m GravityMode) Next() GravityMode {
	return (m + 1) % GravityModeCount
}

func (m GravityMode) Prev() GravityMode {
	return (m + GravityModeCount - 1) % GravityModeCount
}
