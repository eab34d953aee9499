package core

// ShapeKind selects the physics shape attached to a spawned box
type ShapeKind uint8

const (
	ShapeSquare ShapeKind = iota
	ShapeCircle
	ShapeTriangle
	ShapeKindCount
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSquare:
		return "Square"
	case ShapeCircle:
		return "Circle"
	case ShapeTriangle:
		return "Triangle"
	}
	return "Unknown"
}

// Next cycles forward through the shape kinds
func (k ShapeKind) Next() ShapeKind {
	return (k + 1) % ShapeKindCount
}

// Prev cycles backward through the shape kinds
func (k ShapeKind) Prev() ShapeKind {
	return (k + ShapeKindCount - 1) % ShapeKindCount
}

// SizeClass selects the half-extent preset of a spawned box
type SizeClass uint8

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
	SizeClassCount
)

func (s SizeClass) String() string {
	switch s {
	case SizeSmall:
		return "Small"
	case SizeMedium:
		return "Medium"
	case SizeLarge:
		return "Large"
	}
	return "Unknown"
}

// HalfExtent returns the world-unit half extent for the size class.
// Squares use it as half the side, circles as the radius, triangles
// as the circumradius.
func (s SizeClass) HalfExtent() float64 {
	switch s {
	case SizeSmall:
		return 1.5
	case SizeMedium:
		return 2.5
	case SizeLarge:
		return 4.0
	}
	return 2.5
}

func (s SizeClass) Next() SizeClass {
	return (s + 1) % SizeClassCount
}

func (s SizeClass) Prev() SizeClass {
	return (s + SizeClassCount - 1) % SizeClassCount
}
