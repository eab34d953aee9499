package engine

import (
	"math"
	"time"

	"github.com/jakecoffman/cp/v2"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
)

// Box is a single physics-backed shape on the canvas.
// The body and shape belong to the world's space while the box is live;
// both are nil after the box has been removed.
type Box struct {
	ID        uint64
	Kind      core.ShapeKind
	Size      core.SizeClass
	Color     int // palette index
	SpawnedAt time.Time

	body  *cp.Body
	shape *cp.Shape
}

// newBox builds an unattached body and collision shape for the given kind.
// The caller adds both to the space.
func newBox(id uint64, kind core.ShapeKind, size core.SizeClass, color int, elasticity, friction float64, now time.Time) *Box {
	h := size.HalfExtent()
	mass := massFor(kind, h)

	var body *cp.Body
	var shape *cp.Shape

	switch kind {
	case core.ShapeCircle:
		body = cp.NewBody(mass, cp.MomentForCircle(mass, 0, h, cp.Vector{}))
		shape = cp.NewCircle(body, h, cp.Vector{})

	case core.ShapeTriangle:
		verts := TriangleVerts(h)
		body = cp.NewBody(mass, cp.MomentForPoly(mass, len(verts), verts, cp.Vector{}, 0))
		shape = cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)

	default: // core.ShapeSquare
		side := 2 * h
		body = cp.NewBody(mass, cp.MomentForBox(mass, side, side))
		shape = cp.NewBox(body, side, side, 0)
	}

	box := &Box{
		ID:        id,
		Kind:      kind,
		Size:      size,
		Color:     color,
		SpawnedAt: now,
		body:      body,
		shape:     shape,
	}

	shape.SetElasticity(elasticity)
	shape.SetFriction(friction)
	shape.SetCollisionType(constants.CollisionTypeBox)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, constants.CategoryBox, cp.ALL_CATEGORIES))
	shape.UserData = box
	body.UserData = box

	return box
}

// TriangleVerts returns the counterclockwise vertices of an equilateral
// triangle with the given circumradius, apex up, centered on the centroid
func TriangleVerts(circumradius float64) []cp.Vector {
	r := circumradius
	return []cp.Vector{
		{X: 0, Y: r},
		{X: -r * math.Sqrt(3) / 2, Y: -r / 2},
		{X: r * math.Sqrt(3) / 2, Y: -r / 2},
	}
}

// massFor derives mass from shape area at uniform density,
// normalized so a medium square weighs constants.BoxMass
func massFor(kind core.ShapeKind, halfExtent float64) float64 {
	var area float64
	switch kind {
	case core.ShapeCircle:
		area = math.Pi * halfExtent * halfExtent
	case core.ShapeTriangle:
		area = 3 * math.Sqrt(3) / 4 * halfExtent * halfExtent
	default:
		area = 4 * halfExtent * halfExtent
	}

	ref := core.SizeMedium.HalfExtent()
	density := constants.BoxMass / (4 * ref * ref)
	return area * density
}

// Alive reports whether the box is still attached to a space
func (b *Box) Alive() bool {
	return b != nil && b.body != nil
}

// Position returns the body's center in world units
func (b *Box) Position() cp.Vector {
	return b.body.Position()
}

// SetPosition teleports the body, bypassing the solver
func (b *Box) SetPosition(p cp.Vector) {
	b.body.SetPosition(p)
}

// Velocity returns the body's linear velocity
func (b *Box) Velocity() cp.Vector {
	return b.body.Velocity()
}

// Angle returns the body's rotation in radians
func (b *Box) Angle() float64 {
	return b.body.Angle()
}

// Sleeping reports whether the solver has idled the body
func (b *Box) Sleeping() bool {
	return b.body.IsSleeping()
}

// LocalPoint maps a world-space point into the body's local frame
func (b *Box) LocalPoint(p cp.Vector) cp.Vector {
	return b.body.WorldToLocal(p)
}

// HalfExtent returns the box's characteristic half-size in world units
func (b *Box) HalfExtent() float64 {
	return b.Size.HalfExtent()
}
