package render

import (
	"math"

	"github.com/jakecoffman/cp/v2"

	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
)

// Projector maps between world units and screen cells. One column is one
// unit wide; one row is two units tall, split into half-blocks so the
// effective pixels are square. World origin is bottom-left, Y up; screen
// origin is top-left, rows down.
type Projector struct {
	Cols, Rows int
	WorldH     float64
}

// NewProjector creates a projector for a canvas of the given cell size
func NewProjector(cols, rows int) Projector {
	return Projector{Cols: cols, Rows: rows, WorldH: float64(rows * 2)}
}

// HalfCenter returns the world point at the center of a half-block.
// half counts down from the top of the canvas; cell row = half/2
func (p Projector) HalfCenter(col, half int) (float64, float64) {
	return float64(col) + 0.5, p.WorldH - float64(half) - 0.5
}

// CellCenter returns the world point at the center of a full cell
func (p Projector) CellCenter(col, row int) (float64, float64) {
	return float64(col) + 0.5, p.WorldH - float64(row)*2 - 1
}

// WorldColumn returns the column containing a world x
func (p Projector) WorldColumn(wx float64) int {
	return int(math.Floor(wx))
}

// WorldHalf returns the half-row (from top) containing a world y
func (p Projector) WorldHalf(wy float64) int {
	return int(math.Floor(p.WorldH - wy))
}

// WorldRow returns the screen row containing a world y
func (p Projector) WorldRow(wy float64) int {
	return p.WorldHalf(wy) / 2
}

// ScreenToWorld converts a screen cell to the world point at its center
func (p Projector) ScreenToWorld(col, row int) (float64, float64) {
	return p.CellCenter(col, row)
}

// BoundingRadius covers any orientation of a shape: a rotated square's
// corner reaches sqrt(2) times its half extent
func BoundingRadius(h float64) float64 {
	return h * math.Sqrt2
}

// Contains tests whether a world point lies inside a box's shape
func Contains(b *engine.Box, wx, wy float64) bool {
	return ContainsLocal(b.Kind, b.HalfExtent(), b.LocalPoint(cp.Vector{X: wx, Y: wy}))
}

// ContainsLocal tests a body-frame point against a shape outline of the
// given half extent
func ContainsLocal(kind core.ShapeKind, h float64, local cp.Vector) bool {
	switch kind {
	case core.ShapeCircle:
		return local.X*local.X+local.Y*local.Y <= h*h
	case core.ShapeTriangle:
		return triangleContains(local, h)
	default:
		return local.X >= -h && local.X <= h && local.Y >= -h && local.Y <= h
	}
}

const halfSqrt3 = 0.8660254037844386

// triangleContains tests against the upright equilateral triangle with
// circumradius h, matching the physics polygon
func triangleContains(p cp.Vector, h float64) bool {
	top := cp.Vector{X: 0, Y: h}
	left := cp.Vector{X: -h * halfSqrt3, Y: -h / 2}
	right := cp.Vector{X: h * halfSqrt3, Y: -h / 2}

	d1 := edgeSign(p, top, left)
	d2 := edgeSign(p, left, right)
	d3 := edgeSign(p, right, top)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(p, a, b cp.Vector) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
