package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/events"
)

func newTestWorld() *World {
	return NewWorld(events.NewEventQueue(), DefaultTuning(), 80, 48)
}

// TestWorldSpawn verifies spawn placement and bookkeeping
func TestWorldSpawn(t *testing.T) {
	w := newTestWorld()

	box := w.Spawn(core.ShapeSquare, core.SizeMedium, 0, 40, 24)
	if box == nil {
		t.Fatal("Spawn returned nil")
	}
	if w.Count() != 1 {
		t.Errorf("Expected 1 box, got %d", w.Count())
	}

	pos := box.Position()
	if pos.X != 40 || pos.Y != 24 {
		t.Errorf("Expected position (40, 24), got (%v, %v)", pos.X, pos.Y)
	}

	// Spawn outside the walls clamps inside
	edge := w.Spawn(core.ShapeCircle, core.SizeLarge, 1, -10, 100)
	h := edge.HalfExtent()
	pos = edge.Position()
	if pos.X != h {
		t.Errorf("Expected X clamped to %v, got %v", h, pos.X)
	}
	if pos.Y != w.Height()-h {
		t.Errorf("Expected Y clamped to %v, got %v", w.Height()-h, pos.Y)
	}
}

// TestWorldSpawnKinds checks each shape kind builds a live body
func TestWorldSpawnKinds(t *testing.T) {
	w := newTestWorld()

	for kind := core.ShapeKind(0); kind < core.ShapeKindCount; kind++ {
		box := w.Spawn(kind, core.SizeSmall, 0, 40, 24)
		if !box.Alive() {
			t.Errorf("Kind %v: expected live box", kind)
		}
		if box.Kind != kind {
			t.Errorf("Expected kind %v, got %v", kind, box.Kind)
		}
	}
	if w.Count() != int(core.ShapeKindCount) {
		t.Errorf("Expected %d boxes, got %d", core.ShapeKindCount, w.Count())
	}
}

// TestWorldMaxBoxesCullsOldest verifies capacity enforcement drops the oldest box
func TestWorldMaxBoxesCullsOldest(t *testing.T) {
	w := newTestWorld()
	tuning := DefaultTuning()
	tuning.MaxBoxes = 3
	w.ApplyTuning(tuning)

	first := w.Spawn(core.ShapeSquare, core.SizeSmall, 0, 10, 10)
	w.Spawn(core.ShapeSquare, core.SizeSmall, 0, 20, 10)
	w.Spawn(core.ShapeSquare, core.SizeSmall, 0, 30, 10)
	w.Spawn(core.ShapeSquare, core.SizeSmall, 0, 40, 10)

	if w.Count() != 3 {
		t.Errorf("Expected 3 boxes after overflow, got %d", w.Count())
	}
	if first.Alive() {
		t.Error("Expected oldest box to be culled")
	}

	// Remaining order is second, third, fourth
	var ids []uint64
	w.EachBox(func(b *Box) { ids = append(ids, b.ID) })
	if len(ids) != 3 || ids[0] != 2 {
		t.Errorf("Expected oldest remaining ID 2, got %v", ids)
	}
}

// TestWorldGrabRelease exercises the point query grab path
func TestWorldGrabRelease(t *testing.T) {
	w := newTestWorld()
	box := w.Spawn(core.ShapeSquare, core.SizeMedium, 0, 40, 24)

	// Direct hit
	got := w.Grab(40, 24)
	if got != box {
		t.Fatalf("Expected grab to return spawned box, got %v", got)
	}
	if w.Grabbed() != box {
		t.Error("Expected box to be held")
	}

	// Release keeps no hold
	released := w.Release()
	if released != box {
		t.Errorf("Expected release to return held box, got %v", released)
	}
	if w.Grabbed() != nil {
		t.Error("Expected no held box after release")
	}

	// Far miss grabs nothing
	if w.Grab(5, 5) != nil {
		t.Error("Expected no grab far from any box")
	}
	if w.Grabbed() != nil {
		t.Error("Miss must not set a held box")
	}

	// A point within the slop margin still grabs
	h := box.HalfExtent()
	if w.Grab(40+h+constants.GrabSlop/2, 24) != box {
		t.Error("Expected grab within slop margin")
	}
}

// TestWorldGrabIgnoresWalls confirms wall segments never match the grab filter
func TestWorldGrabIgnoresWalls(t *testing.T) {
	w := newTestWorld()

	// Query directly on the floor
	if got := w.BoxAt(40, 0); got != nil {
		t.Errorf("Expected no box on bare floor, got %v", got)
	}
}

// TestWorldDragStep checks the velocity-toward-pointer core
func TestWorldDragStep(t *testing.T) {
	w := newTestWorld()
	box := w.Spawn(core.ShapeSquare, core.SizeMedium, 0, 40, 24)
	w.GrabBox(box)

	w.DragStep(50, 30)

	vel := box.Velocity()
	gain := w.Tuning().DragGain
	wantX := (50 - 40.0) * gain
	wantY := (30 - 24.0) * gain
	if math.Abs(vel.X-wantX) > 1e-9 || math.Abs(vel.Y-wantY) > 1e-9 {
		t.Errorf("Expected velocity (%v, %v), got (%v, %v)", wantX, wantY, vel.X, vel.Y)
	}

	// Pointer on top of the box zeroes the chase velocity
	w.DragStep(40, 24)
	vel = box.Velocity()
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("Expected zero velocity at pointer, got (%v, %v)", vel.X, vel.Y)
	}
}

// TestWorldDragStaleGrab verifies a removed box clears the grab without panic
func TestWorldDragStaleGrab(t *testing.T) {
	w := newTestWorld()
	box := w.Spawn(core.ShapeSquare, core.SizeMedium, 0, 40, 24)
	w.GrabBox(box)

	w.Remove(box)
	if w.Grabbed() != nil {
		t.Error("Expected remove to clear the grab")
	}

	// Stale pointer path: grab again through a kept reference
	other := w.Spawn(core.ShapeSquare, core.SizeMedium, 0, 40, 24)
	w.GrabBox(other)
	w.removeBox(other)
	w.grabbed = other // simulate a grab that outlived removal

	w.DragStep(10, 10)
	if w.Grabbed() != nil {
		t.Error("Expected stale grab to self-clear on drag")
	}
}

// TestWorldGravityModes verifies the space gravity follows mode and tilt
func TestWorldGravityModes(t *testing.T) {
	w := newTestWorld()
	scale := w.Tuning().GravityScale

	// Tilt mode passes the tilt vector through, scaled
	w.SetTilt(0.5, -1)
	g := w.space.Gravity()
	if math.Abs(g.X-0.5*scale) > 1e-9 || math.Abs(g.Y+scale) > 1e-9 {
		t.Errorf("Tilt gravity mismatch: got (%v, %v)", g.X, g.Y)
	}

	// Tilt axes clamp to [-1, 1]
	w.SetTilt(4, -9)
	g = w.space.Gravity()
	if math.Abs(g.X-scale) > 1e-9 || math.Abs(g.Y+scale) > 1e-9 {
		t.Errorf("Clamped tilt gravity mismatch: got (%v, %v)", g.X, g.Y)
	}

	// Down mode ignores tilt
	w.SetGravityMode(core.GravityDown)
	w.SetTilt(1, 1)
	g = w.space.Gravity()
	if g.X != 0 || math.Abs(g.Y+scale) > 1e-9 {
		t.Errorf("Down gravity mismatch: got (%v, %v)", g.X, g.Y)
	}

	// Zero-G clears gravity
	w.SetGravityMode(core.GravityZero)
	g = w.space.Gravity()
	if g.X != 0 || g.Y != 0 {
		t.Errorf("Zero-G gravity mismatch: got (%v, %v)", g.X, g.Y)
	}
}

// TestWorldStepSettles drops a box under down gravity and waits for rest
func TestWorldStepSettles(t *testing.T) {
	w := newTestWorld()
	w.SetGravityMode(core.GravityDown)
	box := w.Spawn(core.ShapeSquare, core.SizeMedium, 0, 40, 40)

	dt := 10 * time.Millisecond
	for i := 0; i < 600; i++ {
		w.UpdateLocked(dt)
	}

	pos := box.Position()
	if pos.Y >= 20 {
		t.Errorf("Expected box to fall toward the floor, still at Y=%v", pos.Y)
	}
	if pos.Y < box.HalfExtent()-1e-6 {
		t.Errorf("Box sank below the floor: Y=%v", pos.Y)
	}
}

// TestWorldReset empties the canvas and drops the grab
func TestWorldReset(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 5; i++ {
		w.Spawn(core.ShapeCircle, core.SizeSmall, i, float64(10+i*10), 24)
	}
	w.GrabBox(w.boxes[w.order[0]])

	w.Reset()

	if w.Count() != 0 {
		t.Errorf("Expected empty world after reset, got %d boxes", w.Count())
	}
	if w.Grabbed() != nil {
		t.Error("Expected reset to clear the grab")
	}

	// World remains usable after reset
	if w.Spawn(core.ShapeSquare, core.SizeSmall, 0, 40, 24) == nil {
		t.Error("Expected spawn to work after reset")
	}
}

// TestWorldResize refits the walls and keeps the box census intact
func TestWorldResize(t *testing.T) {
	w := newTestWorld()
	w.Spawn(core.ShapeSquare, core.SizeSmall, 0, 40, 24)

	w.Resize(120, 60)

	if w.Width() != 120 || w.Height() != 60 {
		t.Errorf("Expected bounds 120x60, got %vx%v", w.Width(), w.Height())
	}
	if len(w.walls) != 4 {
		t.Errorf("Expected 4 wall segments, got %d", len(w.walls))
	}
	if w.Count() != 1 {
		t.Errorf("Expected box to survive resize, got %d", w.Count())
	}
}

// TestWorldApplyTuning pushes material changes onto live shapes
func TestWorldApplyTuning(t *testing.T) {
	w := newTestWorld()
	box := w.Spawn(core.ShapeSquare, core.SizeMedium, 0, 40, 24)

	tuning := w.Tuning()
	tuning.Elasticity = 0.9
	tuning.Friction = 0.1
	w.ApplyTuning(tuning)

	if e := box.shape.Elasticity(); math.Abs(e-0.9) > 1e-9 {
		t.Errorf("Expected elasticity 0.9 on live shape, got %v", e)
	}
	if f := w.walls[0].Friction(); math.Abs(f-0.1) > 1e-9 {
		t.Errorf("Expected friction 0.1 on walls, got %v", f)
	}

	// Shrinking MaxBoxes culls down to the new cap
	for i := 0; i < 5; i++ {
		w.Spawn(core.ShapeSquare, core.SizeSmall, 0, 40, 24)
	}
	tuning.MaxBoxes = 2
	w.ApplyTuning(tuning)
	if w.Count() != 2 {
		t.Errorf("Expected 2 boxes after cap shrink, got %d", w.Count())
	}
}
