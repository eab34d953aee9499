package engine

import (
	"sync"
	"time"

	"github.com/jakecoffman/cp/v2"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/events"
)

// Tuning holds the live physics parameters. A copy travels from config
// into the world so the engine stays decoupled from the config package
type Tuning struct {
	GravityScale   float64 // tilt-to-acceleration factor, world units/s^2
	DragGain       float64 // pointer chase velocity factor, 1/s
	Elasticity     float64 // restitution for boxes and walls
	Friction       float64 // friction for boxes and walls
	SleepThreshold float64 // seconds of idle before bodies sleep
	MaxBoxes       int     // cap before oldest boxes are culled
}

// DefaultTuning returns the built-in parameter set
func DefaultTuning() Tuning {
	return Tuning{
		GravityScale:   constants.DefaultGravityScale,
		DragGain:       constants.DefaultDragGain,
		Elasticity:     constants.DefaultElasticity,
		Friction:       constants.DefaultFriction,
		SleepThreshold: constants.DefaultSleepThreshold,
		MaxBoxes:       constants.DefaultMaxBoxes,
	}
}

// World owns the physics space and every live box.
// All mutation happens under the update mutex: the scheduler tick and
// the render snapshot both acquire it, input goroutines go through
// RunSafe-wrapped helpers
type World struct {
	updateMutex sync.Mutex

	space *cp.Space
	walls []*cp.Shape

	boxes map[uint64]*Box
	order []uint64 // insertion order, oldest first
	next  uint64

	grabbed *Box

	width  float64 // canvas width in world units
	height float64 // canvas height in world units

	tilt        cp.Vector // sticky tilt, each axis in [-1, 1]
	gravityMode core.GravityMode

	tuning Tuning

	queue   *events.EventQueue
	systems []System
}

// NewWorld creates a world with walls fitted to the given canvas size
func NewWorld(queue *events.EventQueue, tuning Tuning, width, height float64) *World {
	space := cp.NewSpace()
	space.Iterations = constants.SpaceIterations
	space.SleepTimeThreshold = tuning.SleepThreshold

	w := &World{
		space:       space,
		boxes:       make(map[uint64]*Box),
		next:        1,
		tilt:        cp.Vector{X: 0, Y: -1},
		gravityMode: core.GravityTilt,
		tuning:      tuning,
		queue:       queue,
	}

	w.rebuildWalls(width, height)
	w.applyGravity()

	// Impact reporting for audio feedback. The callback runs inside
	// space.Step, so it must not mutate the space; pushing onto the
	// lock-free queue is safe
	handler := space.NewWildcardCollisionHandler(constants.CollisionTypeBox)
	handler.PostSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
		if !arb.IsFirstContact() {
			return
		}
		impulse := arb.TotalImpulse().Length()
		if impulse < constants.ImpactSoundImpulse {
			return
		}
		w.queue.Emit(events.EventImpact, &events.ImpactPayload{Impulse: impulse})
	}

	return w
}

// ===== Locking (scheduler and render synchronization) =====

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock acquires the world's update mutex
func (w *World) Lock() {
	w.updateMutex.Lock()
}

// Unlock releases the update mutex
func (w *World) Unlock() {
	w.updateMutex.Unlock()
}

// ===== Systems =====

// AddSystem registers a system, keeping the list sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Bubble sort, small N
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns the registered systems in priority order.
// Used by ClockScheduler for event handler auto-registration
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// UpdateLocked runs all systems then advances the physics space by dt.
// Caller must hold the update mutex
func (w *World) UpdateLocked(dt time.Duration) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
	w.space.Step(dt.Seconds())
}

// ===== Canvas bounds =====

// Resize refits the walls to a new canvas size in world units.
// Boxes stranded outside the new bounds are left to the cull pass
func (w *World) Resize(width, height float64) {
	w.rebuildWalls(width, height)
}

// rebuildWalls replaces the four boundary segments
func (w *World) rebuildWalls(width, height float64) {
	for _, wall := range w.walls {
		w.space.RemoveShape(wall)
	}
	w.walls = w.walls[:0]
	w.width = width
	w.height = height

	static := w.space.StaticBody
	corners := []cp.Vector{
		{X: 0, Y: 0},
		{X: width, Y: 0},
		{X: width, Y: height},
		{X: 0, Y: height},
	}
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		seg := cp.NewSegment(static, a, b, constants.WallRadius)
		seg.SetElasticity(w.tuning.Elasticity)
		seg.SetFriction(w.tuning.Friction)
		seg.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, constants.CategoryWall, cp.ALL_CATEGORIES))
		w.space.AddShape(seg)
		w.walls = append(w.walls, seg)
	}
}

// Width returns the canvas width in world units
func (w *World) Width() float64 { return w.width }

// Height returns the canvas height in world units
func (w *World) Height() float64 { return w.height }

// ===== Box lifecycle =====

// Spawn creates a box of the given kind at (x, y), culling the oldest
// box first when the world is at capacity. Position is clamped so the
// new box starts inside the walls
func (w *World) Spawn(kind core.ShapeKind, size core.SizeClass, color int, x, y float64) *Box {
	for len(w.order) >= w.tuning.MaxBoxes && len(w.order) > 0 {
		w.removeBox(w.boxes[w.order[0]])
	}

	box := newBox(w.next, kind, size, color, w.tuning.Elasticity, w.tuning.Friction, time.Now())
	w.next++

	h := box.HalfExtent()
	box.body.SetPosition(cp.Vector{
		X: clamp(x, h, w.width-h),
		Y: clamp(y, h, w.height-h),
	})

	w.space.AddBody(box.body)
	w.space.AddShape(box.shape)

	w.boxes[box.ID] = box
	w.order = append(w.order, box.ID)
	return box
}

// removeBox detaches a box from the space and forgets it
func (w *World) removeBox(box *Box) {
	if box == nil || box.body == nil {
		return
	}
	if w.grabbed == box {
		w.grabbed = nil
	}

	w.space.RemoveShape(box.shape)
	w.space.RemoveBody(box.body)
	box.shape = nil
	box.body = nil

	delete(w.boxes, box.ID)
	for i, id := range w.order {
		if id == box.ID {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Remove culls a single box. Used by the cull pass for strays
func (w *World) Remove(box *Box) {
	w.removeBox(box)
}

// Reset removes every box and clears the grab
func (w *World) Reset() {
	for _, id := range append([]uint64(nil), w.order...) {
		w.removeBox(w.boxes[id])
	}
	w.grabbed = nil
}

// Count returns the number of live boxes
func (w *World) Count() int {
	return len(w.order)
}

// EachBox visits live boxes oldest first, the paint order for rendering
func (w *World) EachBox(fn func(*Box)) {
	for _, id := range w.order {
		fn(w.boxes[id])
	}
}

// ===== Grab and drag =====

// boxFilter matches only box shapes, never walls
var boxFilter = cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, constants.CategoryBox)

// BoxAt returns the box near the given world point, or nil.
// Safe to call from the input goroutine
func (w *World) BoxAt(x, y float64) *Box {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	return w.boxAtLocked(x, y)
}

func (w *World) boxAtLocked(x, y float64) *Box {
	info := w.space.PointQueryNearest(cp.Vector{X: x, Y: y}, constants.GrabSlop, boxFilter)
	if info == nil || info.Shape == nil {
		return nil
	}
	box, _ := info.Shape.UserData.(*Box)
	return box
}

// Grab picks up the box near the given world point and returns it.
// An existing grab is replaced. Caller must hold the update mutex
func (w *World) Grab(x, y float64) *Box {
	box := w.boxAtLocked(x, y)
	if box == nil {
		return nil
	}
	w.GrabBox(box)
	return box
}

// GrabBox pins the grab to a specific box (spawn-then-grab path)
func (w *World) GrabBox(box *Box) {
	if !box.Alive() {
		return
	}
	w.grabbed = box
	box.body.Activate()
}

// Release drops the grabbed box, keeping its last drag velocity.
// Returns the box that was held, or nil
func (w *World) Release() *Box {
	box := w.grabbed
	w.grabbed = nil
	return box
}

// Grabbed returns the currently held box, or nil
func (w *World) Grabbed() *Box {
	return w.grabbed
}

// DragStep drives the grabbed box toward the pointer by setting its
// velocity proportional to the remaining distance. Runs every tick
// while a box is held. A stale grab on a removed box clears itself
func (w *World) DragStep(px, py float64) {
	box := w.grabbed
	if box == nil {
		return
	}
	if !box.Alive() {
		w.grabbed = nil
		return
	}

	box.body.Activate()
	pos := box.body.Position()
	box.body.SetVelocity((px-pos.X)*w.tuning.DragGain, (py-pos.Y)*w.tuning.DragGain)
}

// ===== Gravity =====

// SetTilt replaces the sticky tilt vector, axes clamped to [-1, 1]
func (w *World) SetTilt(x, y float64) {
	w.tilt = cp.Vector{
		X: clamp(x, -constants.TiltMax, constants.TiltMax),
		Y: clamp(y, -constants.TiltMax, constants.TiltMax),
	}
	w.applyGravity()
}

// Tilt returns the sticky tilt vector
func (w *World) Tilt() cp.Vector {
	return w.tilt
}

// SetGravityMode switches the gravity source
func (w *World) SetGravityMode(mode core.GravityMode) {
	w.gravityMode = mode
	w.applyGravity()
}

// GravityMode returns the active gravity source
func (w *World) GravityMode() core.GravityMode {
	return w.gravityMode
}

// applyGravity recomputes space gravity from mode and tilt.
// Only called on change: SetGravity wakes every sleeping body
func (w *World) applyGravity() {
	var g cp.Vector
	switch w.gravityMode {
	case core.GravityDown:
		g = cp.Vector{X: 0, Y: -w.tuning.GravityScale}
	case core.GravityZero:
		g = cp.Vector{}
	default:
		g = w.tilt.Mult(w.tuning.GravityScale)
	}
	w.space.SetGravity(g)
}

// ===== Tuning =====

// Tuning returns the live parameter set
func (w *World) Tuning() Tuning {
	return w.tuning
}

// ApplyTuning swaps the parameter set and pushes material changes
// onto existing shapes and the space
func (w *World) ApplyTuning(t Tuning) {
	if t.MaxBoxes <= 0 {
		t.MaxBoxes = constants.DefaultMaxBoxes
	}
	w.tuning = t

	w.space.SleepTimeThreshold = t.SleepThreshold
	for _, wall := range w.walls {
		wall.SetElasticity(t.Elasticity)
		wall.SetFriction(t.Friction)
	}
	for _, id := range w.order {
		box := w.boxes[id]
		box.shape.SetElasticity(t.Elasticity)
		box.shape.SetFriction(t.Friction)
	}

	w.applyGravity()

	for len(w.order) > w.tuning.MaxBoxes {
		w.removeBox(w.boxes[w.order[0]])
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
