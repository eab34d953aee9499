package engine

import (
	"math"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/events"
)

// statusEntry is a transient HUD message with its expiry
type statusEntry struct {
	text  string
	until time.Time
}

// Context holds all sandbox state shared between the input goroutine,
// the simulation tick, and the render loop
type Context struct {
	// ===== Immutable After Init =====
	// Set once during NewContext. Pointers never modified.
	// Safe for concurrent read without synchronization.

	World         *World             // Physics world; has internal locking
	Queue         *events.EventQueue // Lock-free MPSC queue
	PausableClock *PausableClock     // Pausable time source; has internal sync
	Log           *zap.Logger        // Structured logger; zap.NewNop outside debug runs

	// ===== Atomic (Self-Synchronized) =====
	// Safe for concurrent access via atomic operations.

	FrameNumber atomic.Int64 // Render frame counter; incremented by main loop
	mode        atomic.Int32 // UI mode (core.Mode); written by input and shake detector
	IsPaused    atomic.Bool  // Pause flag; actual timing handled by PausableClock
	IsMuted     atomic.Bool  // Mute flag

	// Pointer state in world units; written on mouse motion,
	// read by the drag system every tick
	pointerX    atomic.Uint64 // math.Float64bits
	pointerY    atomic.Uint64 // math.Float64bits
	PointerDown atomic.Bool

	// Spawn selections; written by input, read by the spawn system
	selKind  atomic.Int32 // core.ShapeKind
	selSize  atomic.Int32 // core.SizeClass
	selColor atomic.Int32 // palette index

	// Menu cursor row; written by input, read by the menu renderer
	MenuRow atomic.Int32

	// Transient HUD message
	statusMessage atomic.Pointer[statusEntry]

	// Selectable colors; swapped wholesale on config reload
	palette atomic.Pointer[[]core.RGB]

	// ===== Main-Loop Exclusive =====
	// Accessed only from the main goroutine (resize, render).

	Width, Height int // Terminal dimensions
}

// NewContext creates a context wired to an existing world and queue.
// width/height are initial terminal dimensions
func NewContext(world *World, queue *events.EventQueue, log *zap.Logger, width, height int) *Context {
	ctx := &Context{
		World:         world,
		Queue:         queue,
		PausableClock: NewPausableClock(),
		Log:           log,
		Width:         width,
		Height:        height,
	}

	ctx.SetMode(core.ModeNormal)
	ctx.SetSelection(core.ShapeSquare, core.SizeMedium, 0)
	ctx.statusMessage.Store(&statusEntry{})

	return ctx
}

// ===== Screen geometry =====

// CanvasSize returns the canvas dimensions in terminal cells,
// excluding the HUD row
func (ctx *Context) CanvasSize() (cols, rows int) {
	cols = ctx.Width
	rows = ctx.Height - constants.HUDRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// WorldSize returns the canvas dimensions in world units.
// One unit spans one cell horizontally and half a cell vertically,
// which squares up the typical 1:2 terminal glyph aspect
func (ctx *Context) WorldSize() (w, h float64) {
	cols, rows := ctx.CanvasSize()
	return float64(cols), float64(rows * 2)
}

// CanvasTooSmall reports whether the terminal is below the playable minimum
func (ctx *Context) CanvasTooSmall() bool {
	cols, rows := ctx.CanvasSize()
	return cols < constants.MinCanvasCols || rows < constants.MinCanvasRows
}

// HandleResize refits the world walls after the main loop stored the
// new terminal dimensions
func (ctx *Context) HandleResize() {
	w, h := ctx.WorldSize()
	ctx.World.RunSafe(func() {
		ctx.World.Resize(w, h)
	})
}

// ===== Pointer =====

// SetPointer stores the pointer position in world units
func (ctx *Context) SetPointer(x, y float64) {
	ctx.pointerX.Store(math.Float64bits(x))
	ctx.pointerY.Store(math.Float64bits(y))
}

// Pointer returns the pointer position in world units
func (ctx *Context) Pointer() (x, y float64) {
	return math.Float64frombits(ctx.pointerX.Load()),
		math.Float64frombits(ctx.pointerY.Load())
}

// ===== Mode =====

// Mode returns the current UI mode
func (ctx *Context) Mode() core.Mode {
	return core.Mode(ctx.mode.Load())
}

// SetMode sets the current UI mode
func (ctx *Context) SetMode(m core.Mode) {
	ctx.mode.Store(int32(m))
}

// ===== Selections =====

// SetSelection replaces all spawn selections at once
func (ctx *Context) SetSelection(kind core.ShapeKind, size core.SizeClass, color int) {
	ctx.selKind.Store(int32(kind))
	ctx.selSize.Store(int32(size))
	ctx.selColor.Store(int32(color))
}

// Selection returns the active spawn selections
func (ctx *Context) Selection() (core.ShapeKind, core.SizeClass, int) {
	return core.ShapeKind(ctx.selKind.Load()),
		core.SizeClass(ctx.selSize.Load()),
		int(ctx.selColor.Load())
}

// SetKind updates the selected shape kind
func (ctx *Context) SetKind(k core.ShapeKind) {
	ctx.selKind.Store(int32(k))
}

// SetSize updates the selected size class
func (ctx *Context) SetSize(s core.SizeClass) {
	ctx.selSize.Store(int32(s))
}

// SetColor updates the selected palette index, wrapping into range
func (ctx *Context) SetColor(c int) {
	if n := ctx.PaletteSize(); n > 0 {
		c = ((c % n) + n) % n
	}
	ctx.selColor.Store(int32(c))
}

// ===== Palette =====

// SetPalette swaps the selectable color set and keeps the color
// selection in range
func (ctx *Context) SetPalette(p []core.RGB) {
	ctx.palette.Store(&p)
	ctx.SetColor(int(ctx.selColor.Load()))
}

// Palette returns the selectable color set
func (ctx *Context) Palette() []core.RGB {
	p := ctx.palette.Load()
	if p == nil {
		return nil
	}
	return *p
}

// PaletteSize returns the number of selectable colors
func (ctx *Context) PaletteSize() int {
	return len(ctx.Palette())
}

// PaletteColor returns the color at the given index, white when the
// palette is empty
func (ctx *Context) PaletteColor(i int) core.RGB {
	p := ctx.Palette()
	if len(p) == 0 {
		return core.RGBWhite
	}
	return p[((i%len(p))+len(p))%len(p)]
}

// ===== Status message =====

// SetStatus shows a transient message on the HUD
func (ctx *Context) SetStatus(text string) {
	ctx.statusMessage.Store(&statusEntry{
		text:  text,
		until: time.Now().Add(constants.StatusMessageDuration),
	})
}

// Status returns the active HUD message, empty once expired
func (ctx *Context) Status() string {
	entry := ctx.statusMessage.Load()
	if entry == nil || time.Now().After(entry.until) {
		return ""
	}
	return entry.text
}

// ===== Frame number =====

// IncrementFrameNumber advances the frame authority (called by render loop)
func (ctx *Context) IncrementFrameNumber() int64 {
	return ctx.FrameNumber.Add(1)
}

// ===== Pause =====

// TogglePause flips the pause flag and the pausable clock together
func (ctx *Context) TogglePause() bool {
	if ctx.IsPaused.CompareAndSwap(false, true) {
		ctx.PausableClock.Pause()
		return true
	}
	ctx.IsPaused.Store(false)
	ctx.PausableClock.Resume()
	return false
}
