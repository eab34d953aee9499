package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/events"
	"github.com/lixenwraith/boxes/render"
)

// Handler turns terminal events into sandbox actions. It runs on the
// main loop goroutine: the poll goroutine only forwards events, so the
// handler may touch main-loop state like the terminal dimensions
type Handler struct {
	ctx  *engine.Context
	orch *render.RenderOrchestrator

	// Sticky tilt and gravity mode mirror the world copies. The handler
	// is their only writer, so it cycles from local state and publishes
	// changes through the queue instead of reading the world back
	tiltX, tiltY float64
	gravityMode  core.GravityMode

	mouseDown bool
}

// NewHandler creates an input handler. Must be called before the
// scheduler starts: it seeds the local tilt and gravity mode from the
// world's initial values
func NewHandler(ctx *engine.Context, orch *render.RenderOrchestrator) *Handler {
	tilt := ctx.World.Tilt()
	return &Handler{
		ctx:         ctx,
		orch:        orch,
		tiltX:       tilt.X,
		tiltY:       tilt.Y,
		gravityMode: ctx.World.GravityMode(),
	}
}

// HandleEvent processes a tcell event and returns false when the
// sandbox should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.handleResize(ev)
	}
	return true
}

// handleResize refits the context, world walls and render buffer
func (h *Handler) handleResize(ev *tcell.EventResize) {
	w, hgt := ev.Size()
	h.ctx.Width, h.ctx.Height = w, hgt
	h.ctx.HandleResize()
	h.orch.Resize(w, hgt)
}

// handleKey dispatches keyboard events by UI mode
func (h *Handler) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	switch h.ctx.Mode() {
	case core.ModeMenu:
		return h.handleMenuKey(ev)
	case core.ModeConfirm:
		return h.handleConfirmKey(ev)
	default:
		return h.handleNormalKey(ev)
	}
}

// handleNormalKey handles input on the sandbox canvas
func (h *Handler) handleNormalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyLeft:
		h.nudgeTilt(-constants.TiltStep, 0)
		return true
	case tcell.KeyRight:
		h.nudgeTilt(constants.TiltStep, 0)
		return true
	case tcell.KeyUp:
		h.nudgeTilt(0, constants.TiltStep)
		return true
	case tcell.KeyDown:
		h.nudgeTilt(0, -constants.TiltStep)
		return true
	}

	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case '.':
		h.centerTilt()
	case 's':
		h.cycleShape(1)
		h.emitCue(core.CueMenu)
	case 'z':
		h.cycleSize(1)
		h.emitCue(core.CueMenu)
	case 'c':
		h.cycleColor(1)
		h.emitCue(core.CueMenu)
	case 'g':
		h.cycleGravity(1)
		h.emitCue(core.CueMenu)
	case 'm':
		h.releasePointer()
		h.ctx.MenuRow.Store(int32(core.MenuRowShape))
		h.ctx.SetMode(core.ModeMenu)
		h.emitCue(core.CueMenu)
	case 'r':
		h.releasePointer()
		h.ctx.SetMode(core.ModeConfirm)
		h.emitCue(core.CueMenu)
	case ' ':
		if h.ctx.TogglePause() {
			h.ctx.SetStatus("Paused")
		} else {
			h.ctx.SetStatus("Resumed")
		}
	case 'a':
		muted := !h.ctx.IsMuted.Load()
		h.ctx.IsMuted.Store(muted)
		if muted {
			h.ctx.SetStatus("Audio muted")
		} else {
			h.ctx.SetStatus("Audio on")
		}
	}
	return true
}

// handleMenuKey handles input while the picker overlay is open
func (h *Handler) handleMenuKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		h.closeMenu()
		return true
	case tcell.KeyUp:
		h.moveMenuRow(-1)
		return true
	case tcell.KeyDown:
		h.moveMenuRow(1)
		return true
	case tcell.KeyLeft:
		h.adjustMenuRow(-1)
		return true
	case tcell.KeyRight, tcell.KeyEnter:
		h.adjustMenuRow(1)
		return true
	}

	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch ev.Rune() {
	case 'j':
		h.moveMenuRow(1)
	case 'k':
		h.moveMenuRow(-1)
	case 'h':
		h.adjustMenuRow(-1)
	case 'l':
		h.adjustMenuRow(1)
	case 'm', 'q':
		h.closeMenu()
	}
	return true
}

// handleConfirmKey handles the reset dialog. Confirming here is the
// only action that empties the canvas; the shake gesture merely opens
// this dialog
func (h *Handler) handleConfirmKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		h.confirmReset()
		return true
	case tcell.KeyEscape:
		h.cancelReset()
		return true
	}

	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch ev.Rune() {
	case 'y', 'Y':
		h.confirmReset()
	case 'n', 'N':
		h.cancelReset()
	default:
		h.emitCue(core.CueError)
	}
	return true
}

// handleMouse covers the touch surface: press grabs or spawns, drag
// moves the pointer, release drops, wheel resizes the next spawn.
// Overlay modes are keyboard only
func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	if h.ctx.Mode() != core.ModeNormal {
		return
	}

	buttons := ev.Buttons()

	if buttons&tcell.WheelUp != 0 {
		h.cycleSize(1)
		h.emitCue(core.CueMenu)
		return
	}
	if buttons&tcell.WheelDown != 0 {
		h.cycleSize(-1)
		h.emitCue(core.CueMenu)
		return
	}

	x, y := ev.Position()
	cols, rows := h.ctx.CanvasSize()
	proj := render.NewProjector(cols, rows)

	if buttons&tcell.Button1 != 0 {
		wx, wy := proj.ScreenToWorld(x, y)
		wx = clamp(wx, 0, float64(cols))
		wy = clamp(wy, 0, proj.WorldH)

		if !h.mouseDown {
			// Press on the HUD row is not a canvas touch
			if y >= rows {
				return
			}
			h.mouseDown = true
			h.ctx.SetPointer(wx, wy)
			h.ctx.PointerDown.Store(true)

			// Touch a box to pick it up, touch empty canvas to spawn
			// a new one straight into the hand
			if h.ctx.World.BoxAt(wx, wy) != nil {
				h.ctx.Queue.Emit(events.EventGrabRequest, &events.PointPayload{X: wx, Y: wy})
			} else {
				kind, size, color := h.ctx.Selection()
				h.ctx.Queue.Emit(events.EventSpawnRequest, &events.SpawnRequestPayload{
					Kind:  kind,
					Size:  size,
					Color: color,
					X:     wx,
					Y:     wy,
					Grab:  true,
				})
			}
			return
		}

		// Drag: only the pointer moves; the drag system chases it
		h.ctx.SetPointer(wx, wy)
		return
	}

	if h.mouseDown {
		h.releasePointer()
	}
}

// ===== Tilt =====

// nudgeTilt shifts the sticky tilt like tipping the device further
func (h *Handler) nudgeTilt(dx, dy float64) {
	h.tiltX = clamp(h.tiltX+dx, -constants.TiltMax, constants.TiltMax)
	h.tiltY = clamp(h.tiltY+dy, -constants.TiltMax, constants.TiltMax)
	h.emitTilt()
}

// centerTilt levels the device
func (h *Handler) centerTilt() {
	h.tiltX, h.tiltY = 0, 0
	h.emitTilt()
	h.ctx.SetStatus("Tilt centered")
}

func (h *Handler) emitTilt() {
	h.ctx.Queue.Emit(events.EventTiltChange, &events.TiltPayload{X: h.tiltX, Y: h.tiltY})
}

// ===== Selection cycling =====

func (h *Handler) cycleShape(dir int) {
	kind, _, _ := h.ctx.Selection()
	if dir > 0 {
		kind = kind.Next()
	} else {
		kind = kind.Prev()
	}
	h.ctx.SetKind(kind)
	h.ctx.SetStatus("Shape: " + kind.String())
}

func (h *Handler) cycleSize(dir int) {
	_, size, _ := h.ctx.Selection()
	if dir > 0 {
		size = size.Next()
	} else {
		size = size.Prev()
	}
	h.ctx.SetSize(size)
	h.ctx.SetStatus("Size: " + size.String())
}

func (h *Handler) cycleColor(dir int) {
	_, _, color := h.ctx.Selection()
	h.ctx.SetColor(color + dir)
	_, _, color = h.ctx.Selection()
	h.ctx.SetStatus(fmt.Sprintf("Color %d/%d", color+1, h.ctx.PaletteSize()))
}

// cycleGravity advances the local mode and publishes the change; the
// gravity system applies it and reports the status
func (h *Handler) cycleGravity(dir int) {
	if dir > 0 {
		h.gravityMode = h.gravityMode.Next()
	} else {
		h.gravityMode = h.gravityMode.Prev()
	}
	h.ctx.Queue.Emit(events.EventGravityModeChange, &events.GravityModePayload{Mode: h.gravityMode})
}

// ===== Menu =====

func (h *Handler) closeMenu() {
	h.ctx.SetMode(core.ModeNormal)
	h.emitCue(core.CueMenu)
}

func (h *Handler) moveMenuRow(dir int) {
	row := core.MenuRow(h.ctx.MenuRow.Load())
	if dir > 0 {
		row = row.Next()
	} else {
		row = row.Prev()
	}
	h.ctx.MenuRow.Store(int32(row))
	h.emitCue(core.CueMenu)
}

func (h *Handler) adjustMenuRow(dir int) {
	switch core.MenuRow(h.ctx.MenuRow.Load()) {
	case core.MenuRowShape:
		h.cycleShape(dir)
	case core.MenuRowSize:
		h.cycleSize(dir)
	case core.MenuRowColor:
		h.cycleColor(dir)
	case core.MenuRowGravity:
		h.cycleGravity(dir)
	}
	h.emitCue(core.CueMenu)
}

// ===== Confirm =====

func (h *Handler) confirmReset() {
	h.ctx.SetMode(core.ModeNormal)
	h.ctx.Queue.Emit(events.EventResetConfirmed, nil)
}

func (h *Handler) cancelReset() {
	h.ctx.SetMode(core.ModeNormal)
	h.ctx.SetStatus("Canvas kept")
	h.emitCue(core.CueMenu)
}

// ===== Helpers =====

// releasePointer force-drops a held box, the path for mouse release
// and for mode changes while the button is down
func (h *Handler) releasePointer() {
	if !h.mouseDown {
		return
	}
	h.mouseDown = false
	h.ctx.PointerDown.Store(false)
	h.ctx.Queue.Emit(events.EventReleaseRequest, nil)
}

func (h *Handler) emitCue(cue core.Cue) {
	h.ctx.Queue.Emit(events.EventCueRequest, &events.CuePayload{Cue: cue})
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
