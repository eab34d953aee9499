package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/events"
	"github.com/lixenwraith/boxes/render"
)

func newTestHandler(t *testing.T) (*Handler, *engine.Context, *events.EventQueue) {
	t.Helper()
	queue := events.NewEventQueue()
	world := engine.NewWorld(queue, engine.DefaultTuning(), 80, 48)
	ctx := engine.NewContext(world, queue, zap.NewNop(), 80, 25)
	ctx.SetPalette([]core.RGB{{R: 255}, {G: 255}, {B: 255}})
	return NewHandler(ctx, nil), ctx, queue
}

func press(h *Handler, r rune) bool {
	return h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func pressKey(h *Handler, key tcell.Key) bool {
	return h.HandleEvent(tcell.NewEventKey(key, 0, tcell.ModNone))
}

func drainTypes(q *events.EventQueue) []events.EventType {
	var types []events.EventType
	for _, ev := range q.Consume() {
		types = append(types, ev.Type)
	}
	return types
}

func containsType(types []events.EventType, t events.EventType) bool {
	for _, have := range types {
		if have == t {
			return true
		}
	}
	return false
}

// lastTilt drains the queue and returns the final tilt payload
func lastTilt(t *testing.T, q *events.EventQueue) *events.TiltPayload {
	t.Helper()
	var tilt *events.TiltPayload
	for _, ev := range q.Consume() {
		if ev.Type == events.EventTiltChange {
			tilt = ev.Payload.(*events.TiltPayload)
		}
	}
	if tilt == nil {
		t.Fatal("expected a tilt change event")
	}
	return tilt
}

func TestQuitKeys(t *testing.T) {
	h, _, _ := newTestHandler(t)
	if pressKey(h, tcell.KeyCtrlC) {
		t.Error("expected Ctrl-C to quit")
	}

	h2, _, _ := newTestHandler(t)
	if press(h2, 'q') {
		t.Error("expected q to quit")
	}

	h3, _, _ := newTestHandler(t)
	if pressKey(h3, tcell.KeyEscape) {
		t.Error("expected Esc to quit from the canvas")
	}
}

// TestEscapeClosesOverlays verifies Esc only quits from the canvas
func TestEscapeClosesOverlays(t *testing.T) {
	h, ctx, _ := newTestHandler(t)

	press(h, 'm')
	if !pressKey(h, tcell.KeyEscape) {
		t.Fatal("expected Esc in menu to keep running")
	}
	if ctx.Mode() != core.ModeNormal {
		t.Errorf("expected menu closed, mode is %v", ctx.Mode())
	}

	press(h, 'r')
	if !pressKey(h, tcell.KeyEscape) {
		t.Fatal("expected Esc in confirm to keep running")
	}
	if ctx.Mode() != core.ModeNormal {
		t.Errorf("expected confirm closed, mode is %v", ctx.Mode())
	}
}

func TestTiltNudge(t *testing.T) {
	h, _, queue := newTestHandler(t)
	queue.Consume()

	// The world starts tilted straight down
	pressKey(h, tcell.KeyRight)
	tilt := lastTilt(t, queue)
	if tilt.X != 0.25 || tilt.Y != -1 {
		t.Errorf("expected tilt (0.25, -1), got (%v, %v)", tilt.X, tilt.Y)
	}

	pressKey(h, tcell.KeyRight)
	pressKey(h, tcell.KeyUp)
	tilt = lastTilt(t, queue)
	if tilt.X != 0.5 || tilt.Y != -0.75 {
		t.Errorf("expected tilt (0.5, -0.75), got (%v, %v)", tilt.X, tilt.Y)
	}
}

func TestTiltClampAndCenter(t *testing.T) {
	h, _, queue := newTestHandler(t)

	for i := 0; i < 6; i++ {
		pressKey(h, tcell.KeyRight)
	}
	tilt := lastTilt(t, queue)
	if tilt.X != 1.0 {
		t.Errorf("expected tilt X clamped to 1.0, got %v", tilt.X)
	}

	press(h, '.')
	tilt = lastTilt(t, queue)
	if tilt.X != 0 || tilt.Y != 0 {
		t.Errorf("expected centered tilt, got (%v, %v)", tilt.X, tilt.Y)
	}
}

func TestSelectionCycleKeys(t *testing.T) {
	h, ctx, queue := newTestHandler(t)

	press(h, 's')
	press(h, 'z')
	press(h, 'c')

	kind, size, color := ctx.Selection()
	if kind != core.ShapeCircle {
		t.Errorf("expected circle selected, got %v", kind)
	}
	if size != core.SizeLarge {
		t.Errorf("expected large selected, got %v", size)
	}
	if color != 1 {
		t.Errorf("expected color 1 selected, got %d", color)
	}
	if ctx.Status() == "" {
		t.Error("expected a status message after cycling")
	}
	if !containsType(drainTypes(queue), events.EventCueRequest) {
		t.Error("expected cue requests for selection feedback")
	}
}

func TestGravityCycle(t *testing.T) {
	h, _, queue := newTestHandler(t)

	modeAfter := func() core.GravityMode {
		t.Helper()
		var payload *events.GravityModePayload
		for _, ev := range queue.Consume() {
			if ev.Type == events.EventGravityModeChange {
				payload = ev.Payload.(*events.GravityModePayload)
			}
		}
		if payload == nil {
			t.Fatal("expected a gravity mode change event")
		}
		return payload.Mode
	}

	press(h, 'g')
	if got := modeAfter(); got != core.GravityDown {
		t.Errorf("expected Down after first cycle, got %v", got)
	}
	press(h, 'g')
	if got := modeAfter(); got != core.GravityZero {
		t.Errorf("expected Zero-G after second cycle, got %v", got)
	}
	press(h, 'g')
	if got := modeAfter(); got != core.GravityTilt {
		t.Errorf("expected Tilt after third cycle, got %v", got)
	}
}

func TestMenuNavigation(t *testing.T) {
	h, ctx, _ := newTestHandler(t)

	press(h, 'm')
	if ctx.Mode() != core.ModeMenu {
		t.Fatalf("expected menu mode, got %v", ctx.Mode())
	}
	if core.MenuRow(ctx.MenuRow.Load()) != core.MenuRowShape {
		t.Error("expected menu to open on the shape row")
	}

	press(h, 'j')
	if core.MenuRow(ctx.MenuRow.Load()) != core.MenuRowSize {
		t.Errorf("expected size row, got %d", ctx.MenuRow.Load())
	}

	// l on the size row adjusts the selection
	press(h, 'l')
	if _, size, _ := ctx.Selection(); size != core.SizeLarge {
		t.Errorf("expected large after adjust, got %v", size)
	}

	// Wrap all the way around
	for i := 0; i < int(core.MenuRowCount); i++ {
		press(h, 'j')
	}
	if core.MenuRow(ctx.MenuRow.Load()) != core.MenuRowSize {
		t.Errorf("expected row cycle to wrap, got %d", ctx.MenuRow.Load())
	}

	press(h, 'm')
	if ctx.Mode() != core.ModeNormal {
		t.Errorf("expected menu closed, got %v", ctx.Mode())
	}
}

func TestConfirmFlow(t *testing.T) {
	h, ctx, queue := newTestHandler(t)

	press(h, 'r')
	if ctx.Mode() != core.ModeConfirm {
		t.Fatalf("expected confirm mode, got %v", ctx.Mode())
	}
	queue.Consume()

	press(h, 'y')
	if ctx.Mode() != core.ModeNormal {
		t.Errorf("expected normal mode after confirm, got %v", ctx.Mode())
	}
	if !containsType(drainTypes(queue), events.EventResetConfirmed) {
		t.Error("expected a reset confirmation event")
	}
}

func TestConfirmCancelKeepsCanvas(t *testing.T) {
	h, ctx, queue := newTestHandler(t)

	press(h, 'r')
	queue.Consume()

	press(h, 'n')
	if ctx.Mode() != core.ModeNormal {
		t.Errorf("expected normal mode after cancel, got %v", ctx.Mode())
	}
	if containsType(drainTypes(queue), events.EventResetConfirmed) {
		t.Error("cancel must never emit a reset confirmation")
	}
}

func TestMousePressSpawnsGrabbed(t *testing.T) {
	h, ctx, queue := newTestHandler(t)
	queue.Consume()

	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))

	if !ctx.PointerDown.Load() {
		t.Error("expected pointer held after press")
	}

	var spawn *events.SpawnRequestPayload
	for _, ev := range queue.Consume() {
		if ev.Type == events.EventSpawnRequest {
			spawn = ev.Payload.(*events.SpawnRequestPayload)
		}
	}
	if spawn == nil {
		t.Fatal("expected a spawn request from pressing empty canvas")
	}
	if !spawn.Grab {
		t.Error("expected press-spawn to grab the new box")
	}
	// Cell (40, 12) center on an 80x24 canvas
	if spawn.X != 40.5 || spawn.Y != 23 {
		t.Errorf("expected spawn at (40.5, 23), got (%v, %v)", spawn.X, spawn.Y)
	}
}

func TestMousePressOnBoxGrabs(t *testing.T) {
	h, ctx, queue := newTestHandler(t)
	ctx.World.RunSafe(func() {
		ctx.World.Spawn(core.ShapeSquare, core.SizeMedium, 0, 40.5, 23)
	})
	queue.Consume()

	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))

	types := drainTypes(queue)
	if !containsType(types, events.EventGrabRequest) {
		t.Error("expected a grab request when pressing on a box")
	}
	if containsType(types, events.EventSpawnRequest) {
		t.Error("pressing on a box must not spawn another")
	}
}

func TestMouseDragMovesPointer(t *testing.T) {
	h, ctx, _ := newTestHandler(t)

	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(45, 10, tcell.Button1, tcell.ModNone))

	px, py := ctx.Pointer()
	if px != 45.5 || py != 27 {
		t.Errorf("expected pointer at (45.5, 27), got (%v, %v)", px, py)
	}
}

func TestMouseReleaseDropsBox(t *testing.T) {
	h, ctx, queue := newTestHandler(t)

	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	queue.Consume()

	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.ButtonNone, tcell.ModNone))
	if ctx.PointerDown.Load() {
		t.Error("expected pointer released")
	}
	if !containsType(drainTypes(queue), events.EventReleaseRequest) {
		t.Error("expected a release request")
	}
}

func TestWheelCyclesSize(t *testing.T) {
	h, ctx, _ := newTestHandler(t)

	h.HandleEvent(tcell.NewEventMouse(10, 10, tcell.WheelUp, tcell.ModNone))
	if _, size, _ := ctx.Selection(); size != core.SizeLarge {
		t.Errorf("expected large after wheel up, got %v", size)
	}

	h.HandleEvent(tcell.NewEventMouse(10, 10, tcell.WheelDown, tcell.ModNone))
	if _, size, _ := ctx.Selection(); size != core.SizeMedium {
		t.Errorf("expected medium after wheel down, got %v", size)
	}
}

// TestHUDRowPressIgnored verifies the status row is not a touch surface
func TestHUDRowPressIgnored(t *testing.T) {
	h, ctx, queue := newTestHandler(t)
	queue.Consume()

	h.HandleEvent(tcell.NewEventMouse(40, 24, tcell.Button1, tcell.ModNone))

	if ctx.PointerDown.Load() {
		t.Error("expected no pointer hold from the HUD row")
	}
	if types := drainTypes(queue); len(types) != 0 {
		t.Errorf("expected no events from the HUD row, got %v", types)
	}
}

// TestOverlayMouseIgnored verifies the canvas is untouchable under menus
func TestOverlayMouseIgnored(t *testing.T) {
	h, ctx, queue := newTestHandler(t)

	press(h, 'm')
	queue.Consume()

	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	if ctx.PointerDown.Load() {
		t.Error("expected no pointer hold while the menu is open")
	}
	if types := drainTypes(queue); len(types) != 0 {
		t.Errorf("expected no events from mouse under menu, got %v", types)
	}
}

// TestMenuOpenReleasesHeldBox verifies a held box drops when an overlay opens
func TestMenuOpenReleasesHeldBox(t *testing.T) {
	h, ctx, queue := newTestHandler(t)

	h.HandleEvent(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	queue.Consume()

	press(h, 'm')
	if ctx.PointerDown.Load() {
		t.Error("expected pointer released when the menu opened")
	}
	if !containsType(drainTypes(queue), events.EventReleaseRequest) {
		t.Error("expected a release request when the menu opened")
	}
}

func TestPauseAndMuteToggles(t *testing.T) {
	h, ctx, _ := newTestHandler(t)

	press(h, ' ')
	if !ctx.IsPaused.Load() {
		t.Error("expected paused after space")
	}
	press(h, ' ')
	if ctx.IsPaused.Load() {
		t.Error("expected resumed after second space")
	}

	press(h, 'a')
	if !ctx.IsMuted.Load() {
		t.Error("expected muted after a")
	}
	press(h, 'a')
	if ctx.IsMuted.Load() {
		t.Error("expected unmuted after second a")
	}
}

func TestResizeRefitsWorld(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(100, 30)

	queue := events.NewEventQueue()
	world := engine.NewWorld(queue, engine.DefaultTuning(), 80, 48)
	ctx := engine.NewContext(world, queue, zap.NewNop(), 80, 25)
	orch := render.NewRenderOrchestrator(screen, 80, 25)
	h := NewHandler(ctx, orch)

	h.HandleEvent(tcell.NewEventResize(100, 30))

	if ctx.Width != 100 || ctx.Height != 30 {
		t.Errorf("expected context dims 100x30, got %dx%d", ctx.Width, ctx.Height)
	}

	var w, hgt float64
	world.RunSafe(func() {
		w, hgt = world.Width(), world.Height()
	})
	if w != 100 || hgt != 58 {
		t.Errorf("expected world 100x58 after resize, got %vx%v", w, hgt)
	}
}
