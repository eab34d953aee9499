package renderers

import (
	"testing"

	"go.uber.org/zap"

	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/events"
	"github.com/lixenwraith/boxes/render"
)

func newTestContext() *engine.Context {
	queue := events.NewEventQueue()
	world := engine.NewWorld(queue, engine.DefaultTuning(), 80, 48)
	ctx := engine.NewContext(world, queue, zap.NewNop(), 80, 25)
	ctx.SetPalette([]core.RGB{{R: 255}, {G: 255}, {B: 255}})
	return ctx
}

func renderOne(ctx *engine.Context, r render.SystemRenderer, buf *render.RenderBuffer) {
	rctx := render.NewRenderContext(ctx, false)
	ctx.World.RunSafe(func() {
		r.Render(rctx, ctx.World, buf)
	})
}

// TestBoxesRendererPaints verifies a spawned box reaches the buffer
func TestBoxesRendererPaints(t *testing.T) {
	ctx := newTestContext()
	ctx.World.RunSafe(func() {
		ctx.World.Spawn(core.ShapeSquare, core.SizeMedium, 0, 40, 24)
	})

	buf := render.NewRenderBuffer(80, 25)
	renderOne(ctx, NewBoxesRenderer(ctx), buf)

	// World (40, 24) is column 40, half-row 24, screen row 12
	cell := buf.Get(40, 12)
	if cell.Rune != '▀' {
		t.Fatalf("expected half block at box center, got %q", cell.Rune)
	}
	if cell.Fg != (core.RGB{R: 255}) {
		t.Errorf("expected palette color at center, got %+v", cell.Fg)
	}

	// Far corner stays untouched
	if got := buf.Get(2, 2); got.Rune != 0 {
		t.Errorf("expected empty cell away from box, got %q", got.Rune)
	}
}

// TestBoxesRendererCircleMissesCorner verifies shape outlines differ
func TestBoxesRendererCircleMissesCorner(t *testing.T) {
	ctx := newTestContext()
	ctx.World.RunSafe(func() {
		ctx.World.Spawn(core.ShapeCircle, core.SizeLarge, 1, 40, 24)
	})

	buf := render.NewRenderBuffer(80, 25)
	renderOne(ctx, NewBoxesRenderer(ctx), buf)

	// Center painted
	if buf.Get(40, 12).Rune != '▀' {
		t.Fatal("expected circle center painted")
	}

	// A large square would cover (44.5, 27.5); radius 4 circle does not:
	// distance from (40, 24) is sqrt(4.5^2+3.5^2) = 5.7
	proj := render.NewProjector(80, 24)
	col := proj.WorldColumn(44.5)
	row := proj.WorldRow(27.5)
	if buf.Get(col, row).Rune == '▀' {
		t.Error("expected cell outside circle radius to stay empty")
	}
}

// TestPointerRendererVisibility verifies glow only while the pointer is held
func TestPointerRendererVisibility(t *testing.T) {
	ctx := newTestContext()
	r := NewPointerRenderer(ctx)

	if r.IsVisible() {
		t.Error("expected pointer hidden before press")
	}
	ctx.PointerDown.Store(true)
	if !r.IsVisible() {
		t.Error("expected pointer visible while held")
	}
}

// TestPointerRendererMarksCell verifies the glow lands on the pointer cell
func TestPointerRendererMarksCell(t *testing.T) {
	ctx := newTestContext()
	ctx.PointerDown.Store(true)
	ctx.SetPointer(10.5, 37)

	buf := render.NewRenderBuffer(80, 25)
	renderOne(ctx, NewPointerRenderer(ctx), buf)

	if got := buf.Get(10, 5).Rune; got != '·' {
		t.Errorf("expected pointer mark at (10,5), got %q", got)
	}
}

// TestHUDRendererChips verifies the status row carries the fixed chips
func TestHUDRendererChips(t *testing.T) {
	ctx := newTestContext()

	buf := render.NewRenderBuffer(80, 25)
	renderOne(ctx, NewHUDRenderer(ctx), buf)

	// Audio chip leads the row
	if got := buf.Get(1, 24).Rune; got != 'A' {
		t.Errorf("expected audio chip at row start, got %q", got)
	}

	// Mode chip follows; the default mode text begins after the chip
	found := false
	for x := 0; x < 30; x++ {
		if buf.Get(x, 24).Rune == 'S' { // SANDBOX
			found = true
			break
		}
	}
	if !found {
		t.Error("expected mode text on HUD row")
	}
}

// TestMenuRendererVisibility verifies the picker only shows in menu mode
func TestMenuRendererVisibility(t *testing.T) {
	ctx := newTestContext()
	r := NewMenuRenderer(ctx)

	if r.IsVisible() {
		t.Error("expected menu hidden in sandbox mode")
	}
	ctx.SetMode(core.ModeMenu)
	if !r.IsVisible() {
		t.Error("expected menu visible in menu mode")
	}
}

// TestMenuRendererDrawsWindow verifies the overlay window lands centered
func TestMenuRendererDrawsWindow(t *testing.T) {
	ctx := newTestContext()
	ctx.SetMode(core.ModeMenu)

	buf := render.NewRenderBuffer(80, 25)
	renderOne(ctx, NewMenuRenderer(ctx), buf)

	// MenuWidth 44, MenuHeight 14 centered in 80x25: corner at (18, 5)
	if got := buf.Get(18, 5).Rune; got != '┌' {
		t.Errorf("expected window corner at (18,5), got %q", got)
	}
	if got := buf.Get(18+43, 5+13).Rune; got != '┘' {
		t.Errorf("expected window corner at (61,18), got %q", got)
	}
}

// TestConfirmRendererPrompt verifies the dialog text shows in confirm mode
func TestConfirmRendererPrompt(t *testing.T) {
	ctx := newTestContext()
	ctx.SetMode(core.ModeConfirm)

	r := NewConfirmRenderer(ctx)
	if !r.IsVisible() {
		t.Fatal("expected confirm dialog visible")
	}

	buf := render.NewRenderBuffer(80, 25)
	renderOne(ctx, r, buf)

	// ConfirmWidth 34, ConfirmHeight 7 centered in 80x25: corner (23, 9);
	// prompt row at y=11, text centered
	if got := buf.Get(32, 11).Rune; got != 'C' {
		t.Errorf("expected prompt text at (32,11), got %q", got)
	}
}

// TestGuardRendererVisibility verifies the resize hint on tiny terminals
func TestGuardRendererVisibility(t *testing.T) {
	queue := events.NewEventQueue()
	world := engine.NewWorld(queue, engine.DefaultTuning(), 10, 6)
	ctx := engine.NewContext(world, queue, zap.NewNop(), 10, 4)

	r := NewGuardRenderer(ctx)
	if !r.IsVisible() {
		t.Error("expected guard visible on a 10x4 terminal")
	}

	big := newTestContext()
	if NewGuardRenderer(big).IsVisible() {
		t.Error("expected guard hidden on a full-size terminal")
	}
}
