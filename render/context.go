package render

import (
	"time"

	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
)

// RenderContext provides frame state for renderers, passed by value.
// It snapshots the cross-goroutine atomics once per frame so all
// renderers in a frame see the same values
type RenderContext struct {
	FrameTime time.Time
	Frame     int64
	IsPaused  bool
	IsMuted   bool
	AudioOn   bool
	Mode      core.Mode

	// Pointer position in world units
	PointerX    float64
	PointerY    float64
	PointerDown bool

	// Current spawn selection
	SelKind  core.ShapeKind
	SelSize  core.SizeClass
	SelColor int

	// Active menu row
	MenuRow core.MenuRow

	// Transient status message, empty when expired
	Status string

	// Box color cycle
	Palette []core.RGB

	// Canvas dimensions in cells; canvas occupies rows [0, CanvasHeight)
	CanvasWidth  int
	CanvasHeight int

	ScreenWidth  int
	ScreenHeight int
	TooSmall     bool
}

// NewRenderContext snapshots the engine context for one frame.
// audioOn reports whether a playback device was opened
func NewRenderContext(ctx *engine.Context, audioOn bool) RenderContext {
	px, py := ctx.Pointer()
	kind, size, color := ctx.Selection()
	cols, rows := ctx.CanvasSize()

	return RenderContext{
		FrameTime: time.Now(),
		Frame:     ctx.FrameNumber.Load(),
		IsPaused:  ctx.IsPaused.Load(),
		IsMuted:   ctx.IsMuted.Load(),
		AudioOn:   audioOn,
		Mode:      ctx.Mode(),

		PointerX:    px,
		PointerY:    py,
		PointerDown: ctx.PointerDown.Load(),

		SelKind:  kind,
		SelSize:  size,
		SelColor: color,

		MenuRow: core.MenuRow(ctx.MenuRow.Load()),

		Status:  ctx.Status(),
		Palette: ctx.Palette(),

		CanvasWidth:  cols,
		CanvasHeight: rows,
		ScreenWidth:  ctx.Width,
		ScreenHeight: ctx.Height,
		TooSmall:     ctx.CanvasTooSmall(),
	}
}

// PaletteColor returns the palette entry for a color index, wrapping
// out-of-range indices
func (rc *RenderContext) PaletteColor(i int) core.RGB {
	if len(rc.Palette) == 0 {
		return RgbWhite
	}
	i %= len(rc.Palette)
	if i < 0 {
		i += len(rc.Palette)
	}
	return rc.Palette[i]
}
