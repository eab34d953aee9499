package renderers

import (
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/render"
)

// PointerRenderer marks the cell under a held pointer with a soft glow,
// the touch feedback analog for mouse dragging
type PointerRenderer struct {
	ctx *engine.Context
}

// NewPointerRenderer creates the pointer glow renderer
func NewPointerRenderer(ctx *engine.Context) *PointerRenderer {
	return &PointerRenderer{ctx: ctx}
}

// IsVisible implements VisibilityToggle
func (r *PointerRenderer) IsVisible() bool {
	return r.ctx.PointerDown.Load()
}

// Render brightens the pointer cell without erasing box pixels
func (r *PointerRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	if ctx.CanvasWidth <= 0 || ctx.CanvasHeight <= 0 {
		return
	}
	proj := render.NewProjector(ctx.CanvasWidth, ctx.CanvasHeight)
	col := proj.WorldColumn(ctx.PointerX)
	row := proj.WorldRow(ctx.PointerY)
	if col < 0 || col >= ctx.CanvasWidth || row < 0 || row >= ctx.CanvasHeight {
		return
	}

	cell := buf.Get(col, row)
	if cell.Rune == '▀' {
		buf.SetWithBg(col, row, '▀',
			cell.Fg.Max(render.RgbPointerGlow),
			cell.Bg.Max(render.RgbPointerGlow))
		return
	}
	buf.SetWithBg(col, row, '·', render.RgbWhite,
		render.RgbBackground.Max(render.RgbPointerGlow))
}
