package renderers

import (
	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/render"
)

// ConfirmRenderer draws the reset confirmation dialog. The canvas is
// never cleared from a gesture directly; this prompt is the only path
type ConfirmRenderer struct {
	ctx *engine.Context
}

// NewConfirmRenderer creates the reset dialog renderer
func NewConfirmRenderer(ctx *engine.Context) *ConfirmRenderer {
	return &ConfirmRenderer{ctx: ctx}
}

// IsVisible implements VisibilityToggle
func (r *ConfirmRenderer) IsVisible() bool {
	return r.ctx.Mode() == core.ModeConfirm
}

// Render implements SystemRenderer
func (r *ConfirmRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	dimScreen(&ctx, buf)

	area := core.Centered(ctx.ScreenWidth, ctx.ScreenHeight, constants.ConfirmWidth, constants.ConfirmHeight)
	drawWindow(buf, area, " RESET ")

	writeCentered(buf, area, area.Y+2, "Clear all boxes?", render.RgbOverlayTitle)
	writeCentered(buf, area, area.Y+4, "[y] clear    [n] keep", render.RgbOverlayText)
}
