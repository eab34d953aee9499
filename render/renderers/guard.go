package renderers

import (
	"fmt"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/render"
)

// GuardRenderer replaces the frame with a resize hint when the terminal
// is too small to hold the canvas and HUD
type GuardRenderer struct {
	ctx *engine.Context
}

// NewGuardRenderer creates the minimum-size guard renderer
func NewGuardRenderer(ctx *engine.Context) *GuardRenderer {
	return &GuardRenderer{ctx: ctx}
}

// IsVisible implements VisibilityToggle
func (r *GuardRenderer) IsVisible() bool {
	return r.ctx.CanvasTooSmall()
}

// Render implements SystemRenderer
func (r *GuardRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	for y := 0; y < ctx.ScreenHeight; y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			buf.SetWithBg(x, y, ' ', render.RgbStatusText, render.RgbBackground)
		}
	}

	mid := ctx.ScreenHeight / 2
	center(buf, ctx.ScreenWidth, mid-1, "Terminal too small")
	center(buf, ctx.ScreenWidth, mid+1,
		fmt.Sprintf("Need at least %dx%d", constants.MinCanvasCols, constants.MinCanvasRows+constants.HUDRows))
}

func center(buf *render.RenderBuffer, width, y int, text string) {
	x := (width - runeLen(text)) / 2
	if x < 0 {
		x = 0
	}
	buf.WriteString(x, y, text, render.RgbStatusText, render.RgbBackground)
}
