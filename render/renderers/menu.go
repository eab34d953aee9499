package renderers

import (
	"fmt"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/render"
)

// MenuRenderer draws the centered picker overlay for shape, size, color
// and gravity mode
type MenuRenderer struct {
	ctx *engine.Context
}

// NewMenuRenderer creates the picker overlay renderer
func NewMenuRenderer(ctx *engine.Context) *MenuRenderer {
	return &MenuRenderer{ctx: ctx}
}

// IsVisible implements VisibilityToggle
func (r *MenuRenderer) IsVisible() bool {
	return r.ctx.Mode() == core.ModeMenu
}

// Render implements SystemRenderer
func (r *MenuRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	dimScreen(&ctx, buf)

	area := core.Centered(ctx.ScreenWidth, ctx.ScreenHeight, constants.MenuWidth, constants.MenuHeight)
	drawWindow(buf, area, " BOXES ")

	r.drawRow(buf, area, core.MenuRowShape, ctx.MenuRow, "Shape", ctx.SelKind.String())
	r.drawRow(buf, area, core.MenuRowSize, ctx.MenuRow, "Size", ctx.SelSize.String())
	r.drawColorRow(buf, area, ctx.MenuRow, &ctx)
	r.drawRow(buf, area, core.MenuRowGravity, ctx.MenuRow, "Gravity", world.GravityMode().String())

	writeCentered(buf, area, area.Y+area.Height-2,
		"j/k select   h/l adjust   m close", render.RgbStatusDim)
}

// rowY maps a menu row index to its screen row inside the window
func rowY(area core.Area, row core.MenuRow) int {
	return area.Y + 2 + int(row)*2
}

func (r *MenuRenderer) drawRow(buf *render.RenderBuffer, area core.Area, row, active core.MenuRow, label, value string) {
	y := rowY(area, row)
	labelFg := render.RgbOverlayText
	valueFg := render.RgbOverlayText
	if row == active {
		labelFg = render.RgbOverlaySelected
		valueFg = render.RgbOverlayTitle
		buf.SetBold(area.X+constants.OverlayPaddingX, y, '›', render.RgbOverlaySelected, render.RgbOverlayBg)
	}

	buf.WriteString(area.X+constants.OverlayPaddingX+2, y, label, labelFg, render.RgbOverlayBg)

	text := value
	if row == active {
		text = "◀ " + value + " ▶"
	}
	vx := area.X + area.Width - constants.OverlayPaddingX - runeLen(text) - 1
	buf.WriteString(vx, y, text, valueFg, render.RgbOverlayBg)
}

// drawColorRow renders the palette swatch with the selected index
func (r *MenuRenderer) drawColorRow(buf *render.RenderBuffer, area core.Area, active core.MenuRow, ctx *render.RenderContext) {
	y := rowY(area, core.MenuRowColor)
	labelFg := render.RgbOverlayText
	if active == core.MenuRowColor {
		labelFg = render.RgbOverlaySelected
		buf.SetBold(area.X+constants.OverlayPaddingX, y, '›', render.RgbOverlaySelected, render.RgbOverlayBg)
	}
	buf.WriteString(area.X+constants.OverlayPaddingX+2, y, "Color", labelFg, render.RgbOverlayBg)

	label := fmt.Sprintf("%d/%d", ctx.SelColor+1, len(ctx.Palette))
	swatchW := 4
	text := label
	vx := area.X + area.Width - constants.OverlayPaddingX - runeLen(text) - swatchW - 2
	if active == core.MenuRowColor {
		buf.WriteString(vx-2, y, "◀ ", render.RgbOverlayTitle, render.RgbOverlayBg)
	}

	color := ctx.PaletteColor(ctx.SelColor)
	for i := 0; i < swatchW; i++ {
		buf.SetWithBg(vx+i, y, '█', color, render.RgbOverlayBg)
	}
	buf.WriteString(vx+swatchW+1, y, text, render.RgbOverlayText, render.RgbOverlayBg)
	if active == core.MenuRowColor {
		buf.WriteString(area.X+area.Width-constants.OverlayPaddingX-1, y, "▶", render.RgbOverlayTitle, render.RgbOverlayBg)
	}
}
