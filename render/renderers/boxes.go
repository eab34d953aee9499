package renderers

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/render"
)

const (
	halfTop = 1 << 0
	halfBot = 1 << 1
)

// BoxesRenderer rasterizes the physics bodies into half-block cells.
// Each cell is two square pixels stacked vertically: the upper half block
// rune with fg as the top pixel and bg as the bottom one.
type BoxesRenderer struct {
	ctx *engine.Context

	// Per-cell scratch planes, reused across frames
	top []core.RGB
	bot []core.RGB
	set []uint8
}

// NewBoxesRenderer creates the box rasterizer
func NewBoxesRenderer(ctx *engine.Context) *BoxesRenderer {
	return &BoxesRenderer{ctx: ctx}
}

// Render samples every box into the half-block planes, then composites
// the planes into buffer cells. Boxes paint oldest first, so newer boxes
// overlap older ones
func (r *BoxesRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	cols, rows := ctx.CanvasWidth, ctx.CanvasHeight
	if cols <= 0 || rows <= 0 {
		return
	}

	size := cols * rows
	if cap(r.set) < size {
		r.top = make([]core.RGB, size)
		r.bot = make([]core.RGB, size)
		r.set = make([]uint8, size)
	} else {
		r.top = r.top[:size]
		r.bot = r.bot[:size]
		r.set = r.set[:size]
		for i := range r.set {
			r.set[i] = 0
		}
	}

	proj := render.NewProjector(cols, rows)
	grabbed := world.Grabbed()

	world.EachBox(func(b *engine.Box) {
		r.paint(b, b == grabbed, &ctx, proj)
	})

	for row := 0; row < rows; row++ {
		base := row * cols
		for col := 0; col < cols; col++ {
			flags := r.set[base+col]
			if flags == 0 {
				continue
			}
			topColor := render.RgbBackground
			botColor := render.RgbBackground
			if flags&halfTop != 0 {
				topColor = r.top[base+col]
			}
			if flags&halfBot != 0 {
				botColor = r.bot[base+col]
			}
			buf.SetWithBg(col, row, '▀', topColor, botColor)
		}
	}
}

// paint samples one box over its bounding region. Shading bands run in
// world space so the light always comes from above
func (r *BoxesRenderer) paint(b *engine.Box, grabbed bool, ctx *render.RenderContext, proj render.Projector) {
	pos := b.Position()
	h := b.HalfExtent()
	br := render.BoundingRadius(h)

	base := ctx.PaletteColor(b.Color)
	if grabbed {
		base = base.Lighten(0.3)
	} else if b.Sleeping() {
		base = base.Darken(0.25)
	}
	lit := base.Lighten(0.12)
	shade := base.Darken(0.15)

	minCol := proj.WorldColumn(pos.X - br)
	maxCol := proj.WorldColumn(pos.X + br)
	minHalf := proj.WorldHalf(pos.Y + br)
	maxHalf := proj.WorldHalf(pos.Y - br)

	if minCol < 0 {
		minCol = 0
	}
	if maxCol >= proj.Cols {
		maxCol = proj.Cols - 1
	}
	if minHalf < 0 {
		minHalf = 0
	}
	if maxHalf >= proj.Rows*2 {
		maxHalf = proj.Rows*2 - 1
	}

	for half := minHalf; half <= maxHalf; half++ {
		row := half / 2
		sub := half % 2
		for col := minCol; col <= maxCol; col++ {
			wx, wy := proj.HalfCenter(col, half)
			local := b.LocalPoint(cp.Vector{X: wx, Y: wy})
			if !render.ContainsLocal(b.Kind, h, local) {
				continue
			}

			color := base
			if dy := wy - pos.Y; dy > h*0.35 {
				color = lit
			} else if dy < -h*0.35 {
				color = shade
			}

			idx := row*proj.Cols + col
			if sub == 0 {
				r.top[idx] = color
				r.set[idx] |= halfTop
			} else {
				r.bot[idx] = color
				r.set[idx] |= halfBot
			}
		}
	}
}
