package renderers

import (
	"fmt"
	"time"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/render"
)

// HUDRenderer draws the status bar below the canvas
type HUDRenderer struct {
	ctx *engine.Context

	// FPS tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewHUDRenderer creates a status bar renderer
func NewHUDRenderer(ctx *engine.Context) *HUDRenderer {
	return &HUDRenderer{
		ctx:           ctx,
		lastFpsUpdate: time.Now(),
	}
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	r.frameCount++
	now := ctx.FrameTime
	if now.Sub(r.lastFpsUpdate) >= time.Second {
		r.currentFps = r.frameCount
		r.frameCount = 0
		r.lastFpsUpdate = now
	}

	y := ctx.CanvasHeight
	if y >= ctx.ScreenHeight {
		return
	}

	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.SetWithBg(x, y, ' ', render.RgbStatusText, render.RgbStatusBg)
	}

	x := 0

	// Audio chip
	audioBg := render.RgbAudioOff
	if ctx.AudioOn {
		if ctx.IsMuted {
			audioBg = render.RgbAudioMuted
		} else {
			audioBg = render.RgbAudioOn
		}
	}
	for _, ch := range constants.AudioStr {
		buf.SetWithBg(x, y, ch, render.RgbBlack, audioBg)
		x++
	}

	// Mode chip
	modeText := constants.ModeTextNormal
	modeBg := render.RgbModeNormalBg
	switch {
	case ctx.IsPaused:
		modeText = constants.ModeTextPaused
		modeBg = render.RgbModePausedBg
	case ctx.Mode == core.ModeMenu:
		modeText = constants.ModeTextMenu
		modeBg = render.RgbModeMenuBg
	case ctx.Mode == core.ModeConfirm:
		modeText = constants.ModeTextConfirm
		modeBg = render.RgbModeConfirmBg
	}
	for i, ch := range modeText {
		buf.SetBold(x+i, y, ch, render.RgbBlack, modeBg)
	}
	x += constants.ModeIndicatorWidth + 1

	// Spawn selection: shape glyph, size letter, color swatch
	buf.SetWithBg(x, y, shapeGlyph(ctx.SelKind), ctx.PaletteColor(ctx.SelColor), render.RgbStatusBg)
	x += 2
	buf.SetWithBg(x, y, rune(ctx.SelSize.String()[0]), render.RgbStatusText, render.RgbStatusBg)
	x += 2
	swatch := ctx.PaletteColor(ctx.SelColor)
	buf.SetWithBg(x, y, '█', swatch, render.RgbStatusBg)
	x++
	buf.SetWithBg(x, y, '█', swatch, render.RgbStatusBg)
	x += 2

	// Gravity mode, with the live tilt vector in tilt mode
	gravity := "G:" + world.GravityMode().String()
	if world.GravityMode() == core.GravityTilt {
		tilt := world.Tilt()
		gravity += fmt.Sprintf(" %+.2f,%+.2f", tilt.X, tilt.Y)
	}
	x = buf.WriteString(x, y, gravity, render.RgbStatusText, render.RgbStatusBg)
	x += 2

	x = buf.WriteString(x, y, fmt.Sprintf("Boxes:%d", world.Count()), render.RgbStatusText, render.RgbStatusBg)
	x += 2

	// Transient status message
	if ctx.Status != "" {
		buf.WriteString(x, y, ctx.Status, render.RgbStatusMsg, render.RgbStatusBg)
	}

	// FPS, right aligned
	fps := fmt.Sprintf("%dfps", r.currentFps)
	fx := ctx.ScreenWidth - len(fps) - 1
	if fx > x {
		buf.WriteString(fx, y, fps, render.RgbStatusDim, render.RgbStatusBg)
	}
}

func shapeGlyph(k core.ShapeKind) rune {
	switch k {
	case core.ShapeCircle:
		return '●'
	case core.ShapeTriangle:
		return '▲'
	default:
		return '■'
	}
}
