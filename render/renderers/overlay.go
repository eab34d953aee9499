package renderers

import (
	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/render"
)

// dimFactor fades the canvas behind overlay windows
const dimFactor = 0.35

// dimScreen fades every cell so the overlay stands out
func dimScreen(ctx *render.RenderContext, buf *render.RenderBuffer) {
	for y := 0; y < ctx.ScreenHeight; y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			buf.Dim(x, y, dimFactor)
		}
	}
}

// drawWindow fills an area with the overlay background and draws a
// border with the title centered on the top edge
func drawWindow(buf *render.RenderBuffer, area core.Area, title string) {
	right := area.X + area.Width - 1
	bottom := area.Y + area.Height - 1

	for y := area.Y; y <= bottom; y++ {
		for x := area.X; x <= right; x++ {
			var r rune
			switch {
			case y == area.Y && x == area.X:
				r = '┌'
			case y == area.Y && x == right:
				r = '┐'
			case y == bottom && x == area.X:
				r = '└'
			case y == bottom && x == right:
				r = '┘'
			case y == area.Y || y == bottom:
				r = '─'
			case x == area.X || x == right:
				r = '│'
			default:
				r = ' '
			}
			buf.SetWithBg(x, y, r, render.RgbOverlayBorder, render.RgbOverlayBg)
		}
	}

	if title != "" {
		tx := area.X + (area.Width-runeLen(title))/2
		for _, ch := range title {
			buf.SetBold(tx, area.Y, ch, render.RgbOverlayTitle, render.RgbOverlayBg)
			tx++
		}
	}
}

// writeCentered writes text centered within the area at the given row
func writeCentered(buf *render.RenderBuffer, area core.Area, y int, text string, fg core.RGB) {
	x := area.X + (area.Width-runeLen(text))/2
	buf.WriteString(x, y, text, fg, render.RgbOverlayBg)
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
