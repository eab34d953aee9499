package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boxes/core"
)

// RenderBuffer is a compositor backed by a Cell array with touched tracking.
// Untouched cells receive the default background during flush, so renderers
// only write what they own.
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only when capacity is short
func (b *RenderBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: RgbStatusText, Bg: RgbBlack}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Size returns current buffer dimensions
func (b *RenderBuffer) Size() (width, height int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the current cell contents; zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace).
// The hot path for block and text rendering
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	dst.Rune = r
	dst.Fg = fg
	dst.Bg = bg
	dst.Bold = false
	b.touched[idx] = true
}

// SetBold writes a cell with explicit colors and the bold attribute
func (b *RenderBuffer) SetBold(x, y int, r rune, fg, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	dst.Rune = r
	dst.Fg = fg
	dst.Bg = bg
	dst.Bold = true
	b.touched[idx] = true
}

// SetFgOnly writes rune and foreground while preserving existing background.
// Does not mark the cell touched: the default background applies in flush
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	dst.Rune = r
	dst.Fg = fg
}

// SetBgOnly updates the background while preserving rune and foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x

	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// Dim scales both colors of a cell toward black. Used to fade the canvas
// behind overlay windows
func (b *RenderBuffer) Dim(x, y int, factor float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	if !b.touched[idx] {
		dst.Bg = RgbBackground
		b.touched[idx] = true
	}
	dst.Fg = dst.Fg.Scale(factor)
	dst.Bg = dst.Bg.Scale(factor)
}

// WriteString writes text horizontally starting at (x, y), clipped to bounds.
// Returns the x position after the last rune written
func (b *RenderBuffer) WriteString(x, y int, text string, fg, bg core.RGB) int {
	for _, r := range text {
		if x >= b.width {
			break
		}
		b.SetWithBg(x, y, r, fg, bg)
		x++
	}
	return x
}

// finalize applies the default background to untouched cells
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = RgbBackground
		}
	}
}

// Flush writes the buffer to the screen and shows the frame
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	b.finalize()

	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			cell := b.cells[row+x]
			style := tcell.StyleDefault.
				Foreground(toTcell(cell.Fg)).
				Background(toTcell(cell.Bg)).
				Bold(cell.Bold)
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
