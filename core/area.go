package core

// Area represents a rectangular screen region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Contains reports whether the cell (x, y) lies inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Centered returns an area of the given size centered inside (width, height),
// clamped to the top-left when it does not fit
func Centered(width, height, w, h int) Area {
	x := (width - w) / 2
	y := (height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Area{X: x, Y: y, Width: w, Height: h}
}
