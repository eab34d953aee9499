package render

import (
	"github.com/lixenwraith/boxes/engine"
)

// SystemRenderer is implemented by anything with visual output.
// Render runs with the world lock held
type SystemRenderer interface {
	Render(ctx RenderContext, world *engine.World, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
