package render

import (
	"github.com/lixenwraith/boxes/core"
)

// Cell is a single screen cell in the compositor buffer
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
	Bold bool
}
