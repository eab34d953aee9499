package render

import (
	"github.com/lixenwraith/boxes/core"
)

// UI color definitions
var (
	RgbBackground = core.RGB{R: 18, G: 18, B: 24} // near-black canvas
	RgbStatusText = core.RGB{R: 220, G: 220, B: 220}
	RgbStatusDim  = core.RGB{R: 140, G: 140, B: 150}
	RgbStatusBg   = core.RGB{R: 35, G: 36, B: 48}
	RgbStatusMsg  = core.RGB{R: 255, G: 215, B: 0} // transient messages

	// Mode chip backgrounds
	RgbModeNormalBg  = core.RGB{R: 135, G: 206, B: 250} // light sky blue
	RgbModeMenuBg    = core.RGB{R: 144, G: 238, B: 144} // light grass green
	RgbModeConfirmBg = core.RGB{R: 255, G: 165, B: 0}   // orange
	RgbModePausedBg  = core.RGB{R: 186, G: 85, B: 211}  // violet

	// Audio chip backgrounds
	RgbAudioOn    = core.RGB{R: 60, G: 130, B: 60}
	RgbAudioMuted = core.RGB{R: 150, G: 60, B: 60}
	RgbAudioOff   = core.RGB{R: 70, G: 70, B: 78} // no device

	// Overlay windows
	RgbOverlayBg       = core.RGB{R: 28, G: 29, B: 40}
	RgbOverlayBorder   = core.RGB{R: 90, G: 95, B: 130}
	RgbOverlayTitle    = core.RGB{R: 255, G: 255, B: 255}
	RgbOverlayText     = core.RGB{R: 190, G: 190, B: 200}
	RgbOverlaySelected = core.RGB{R: 255, G: 215, B: 0}

	// Pointer glow while dragging
	RgbPointerGlow = core.RGB{R: 90, G: 90, B: 90}

	RgbBlack = core.RGB{}
	RgbWhite = core.RGB{R: 255, G: 255, B: 255}
)
