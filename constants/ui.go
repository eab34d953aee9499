package constants

// UI Layout Constants
const (
	// ModeIndicatorWidth is the consistent width for all mode indicators
	ModeIndicatorWidth = 9

	// Mode indicator text (all padded to ModeIndicatorWidth)
	ModeTextNormal  = " SANDBOX "
	ModeTextMenu    = "  MENU   "
	ModeTextConfirm = " CONFIRM "
	ModeTextPaused  = " PAUSED  "

	// AudioStr is the audio mute indicator chip
	AudioStr = " AUD "
)

// Canvas Layout
const (
	// HUDRows is the number of rows reserved below the canvas for the
	// status bar
	HUDRows = 1

	// MinCanvasCols and MinCanvasRows are the smallest canvas the sandbox
	// renders into; smaller terminals show the resize hint instead
	MinCanvasCols = 20
	MinCanvasRows = 6
)

// Overlay Windows
const (
	// MenuWidth and MenuHeight are the picker overlay dimensions
	MenuWidth  = 44
	MenuHeight = 14

	// ConfirmWidth and ConfirmHeight are the reset dialog dimensions
	ConfirmWidth  = 34
	ConfirmHeight = 7

	// OverlayPaddingX is the horizontal inset between border and content
	OverlayPaddingX = 2
)
