package core

// Mode identifies which input surface owns key events
type Mode uint8

const (
	// ModeNormal is the sandbox canvas with direct spawn and drag
	ModeNormal Mode = iota

	// ModeMenu is the shape/size/color/gravity picker overlay
	ModeMenu

	// ModeConfirm is the reset confirmation dialog
	ModeConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeMenu:
		return "Menu"
	case ModeConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}
