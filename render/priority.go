package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBoxes RenderPriority = iota
	PriorityPointer
	PriorityHUD
	PriorityMenu
	PriorityConfirm
	PriorityGuard
)
