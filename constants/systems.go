package constants

// System Update Priorities (lower values run first within a tick)
const (
	PrioritySpawn   = 10
	PriorityDrag    = 20
	PriorityGravity = 30
	PriorityReset   = 40
	PriorityTuning  = 50
	PriorityCull    = 60
	PriorityAudio   = 70
)
