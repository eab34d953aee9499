package engine

import (
	"testing"
	"time"
)

// TestPausableClockFreezes verifies simulation time stops while paused
func TestPausableClockFreezes(t *testing.T) {
	pc := NewPausableClock()

	pc.Pause()
	frozen := pc.Now()
	time.Sleep(50 * time.Millisecond)

	if got := pc.Now(); !got.Equal(frozen) {
		t.Errorf("Expected frozen time %v, got %v", frozen, got)
	}

	if !pc.IsPaused() {
		t.Error("Expected clock to report paused")
	}
}

// TestPausableClockResumes verifies time advances again after resume
// and the pause gap is excluded from simulation time
func TestPausableClockResumes(t *testing.T) {
	pc := NewPausableClock()

	before := pc.Now()
	pc.Pause()
	time.Sleep(50 * time.Millisecond)
	pc.Resume()
	time.Sleep(20 * time.Millisecond)
	after := pc.Now()

	elapsed := after.Sub(before)
	if elapsed >= 50*time.Millisecond {
		t.Errorf("Expected pause gap excluded, simulation advanced %v", elapsed)
	}
	if elapsed <= 0 {
		t.Error("Expected simulation time to advance after resume")
	}

	if total := pc.TotalPauseDuration(); total < 40*time.Millisecond {
		t.Errorf("Expected at least 40ms tracked pause, got %v", total)
	}
}

// TestPausableClockDoublePause verifies redundant transitions are no-ops
func TestPausableClockDoublePause(t *testing.T) {
	pc := NewPausableClock()

	pc.Resume() // not paused, must not panic or skew
	pc.Pause()
	pc.Pause()
	pc.Resume()
	pc.Resume()

	if pc.IsPaused() {
		t.Error("Expected clock running after matched pause/resume")
	}
}
