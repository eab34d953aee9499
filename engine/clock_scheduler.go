package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/events"
)

// ClockScheduler advances the simulation on a fixed tick: it drains the
// event queue, runs the systems, and steps the physics space.
// Handles pause-aware scheduling without busy-wait
type ClockScheduler struct {
	ctx   *Context
	world *World

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction

	// Tick counter for debugging and tests
	tickCount atomic.Uint64
	mu        sync.RWMutex

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Event routing
	router *events.Router[*World]
}

// NewClockScheduler creates a scheduler with the specified tick interval
func NewClockScheduler(ctx *Context, tickInterval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		ctx:          ctx,
		world:        ctx.World,
		tickInterval: tickInterval,
		router:       events.NewRouter[*World](ctx.Queue),
		stopChan:     make(chan struct{}),
	}
}

// RegisterSystems adds systems to the world in priority order and
// auto-registers the ones that consume events. Must be called before Start
func (cs *ClockScheduler) RegisterSystems(systems ...System) {
	for _, s := range systems {
		cs.world.AddSystem(s)
		if h, ok := s.(events.Handler[*World]); ok {
			cs.router.Register(h)
		}
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// core.Go for centralized crash handling with terminal cleanup
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	clock := cs.ctx.PausableClock

	cs.mu.Lock()
	cs.nextTickDeadline = clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.ctx.IsPaused.Load() {
			// Increase sleep interval while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			simNow := clock.Now()

			cs.mu.RLock()
			deadline := cs.nextTickDeadline
			cs.mu.RUnlock()

			if !simNow.Before(deadline) {
				cs.processTick()

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

				// When badly behind, snap forward instead of burst-ticking
				maxBehind := cs.tickInterval * 2
				if simNow.Sub(cs.nextTickDeadline) > maxBehind {
					cs.nextTickDeadline = simNow.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				cs.tickCount.Add(1)

				sleepDuration = deadline.Sub(clock.Now())
				if sleepDuration < 0 {
					sleepDuration = 0
				}
			} else {
				sleepDuration = deadline.Sub(simNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick() {
	if cs.ctx.IsPaused.Load() {
		return
	}

	cs.world.RunSafe(func() {
		// Process events (input -> systems), then run systems and step physics
		cs.router.DispatchAll(cs.world)
		cs.world.UpdateLocked(cs.tickInterval)
	})
}
