package engine

import "github.com/jon-m/adventure-machine/world"

// Scheduler is the cooperative per-location tick loop. It never spawns a
// goroutine: the host front end pumps Step from its own event loop, so a
// tick runs to completion before the next player command and vice versa.
type Scheduler struct {
	ticks   []world.TickFunc
	running bool
}

// NewScheduler creates a stopped, empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a tick callback. nil is ignored.
func (s *Scheduler) Add(fn world.TickFunc) {
	if fn != nil {
		s.ticks = append(s.ticks, fn)
	}
}

// Start marks the scheduler running. Idempotent.
func (s *Scheduler) Start() {
	s.running = true
}

// Stop cancels further iterations without clearing the registered list.
func (s *Scheduler) Stop() {
	s.running = false
}

// Clear stops the scheduler and empties the list.
func (s *Scheduler) Clear() {
	s.running = false
	s.ticks = nil
}

// Running reports whether the scheduler is marked running.
func (s *Scheduler) Running() bool { return s.running }

// Len returns the number of registered callbacks.
func (s *Scheduler) Len() int { return len(s.ticks) }

// Step runs one iteration: every callback registered at the top of the
// iteration is invoked once, in registration order, and callbacks that
// returned false are dropped after the pass. Callbacks may safely call
// Add, Start, Stop, or Clear on this scheduler mid-iteration; additions
// are picked up next Step, removals are applied from a collected set.
// Returns true while another iteration should be scheduled.
func (s *Scheduler) Step() bool {
	if !s.running || len(s.ticks) == 0 {
		return false
	}

	count := len(s.ticks)
	snapshot := make([]world.TickFunc, count)
	copy(snapshot, s.ticks)

	dropped := make(map[int]bool)
	for i, fn := range snapshot {
		if !fn() {
			dropped[i] = true
		}
	}

	// A mid-pass Clear wins over everything else.
	if len(s.ticks) == 0 {
		return false
	}

	kept := s.ticks[:0]
	for i, fn := range s.ticks {
		if i < count && dropped[i] {
			continue
		}
		kept = append(kept, fn)
	}
	s.ticks = kept

	return s.running && len(s.ticks) > 0
}
