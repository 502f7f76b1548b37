// Package schedule provides frame-driven, fire-and-forget timers.
//
// Nothing runs on its own goroutine: the owner advances the scheduler from its
// frame loop and due callbacks fire inline, in deadline order.
package schedule

import (
	"sort"
	"time"
)

// timer is a pending callback.
type timer struct {
	due time.Duration
	seq uint64 // insertion order, breaks ties between equal deadlines
	fn  func()
}

// Scheduler fires callbacks once the accumulated elapsed time reaches their
// deadline. The zero value is not usable; call New.
type Scheduler struct {
	now     time.Duration
	nextSeq uint64
	pending []timer
}

// New creates an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run d after the current scheduler time.
// A non-positive d fires on the next Advance.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	s.pending = append(s.pending, timer{due: s.now + d, seq: s.nextSeq, fn: fn})
	s.nextSeq++
}

// Advance moves the clock forward by dt and fires every timer that has come
// due, in deadline order. While a callback runs, Now reports that timer's
// deadline, so timers it schedules are relative to it; those fire in the same
// call when they also fall within the advanced window.
func (s *Scheduler) Advance(dt time.Duration) {
	target := s.now
	if dt > 0 {
		target += dt
	}
	for {
		idx := s.nextDue(target)
		if idx < 0 {
			break
		}
		t := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		if t.due > s.now {
			s.now = t.due
		}
		t.fn()
	}
	s.now = target
}

// nextDue returns the index of the earliest timer due by target, or -1.
func (s *Scheduler) nextDue(target time.Duration) int {
	best := -1
	for i, t := range s.pending {
		if t.due > target {
			continue
		}
		if best < 0 || t.due < s.pending[best].due ||
			(t.due == s.pending[best].due && t.seq < s.pending[best].seq) {
			best = i
		}
	}
	return best
}

// Now returns the total time advanced so far.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers that have not fired yet.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Deadlines returns the pending deadlines in ascending order.
func (s *Scheduler) Deadlines() []time.Duration {
	out := make([]time.Duration, 0, len(s.pending))
	for _, t := range s.pending {
		out = append(out, t.due)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
