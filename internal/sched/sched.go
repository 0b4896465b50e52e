// Package sched runs timers off a simulation clock instead of the wall clock.
//
// A Scheduler belongs to exactly one owner and is advanced from that owner's
// frame loop, so callbacks never race with the owner's state. Stopping the
// scheduler cancels every task, which guarantees no callback fires into an
// owner that has already been torn down.
package sched

import "time"

// Task is a scheduled callback. The zero value is not usable; obtain tasks
// from Scheduler.Every or Scheduler.After.
type Task struct {
	interval  time.Duration // 0 for one-shot tasks
	remaining time.Duration
	fn        func()
	cancelled bool
}

// Cancel prevents any further runs of the task. Safe to call more than once,
// including from inside the task's own callback.
func (t *Task) Cancel() {
	t.cancelled = true
}

// Cancelled reports whether the task was cancelled or has completed.
func (t *Task) Cancelled() bool {
	return t.cancelled
}

// Scheduler holds the tasks of one owner.
type Scheduler struct {
	tasks   []*Task
	stopped bool
	now     time.Duration
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Every registers fn to run once per elapsed interval. The first run happens
// one full interval after registration.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		panic("sched: interval must be positive")
	}
	return s.add(&Task{interval: interval, remaining: interval, fn: fn})
}

// After registers fn to run once, delay from now.
func (s *Scheduler) After(delay time.Duration, fn func()) *Task {
	return s.add(&Task{remaining: delay, fn: fn})
}

func (s *Scheduler) add(t *Task) *Task {
	if s.stopped {
		t.cancelled = true
		return t
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by dt and runs every callback that came due,
// in due-time order. A repeating task whose interval elapsed several times
// runs several times.
func (s *Scheduler) Advance(dt time.Duration) {
	if s.stopped || dt < 0 {
		return
	}
	end := s.now + dt

	for !s.stopped {
		next, wait := s.nextDue()
		if next == nil || s.now+wait > end {
			break
		}
		s.elapse(wait)

		if next.interval > 0 {
			next.remaining = next.interval
		} else {
			next.cancelled = true
		}
		next.fn()
	}

	if !s.stopped {
		s.elapse(end - s.now)
	}
	s.compact()
}

// nextDue returns the live task closest to firing and how long until it does.
// Ties go to the task registered first.
func (s *Scheduler) nextDue() (*Task, time.Duration) {
	var best *Task
	for _, t := range s.tasks {
		if t.cancelled {
			continue
		}
		if best == nil || t.remaining < best.remaining {
			best = t
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, best.remaining
}

func (s *Scheduler) elapse(d time.Duration) {
	s.now += d
	for _, t := range s.tasks {
		if !t.cancelled {
			t.remaining -= d
		}
	}
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	clear(s.tasks[len(live):])
	s.tasks = live
}

// Stop cancels all tasks. Later registrations are cancelled immediately and
// Advance becomes a no-op.
func (s *Scheduler) Stop() {
	s.stopped = true
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = nil
}

// Stopped reports whether Stop has been called.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Pending returns the number of live tasks.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Now returns the total simulated time advanced so far.
func (s *Scheduler) Now() time.Duration {
	return s.now
}
