package core

import (
	"sort"
	"time"
)

// Scheduler runs deferred and periodic callbacks on a virtual clock.
// The clock only moves when Advance is called, so all callbacks run on the
// caller's goroutine, in due-time order. The platform advances it once per tick;
// tests advance it directly.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	epoch uint64
	tasks map[uint64]*task
}

type task struct {
	id     uint64
	due    time.Duration
	period time.Duration // 0 for one-shot tasks
	fn     func()
}

// Token identifies a scheduled callback so it can be cancelled.
// The zero Token is valid and cancelling it is a no-op.
type Token struct {
	id    uint64
	epoch uint64
	s     *Scheduler
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks: make(map[uint64]*task),
	}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d after the current time.
func (s *Scheduler) After(d time.Duration, fn func()) Token {
	return s.add(d, 0, fn)
}

// Every schedules fn to run every period, starting one period from now.
func (s *Scheduler) Every(period time.Duration, fn func()) Token {
	if period <= 0 {
		period = time.Millisecond
	}
	return s.add(period, period, fn)
}

func (s *Scheduler) add(d, period time.Duration, fn func()) Token {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.tasks[s.seq] = &task{
		id:     s.seq,
		due:    s.now + d,
		period: period,
		fn:     fn,
	}
	return Token{id: s.seq, epoch: s.epoch, s: s}
}

// Cancel removes the callback. Cancelling twice, cancelling a fired one-shot
// callback, or cancelling after CancelAll is a no-op.
func (t Token) Cancel() {
	if t.s == nil || t.epoch != t.s.epoch {
		return
	}
	delete(t.s.tasks, t.id)
}

// Active reports whether the callback is still scheduled.
func (t Token) Active() bool {
	if t.s == nil || t.epoch != t.s.epoch {
		return false
	}
	_, ok := t.s.tasks[t.id]
	return ok
}

// CancelAll drops every pending callback. Tokens issued before the call
// become inert, so a stale token can never cancel a newer callback.
func (s *Scheduler) CancelAll() {
	s.epoch++
	s.tasks = make(map[uint64]*task)
}

// Pending returns the number of scheduled callbacks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves the clock forward by dt and runs every callback that falls due,
// including callbacks scheduled by other callbacks within the window.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt

	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		if t.period > 0 {
			t.due += t.period
		} else {
			delete(s.tasks, t.id)
		}
		t.fn()
	}

	s.now = target
}

// nextDue returns the earliest task due at or before limit.
// Ties are broken by scheduling order.
func (s *Scheduler) nextDue(limit time.Duration) *task {
	due := make([]*task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.due <= limit {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	return due[0]
}
