package core

import "time"

// Round is the per-play-through state shared by every game: the phase machine,
// the scheduler, lives and level counters, the active-time clock and recorded
// timings. It is reset wholesale on restart.
type Round struct {
	Machine *Machine
	Clock   *Scheduler

	Level   int
	Lives   int
	Strikes int
	Timings []time.Duration

	gameID  string
	effects Effects
	bound   []Token // timers owned by the current phase

	running   bool
	startedAt time.Duration
	elapsed   time.Duration
}

// NewRound creates a round for the given game using its transition table.
func NewRound(gameID string, table Transitions) *Round {
	return &Round{
		Machine: NewMachine(table),
		Clock:   NewScheduler(),
		gameID:  gameID,
		effects: NopEffects{},
	}
}

// SetEffects injects the effects sink. A nil sink disables effects.
func (r *Round) SetEffects(e Effects) {
	if e == nil {
		e = NopEffects{}
	}
	r.effects = e
}

// OnChange registers a listener invoked after every phase transition.
// Listeners survive Reset.
func (r *Round) OnChange(fn func(from, to Phase)) {
	r.Machine.OnChange(fn)
}

// Reset cancels every pending timer and returns to PhaseReady with fresh counters.
func (r *Round) Reset(lives int) {
	r.Clock.CancelAll()
	r.Machine.Reset()
	r.bound = nil
	r.Level = 1
	r.Lives = lives
	r.Strikes = 0
	r.Timings = nil
	r.running = false
	r.startedAt = 0
	r.elapsed = 0
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.Machine.Phase()
}

// Is returns true if the round is in any of the given phases.
func (r *Round) Is(phases ...Phase) bool {
	return r.Machine.Is(phases...)
}

// Go transitions to the given phase. Timers bound to the phase being left are
// cancelled first, so a superseded countdown can never fire into the new phase.
// Entering PhaseFinished stops the clock and cancels everything.
// Returns false, leaving the round untouched, if the table forbids the move.
func (r *Round) Go(to Phase) bool {
	if !r.Machine.Can(to) {
		return false
	}
	for _, t := range r.bound {
		t.Cancel()
	}
	r.bound = nil

	if to == PhaseFinished {
		r.StopClock()
		r.Clock.CancelAll()
	}
	return r.Machine.To(to) == nil
}

// Later schedules a one-shot callback owned by the current phase.
func (r *Round) Later(d time.Duration, fn func()) Token {
	t := r.Clock.After(d, fn)
	r.bound = append(r.bound, t)
	return t
}

// Repeat schedules a periodic callback owned by the current phase.
func (r *Round) Repeat(period time.Duration, fn func()) Token {
	t := r.Clock.Every(period, fn)
	r.bound = append(r.bound, t)
	return t
}

// Advance moves the round's clock forward, firing due callbacks.
func (r *Round) Advance(dt time.Duration) {
	r.Clock.Advance(dt)
}

// StartClock starts accumulating active time.
func (r *Round) StartClock() {
	if r.running {
		return
	}
	r.running = true
	r.startedAt = r.Clock.Now()
}

// StopClock stops accumulating active time.
func (r *Round) StopClock() {
	if !r.running {
		return
	}
	r.elapsed += r.Clock.Now() - r.startedAt
	r.running = false
}

// Elapsed returns the accumulated active time.
func (r *Round) Elapsed() time.Duration {
	if r.running {
		return r.elapsed + r.Clock.Now() - r.startedAt
	}
	return r.elapsed
}

// LoseLife removes one life and reports whether the budget is exhausted.
func (r *Round) LoseLife() bool {
	if r.Lives > 0 {
		r.Lives--
	}
	return r.Lives == 0
}

// Record appends a timing sample.
func (r *Round) Record(d time.Duration) {
	r.Timings = append(r.Timings, d)
}

// MeanTiming returns the mean of the recorded timings, or 0 if none.
func (r *Round) MeanTiming() time.Duration {
	if len(r.Timings) == 0 {
		return 0
	}
	var sum time.Duration
	for _, t := range r.Timings {
		sum += t
	}
	return sum / time.Duration(len(r.Timings))
}

// Notify emits an event to the effects sink.
func (r *Round) Notify(kind EventKind, score float64) {
	r.effects.Notify(Event{
		Kind:   kind,
		GameID: r.gameID,
		Phase:  r.Phase(),
		Level:  r.Level,
		Score:  score,
	})
}

// Finish moves to PhaseFinished and emits EventFinished with the final score.
func (r *Round) Finish(score float64) {
	if r.Go(PhaseFinished) {
		r.Notify(EventFinished, score)
	}
}
