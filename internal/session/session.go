// Package session is the presentation-facing wrapper around one game. It owns
// the game's clock, injects the score store and effects, and records the
// result once when a round finishes.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/effects"
	"github.com/vovakirdan/mindgym/internal/registry"
	"github.com/vovakirdan/mindgym/internal/storage"
)

// Options configures a session. Every field is optional.
type Options struct {
	Store   storage.ScoreStore // Nil disables persistence
	Effects core.Effects       // Extra sink for game events
	Logger  *log.Logger
	Runtime core.RuntimeConfig // Seed 0 picks a time-based seed
}

// Session runs one game and persists its results.
type Session struct {
	game    registry.Game
	store   storage.ScoreStore
	log     *log.Logger
	runtime core.RuntimeConfig

	listeners []func(from, to core.Phase)

	saved   bool // The current round's result was handled
	result  storage.Result
	saveErr error
	closed  bool

	prevBest float64 // Stored best before the current round was saved
	hadBest  bool
}

// New wraps game and resets it for the first round.
func New(game registry.Game, opts Options) *Session {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		game:    game,
		store:   opts.Store,
		log:     logger.WithPrefix(game.ID()),
		runtime: opts.Runtime,
	}
	game.SetEffects(effects.Multi{finishSink{s}, opts.Effects})
	game.OnChange(s.changed)
	game.Reset(s.runtime)
	return s
}

// Game returns the wrapped game.
func (s *Session) Game() registry.Game { return s.game }

// Seed returns the seed of the current round.
func (s *Session) Seed() int64 { return s.runtime.Seed }

// Start leaves the ready phase.
func (s *Session) Start() {
	if s.closed {
		return
	}
	s.log.Debug("round started", "seed", s.runtime.Seed, "variant", s.game.State().Variant)
	s.game.Start()
}

// Submit forwards one player action.
func (s *Session) Submit(in core.Input) {
	if s.closed {
		return
	}
	s.game.Submit(in)
}

// Tick advances the game clock by dt.
func (s *Session) Tick(dt time.Duration) {
	if s.closed {
		return
	}
	s.game.Advance(dt)
}

// Restart begins a new round with the next seed.
func (s *Session) Restart() {
	if s.closed {
		return
	}
	s.runtime.Seed++
	s.saved = false
	s.result = storage.Result{}
	s.saveErr = nil
	s.prevBest, s.hadBest = 0, false
	s.game.Reset(s.runtime)
}

// Resize updates the screen dimensions used by later rounds.
func (s *Session) Resize(w, h int) {
	s.runtime.ScreenW = w
	s.runtime.ScreenH = h
}

// State returns the game's presentation summary.
func (s *Session) State() core.GameState { return s.game.State() }

// Snapshot returns a copy of the current round data.
func (s *Session) Snapshot() core.Snapshot { return s.game.Snapshot() }

// Render draws the game.
func (s *Session) Render(dst *core.Screen) { s.game.Render(dst) }

// OnChange registers a listener for phase transitions.
func (s *Session) OnChange(fn func(from, to core.Phase)) {
	s.listeners = append(s.listeners, fn)
}

// Result returns the stored result of the finished round, if it was saved.
func (s *Session) Result() (storage.Result, bool) {
	return s.result, s.result.ID != ""
}

// Persistent reports whether results are recorded in a store.
func (s *Session) Persistent() bool { return s.store != nil }

// NewBest reports whether the saved result beats every earlier one for the
// game and variant. A tie with the earlier best is not a new best.
func (s *Session) NewBest() bool {
	if _, ok := s.Result(); !ok {
		return false
	}
	return !s.hadBest || s.game.Kind().Better(s.result.Score, s.prevBest)
}

// SaveErr returns the error of the last failed save, if any.
func (s *Session) SaveErr() error { return s.saveErr }

// Best returns the stored best score for the game and its current variant.
func (s *Session) Best() (float64, bool) {
	if s.store == nil {
		return 0, false
	}
	best, ok, err := s.store.BestScore(s.game.Kind(), s.game.State().Variant)
	if err != nil {
		s.log.Warn("cannot load best score", "error", err)
		return 0, false
	}
	return best, ok
}

// Close cancels every pending timer. The session ignores input afterwards;
// the store is owned by the caller and stays open.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.game.Reset(s.runtime)
}

func (s *Session) changed(from, to core.Phase) {
	for _, fn := range s.listeners {
		fn(from, to)
	}
}

// save records the finished round once. Failures are logged and play goes on.
func (s *Session) save(score float64) {
	if s.saved || s.closed {
		return
	}
	s.saved = true

	variant := s.game.State().Variant
	s.log.Info("round finished", "score", s.game.Kind().Format(score), "variant", variant)
	if s.store == nil {
		return
	}

	s.prevBest, s.hadBest = s.Best()
	res, err := s.store.RecordResult(s.game.Kind(), score, variant)
	if err != nil {
		s.saveErr = err
		s.log.Error("cannot save result", "error", err)
		return
	}
	s.result = res
}

// finishSink saves the result when the game reports EventFinished.
type finishSink struct{ s *Session }

func (f finishSink) Notify(ev core.Event) {
	if ev.Kind == core.EventFinished {
		f.s.save(ev.Score)
	}
}
