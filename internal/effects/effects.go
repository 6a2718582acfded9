// Package effects provides sinks for game events: structured logging,
// the terminal bell, fan-out and an in-memory recorder for tests.
package effects

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mindgym/internal/core"
)

// Logger writes every event at debug level; finished rounds are logged at info.
type Logger struct {
	log *log.Logger
}

// NewLogger creates a logging sink.
func NewLogger(l *log.Logger) *Logger {
	return &Logger{log: l}
}

// Notify implements core.Effects.
func (l *Logger) Notify(ev core.Event) {
	if ev.Kind == core.EventFinished {
		l.log.Info("round finished", "game", ev.GameID, "level", ev.Level, "score", ev.Score)
		return
	}
	l.log.Debug("game event",
		"game", ev.GameID,
		"event", ev.Kind,
		"phase", ev.Phase,
		"level", ev.Level,
	)
}

// Bell rings the terminal bell on wrong answers and finished rounds.
type Bell struct {
	w io.Writer
}

// NewBell creates a bell writing to w (usually the terminal).
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Notify implements core.Effects.
func (b *Bell) Notify(ev core.Event) {
	switch ev.Kind {
	case core.EventWrong, core.EventFinished:
		b.w.Write([]byte("\a"))
	}
}

// Multi fans each event out to several sinks, in order.
type Multi []core.Effects

// Notify implements core.Effects.
func (m Multi) Notify(ev core.Event) {
	for _, e := range m {
		if e != nil {
			e.Notify(ev)
		}
	}
}

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []core.Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify implements core.Effects.
func (r *Recorder) Notify(ev core.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []core.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Event(nil), r.events...)
}

// Kinds returns the kinds of the recorded events, in order.
func (r *Recorder) Kinds() []core.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]core.EventKind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// Count returns how many events of the kind were recorded.
func (r *Recorder) Count(kind core.EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent event.
func (r *Recorder) Last() (core.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return core.Event{}, false
	}
	return r.events[len(r.events)-1], true
}

// Reset drops every recorded event.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

var (
	_ core.Effects = (*Logger)(nil)
	_ core.Effects = (*Bell)(nil)
	_ core.Effects = Multi(nil)
	_ core.Effects = (*Recorder)(nil)
)
