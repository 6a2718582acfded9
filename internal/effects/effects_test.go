package effects

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mindgym/internal/core"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	if _, ok := r.Last(); ok {
		t.Error("empty recorder reported a last event")
	}

	r.Notify(core.Event{Kind: core.EventStart, GameID: "aim"})
	r.Notify(core.Event{Kind: core.EventCorrect, GameID: "aim"})
	r.Notify(core.Event{Kind: core.EventCorrect, GameID: "aim"})
	r.Notify(core.Event{Kind: core.EventFinished, GameID: "aim", Score: 312})

	if got := r.Count(core.EventCorrect); got != 2 {
		t.Errorf("Count(correct) = %d, expected 2", got)
	}
	kinds := r.Kinds()
	if len(kinds) != 4 || kinds[0] != core.EventStart || kinds[3] != core.EventFinished {
		t.Errorf("Kinds() = %v", kinds)
	}
	if last, _ := r.Last(); last.Score != 312 {
		t.Errorf("Last().Score = %v", last.Score)
	}

	r.Reset()
	if len(r.Events()) != 0 {
		t.Error("Reset() kept events")
	}
}

func TestBellRingsOnWrongAndFinished(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	for _, k := range []core.EventKind{core.EventStart, core.EventCorrect, core.EventLevelUp, core.EventTick} {
		b.Notify(core.Event{Kind: k})
	}
	if buf.Len() != 0 {
		t.Errorf("bell rang on quiet events: %q", buf.String())
	}

	b.Notify(core.Event{Kind: core.EventWrong})
	b.Notify(core.Event{Kind: core.EventFinished})
	if buf.String() != "\a\a" {
		t.Errorf("bell output = %q, expected two bells", buf.String())
	}
}

func TestMultiFansOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	m := Multi{a, nil, b}
	m.Notify(core.Event{Kind: core.EventWrong})

	if a.Count(core.EventWrong) != 1 || b.Count(core.EventWrong) != 1 {
		t.Error("Multi did not reach every sink")
	}
}

func TestLoggerWritesEvents(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel, Prefix: "test"})
	sink := NewLogger(l)

	sink.Notify(core.Event{Kind: core.EventCorrect, GameID: "chimp", Level: 5})
	sink.Notify(core.Event{Kind: core.EventFinished, GameID: "chimp", Score: 9})

	out := buf.String()
	if !strings.Contains(out, "game event") || !strings.Contains(out, "chimp") {
		t.Errorf("debug event missing from log: %q", out)
	}
	if !strings.Contains(out, "round finished") {
		t.Errorf("finished event missing from log: %q", out)
	}
}
