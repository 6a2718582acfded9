package numbermemory

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
)

func newGame(seed int64) *Game {
	g := New(config.Default().NumberMemory)
	g.Reset(core.RuntimeConfig{Seed: seed})
	g.Start()
	return g
}

func typeAnswer(g *Game, s string) {
	for _, r := range s {
		g.Submit(core.Type(r))
	}
	g.Submit(core.Press(core.ActionConfirm))
}

func TestShowThenAsk(t *testing.T) {
	g := newGame(1)
	if !g.Is(core.PhaseShowing) || len(g.number) != 1 {
		t.Fatalf("phase %s, number %q", g.Phase(), g.number)
	}

	g.Advance(g.cfg.ShowTime(1) - time.Millisecond)
	if !g.Is(core.PhaseShowing) {
		t.Fatal("number hidden before its display time")
	}
	g.Advance(time.Millisecond)
	if !g.Is(core.PhasePlaying) {
		t.Fatalf("phase = %s after display time", g.Phase())
	}
}

func TestCorrectAnswersGrowTheNumber(t *testing.T) {
	g := newGame(2)
	for digits := 1; digits <= 4; digits++ {
		if len(g.number) != digits {
			t.Fatalf("level %d: number %q", digits, g.number)
		}
		g.Submit(core.Press(core.ActionConfirm)) // skip display
		typeAnswer(g, g.number)
		if !g.Is(core.PhaseCorrect) {
			t.Fatalf("level %d: phase %s", digits, g.Phase())
		}
		g.Advance(g.cfg.Feedback)
	}
	if g.State().Score != 4 {
		t.Errorf("score = %v, expected 4", g.State().Score)
	}
}

func TestWrongAnswerEndsRound(t *testing.T) {
	g := newGame(3)
	g.Submit(core.Press(core.ActionConfirm))
	typeAnswer(g, g.number)
	g.Advance(g.cfg.Feedback)

	g.Submit(core.Press(core.ActionConfirm))
	wrong := []rune(g.number)
	wrong[0] = '0' // Numbers never start with 0
	typeAnswer(g, string(wrong))

	if !g.Is(core.PhaseFinished) {
		t.Fatalf("phase = %s, expected finished with one life", g.Phase())
	}
	if g.State().Score != 1 {
		t.Errorf("score = %v, expected 1", g.State().Score)
	}
}

func TestNonNumericAnswerIsWrong(t *testing.T) {
	g := newGame(4)
	g.Submit(core.Press(core.ActionConfirm))
	typeAnswer(g, "x")
	if !g.Is(core.PhaseFinished) {
		t.Errorf("phase = %s, expected finished", g.Phase())
	}
}

func TestEraseAndSurroundingSpaces(t *testing.T) {
	g := newGame(5)
	g.Submit(core.Press(core.ActionConfirm))

	g.Submit(core.Type('9'))
	g.Submit(core.Type('9'))
	g.Submit(core.Press(core.ActionErase))
	g.Submit(core.Press(core.ActionErase))
	typeAnswer(g, " "+g.number+" ")

	if !g.Is(core.PhaseCorrect) {
		t.Errorf("phase = %s, expected correct", g.Phase())
	}
}

func TestExtraLifeRetriesSameLength(t *testing.T) {
	cfg := config.Default().NumberMemory
	cfg.Lives = 2
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 6})
	g.Start()

	g.Submit(core.Press(core.ActionConfirm))
	typeAnswer(g, "abc")
	if !g.Is(core.PhaseWrong) {
		t.Fatalf("phase = %s, expected wrong", g.Phase())
	}
	g.Advance(cfg.Feedback)
	if !g.Is(core.PhaseShowing) || g.digits != 1 {
		t.Errorf("retry: phase %s, digits %d", g.Phase(), g.digits)
	}
}

func TestDeterminism(t *testing.T) {
	g1, g2 := newGame(77), newGame(77)
	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("same seed produced different numbers")
	}
}
