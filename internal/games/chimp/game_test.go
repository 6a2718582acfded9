package chimp

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
)

func newGame(seed int64) *Game {
	g := New(config.Default().Chimp)
	g.Reset(core.RuntimeConfig{Seed: seed})
	g.Start()
	return g
}

// cellOf returns the cell holding number n.
func cellOf(t *testing.T, g *Game, n int) int {
	t.Helper()
	for i, v := range g.cells {
		if v == n {
			return i
		}
	}
	t.Fatalf("number %d not on the board", n)
	return -1
}

// clearLevel picks every number in order.
func clearLevel(t *testing.T, g *Game) {
	t.Helper()
	for n := 1; n <= g.count; n++ {
		g.Submit(core.Select(cellOf(t, g, n)))
	}
}

func TestLayoutPlacesStartCount(t *testing.T) {
	g := newGame(1)
	if !g.Is(core.PhaseShowing) {
		t.Fatalf("phase = %s, expected showing", g.Phase())
	}
	placed := 0
	for _, v := range g.cells {
		if v > 0 {
			placed++
		}
	}
	if placed != 4 {
		t.Errorf("placed %d numbers, expected 4", placed)
	}
}

func TestPickingOneHidesNumbers(t *testing.T) {
	g := newGame(2)
	g.Submit(core.Select(cellOf(t, g, 1)))
	if !g.Is(core.PhasePlaying) {
		t.Errorf("phase = %s after picking 1, expected playing", g.Phase())
	}
}

func TestClearingLevelAdvances(t *testing.T) {
	g := newGame(3)
	clearLevel(t, g)

	if !g.Is(core.PhaseCorrect) {
		t.Fatalf("phase = %s, expected correct", g.Phase())
	}
	if g.State().Score != 4 {
		t.Errorf("score = %v, expected 4", g.State().Score)
	}

	g.Advance(g.cfg.Feedback)
	if !g.Is(core.PhaseShowing) || g.count != 5 {
		t.Errorf("after feedback: phase %s, count %d", g.Phase(), g.count)
	}
}

func TestStrikesEndRound(t *testing.T) {
	g := newGame(4)
	clearLevel(t, g)
	g.Advance(g.cfg.Feedback)

	for strike := 1; strike <= 3; strike++ {
		wrong := cellOf(t, g, 2)
		g.Submit(core.Select(wrong))
		if strike < 3 {
			if !g.Is(core.PhaseWrong) {
				t.Fatalf("strike %d: phase = %s, expected wrong", strike, g.Phase())
			}
			g.Advance(g.cfg.Feedback)
			if !g.Is(core.PhaseShowing) || g.count != 5 {
				t.Fatalf("strike %d: retry should replay count 5, got %d in %s", strike, g.count, g.Phase())
			}
		}
	}

	if !g.Is(core.PhaseFinished) {
		t.Fatalf("phase = %s after 3 strikes", g.Phase())
	}
	if g.State().Score != 4 {
		t.Errorf("score = %v, expected the last completed count 4", g.State().Score)
	}
}

func TestFeedbackTimerCancelledOnReset(t *testing.T) {
	g := newGame(5)
	clearLevel(t, g)
	g.Reset(core.RuntimeConfig{Seed: 5})

	g.Advance(5 * time.Second)
	if !g.Is(core.PhaseReady) {
		t.Errorf("stale feedback timer fired after reset: phase %s", g.Phase())
	}
}

func TestDeterminism(t *testing.T) {
	g1, g2 := newGame(99), newGame(99)
	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("same seed produced different layouts")
	}
}
