package lastcircle

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
)

func newGame(seed int64) *Game {
	g := New(config.Default().LastCircle)
	g.Reset(core.RuntimeConfig{Seed: seed})
	g.Start()
	return g
}

// watch advances until the answer phase.
func watch(t *testing.T, g *Game) {
	t.Helper()
	g.Advance(time.Duration(g.count+1) * g.cfg.Interval)
	if !g.Is(core.PhasePlaying) {
		t.Fatalf("phase = %s after watching %d circles", g.Phase(), g.count)
	}
}

// wrongCell returns a visible circle that is not the last one.
func wrongCell(g *Game) int {
	return g.order[0]
}

func TestCirclesAppearOneAtATime(t *testing.T) {
	g := newGame(1)
	for i := 1; i <= g.count; i++ {
		g.Advance(g.cfg.Interval)
		if g.shown != i {
			t.Fatalf("after %d intervals %d circles visible", i, g.shown)
		}
		if !g.Is(core.PhaseShowing) {
			t.Fatalf("phase = %s while circles still appearing", g.Phase())
		}
	}
	g.Advance(g.cfg.Interval)
	if !g.Is(core.PhasePlaying) {
		t.Errorf("phase = %s after the last circle", g.Phase())
	}

	snap := g.Snapshot()
	if len(snap.Sequence) != 3 || snap.Sequence[2] != g.Last() {
		t.Errorf("sequence %v, last %d", snap.Sequence, g.Last())
	}
	visible := 0
	for _, c := range snap.Cells {
		visible += c
	}
	if visible != 3 {
		t.Errorf("%d circles on the board", visible)
	}
}

func TestPickIgnoredWhileShowing(t *testing.T) {
	g := newGame(2)
	g.Advance(g.cfg.Interval * 3)
	g.Submit(core.Select(g.Last()))
	if !g.Is(core.PhaseShowing) || g.best != 0 {
		t.Errorf("phase %s, best %d", g.Phase(), g.best)
	}
}

func TestCorrectAddsCircle(t *testing.T) {
	g := newGame(3)
	watch(t, g)
	g.Submit(core.Select(g.Last()))
	if !g.Is(core.PhaseCorrect) || g.State().Score != 3 {
		t.Fatalf("phase %s, score %v", g.Phase(), g.State().Score)
	}
	g.Advance(g.cfg.Feedback)
	if g.count != 4 || len(g.order) != 4 {
		t.Errorf("count %d, order %v", g.count, g.order)
	}
}

func TestEmptyCellIgnored(t *testing.T) {
	g := newGame(4)
	watch(t, g)
	empty := 0
	for g.visible(empty) {
		empty++
	}
	g.Submit(core.Select(empty))
	if !g.Is(core.PhasePlaying) || g.Lives != 3 {
		t.Errorf("phase %s, lives %d", g.Phase(), g.Lives)
	}
}

func TestWrongRetriesThenFinishes(t *testing.T) {
	g := newGame(5)
	watch(t, g)
	g.Submit(core.Select(g.Last()))
	g.Advance(g.cfg.Feedback)

	for i := 1; i <= 3; i++ {
		watch(t, g)
		g.Submit(core.Select(wrongCell(g)))
		if i < 3 {
			if !g.Is(core.PhaseWrong) || g.Lives != 3-i {
				t.Fatalf("miss %d: phase %s, lives %d", i, g.Phase(), g.Lives)
			}
			g.Advance(g.cfg.Feedback)
			if g.count != 4 {
				t.Fatalf("count changed to %d after a miss", g.count)
			}
		}
	}
	if !g.Is(core.PhaseFinished) {
		t.Fatalf("phase = %s after three misses", g.Phase())
	}
	if got := g.State().Score; got != 3 {
		t.Errorf("score = %v, expected 3", got)
	}
}

func TestVariants(t *testing.T) {
	g := New(config.Default().LastCircle)
	if got := g.Variants(); !reflect.DeepEqual(got, []string{"3", "4", "5", "6"}) {
		t.Errorf("Variants() = %v", got)
	}
	if err := g.SetVariant("1"); err == nil {
		t.Error("start count 1 should be rejected")
	}
	if err := g.SetVariant("5"); err != nil {
		t.Fatal(err)
	}
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.Start()
	if len(g.order) != 5 {
		t.Errorf("first level has %d circles", len(g.order))
	}
}

func TestDeterminism(t *testing.T) {
	g1, g2 := newGame(42), newGame(42)
	watch(t, g1)
	watch(t, g2)
	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("same seed produced different rounds")
	}
}
