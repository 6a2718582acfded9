package sequencememory

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/effects"
)

func newGame(seed int64) *Game {
	g := New(config.Default().SequenceMemory)
	g.Reset(core.RuntimeConfig{Seed: seed})
	g.Start()
	return g
}

// showTime is how long the flash phase of a sequence lasts.
func showTime(g *Game) time.Duration {
	return time.Duration(len(g.seq))*(g.cfg.Flash+g.cfg.Gap) + g.cfg.Gap
}

func repeat(g *Game) {
	for _, cell := range g.seq {
		g.Submit(core.Select(cell))
	}
}

func TestLevelKHasLengthK(t *testing.T) {
	g := newGame(1)
	for level := 1; level <= 5; level++ {
		if len(g.seq) != level {
			t.Fatalf("level %d: sequence length %d", level, len(g.seq))
		}
		g.Advance(showTime(g))
		if !g.Is(core.PhasePlaying) {
			t.Fatalf("level %d: phase %s after flashing", level, g.Phase())
		}
		prefix := append([]int(nil), g.seq...)
		repeat(g)
		if !g.Is(core.PhaseCorrect) {
			t.Fatalf("level %d: phase %s after repeating", level, g.Phase())
		}
		g.Advance(g.cfg.Feedback)

		// The next level keeps the previous steps
		for i := range prefix {
			if g.seq[i] != prefix[i] {
				t.Fatalf("level %d: sequence prefix changed", level)
			}
		}
	}
	if g.State().Score != 5 {
		t.Errorf("score = %v, expected 5", g.State().Score)
	}
}

func TestFlashesInOrder(t *testing.T) {
	g := newGame(2)
	for g.Level < 3 {
		g.Advance(showTime(g))
		repeat(g)
		g.Advance(g.cfg.Feedback)
	}

	var flashed []int
	tick := 10 * time.Millisecond
	last := -1
	for elapsed := time.Duration(0); elapsed < showTime(g); elapsed += tick {
		g.Advance(tick)
		if lit := g.Lit(); lit >= 0 && lit != last {
			flashed = append(flashed, lit)
		}
		last = g.Lit()
	}
	if !reflect.DeepEqual(flashed, g.seq) {
		t.Errorf("flashed %v, expected %v", flashed, g.seq)
	}
}

func TestFirstMismatchEndsImmediately(t *testing.T) {
	g := newGame(3)
	g.Advance(showTime(g))
	repeat(g)
	g.Advance(g.cfg.Feedback)
	g.Advance(showTime(g))

	rec := effects.NewRecorder()
	g.SetEffects(rec)

	wrong := (g.seq[0] + 1) % g.grid.Cells()
	g.Submit(core.Select(wrong))
	if !g.Is(core.PhaseFinished) {
		t.Fatalf("phase = %s after a mismatch", g.Phase())
	}

	// The rest of the sequence is never evaluated
	g.Submit(core.Select(g.seq[0]))
	g.Submit(core.Select(g.seq[1]))
	if g.progress != 0 {
		t.Errorf("progress = %d, picks after the mismatch were evaluated", g.progress)
	}
	if g.State().Score != 1 {
		t.Errorf("score = %v, expected 1", g.State().Score)
	}
	if rec.Count(core.EventFinished) != 1 || rec.Count(core.EventCorrect) != 0 {
		t.Errorf("events = %v", rec.Kinds())
	}
}

func TestMismatchMidSequence(t *testing.T) {
	g := newGame(4)
	for g.Level < 3 {
		g.Advance(showTime(g))
		repeat(g)
		g.Advance(g.cfg.Feedback)
	}
	g.Advance(showTime(g))

	g.Submit(core.Select(g.seq[0]))
	g.Submit(core.Select((g.seq[1] + 1) % g.grid.Cells()))
	if !g.Is(core.PhaseFinished) || g.State().Score != 2 {
		t.Errorf("phase %s, score %v", g.Phase(), g.State().Score)
	}
}

func TestPicksIgnoredWhileShowing(t *testing.T) {
	g := newGame(5)
	g.Submit(core.Select(g.seq[0]))
	if g.progress != 0 || !g.Is(core.PhaseShowing) {
		t.Error("pick accepted during flashing")
	}
}

func TestRestartCancelsFlashes(t *testing.T) {
	g := newGame(6)
	g.Reset(core.RuntimeConfig{Seed: 6})
	g.Advance(10 * time.Second)
	if g.Lit() != -1 || !g.Is(core.PhaseReady) {
		t.Errorf("stale flash fired after reset: lit %d, phase %s", g.Lit(), g.Phase())
	}
}

func TestDeterminism(t *testing.T) {
	g1, g2 := newGame(8), newGame(8)
	for i := 0; i < 4; i++ {
		g1.Advance(showTime(g1))
		g2.Advance(showTime(g2))
		repeat(g1)
		repeat(g2)
		g1.Advance(g1.cfg.Feedback)
		g2.Advance(g2.cfg.Feedback)
	}
	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("same seed produced different sequences")
	}
}
