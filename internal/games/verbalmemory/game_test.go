package verbalmemory

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/effects"
)

func newGame(seed int64) *Game {
	g := New(config.Default().VerbalMemory)
	g.Reset(core.RuntimeConfig{Seed: seed})
	g.Start()
	return g
}

// rightAnswer returns the correct judgment for the word on screen.
func rightAnswer(g *Game) Judgment {
	if g.shown[g.current] {
		return JudgeSeen
	}
	return JudgeNew
}

func wrongAnswer(g *Game) Judgment {
	if rightAnswer(g) == JudgeSeen {
		return JudgeNew
	}
	return JudgeSeen
}

func TestFinishesExactlyOnThirdWrong(t *testing.T) {
	g := newGame(1)
	rec := effects.NewRecorder()
	g.SetEffects(rec)

	// correct, wrong, correct, correct, wrong, correct, wrong
	script := []bool{true, false, true, true, false, true}
	for i, ok := range script {
		if ok {
			g.Judge(rightAnswer(g))
		} else {
			g.Judge(wrongAnswer(g))
		}
		if !g.Is(core.PhasePlaying) {
			t.Fatalf("step %d: phase = %s before the third wrong", i, g.Phase())
		}
	}
	if g.Lives != 1 {
		t.Fatalf("lives = %d after two wrongs", g.Lives)
	}

	g.Judge(wrongAnswer(g))
	if !g.Is(core.PhaseFinished) {
		t.Fatalf("phase = %s after the third wrong", g.Phase())
	}
	if g.State().Score != 4 {
		t.Errorf("score = %v, expected 4 correct judgments", g.State().Score)
	}
	if rec.Count(core.EventWrong) != 2 || rec.Count(core.EventFinished) != 1 {
		t.Errorf("events = %v", rec.Kinds())
	}

	// Judgments after the end are ignored
	g.Judge(rightAnswer(g))
	if g.State().Score != 4 {
		t.Error("judgment after finish changed the score")
	}
}

func TestFirstWordIsAlwaysNew(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newGame(seed)
		if g.shown[g.current] {
			t.Fatalf("seed %d: first word reported as seen", seed)
		}
	}
}

func TestSeenWordsComeBack(t *testing.T) {
	g := newGame(9)
	repeats := 0
	for i := 0; i < 60; i++ {
		if g.shown[g.current] {
			repeats++
		}
		g.Judge(rightAnswer(g))
	}
	if repeats == 0 {
		t.Error("no seen word was ever repeated")
	}
	if g.State().Score != 60 {
		t.Errorf("score = %v, expected 60", g.State().Score)
	}
}

func TestPoolExhaustionRepeatsSeenWords(t *testing.T) {
	cfg := config.Default().VerbalMemory
	cfg.Words = []string{"alpha", "beta", "gamma"}
	cfg.SeenRatio = 0
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 3})
	g.Start()

	for i := 0; i < 10; i++ {
		g.Judge(rightAnswer(g))
	}
	if !g.Is(core.PhasePlaying) || g.State().Score != 10 {
		t.Errorf("phase %s, score %v", g.Phase(), g.State().Score)
	}
}

func TestKeyMapping(t *testing.T) {
	g := newGame(4)
	g.Submit(core.Press(core.ActionNew)) // First word is new
	if g.State().Score != 1 {
		t.Errorf("score = %v after answering new to a new word", g.State().Score)
	}
}

func TestDeterminism(t *testing.T) {
	g1, g2 := newGame(5), newGame(5)
	for i := 0; i < 20; i++ {
		g1.Judge(rightAnswer(g1))
		g2.Judge(rightAnswer(g2))
	}
	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Error("same seed produced different word sequences")
	}
}
