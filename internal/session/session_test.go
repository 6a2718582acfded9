package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/effects"
	"github.com/vovakirdan/mindgym/internal/games/aim"
	"github.com/vovakirdan/mindgym/internal/storage"
)

// newAim returns an aim trainer that finishes after two hits.
func newAim(t *testing.T) *aim.Game {
	t.Helper()
	g := aim.New(config.Default().Aim)
	if err := g.SetVariant("2"); err != nil {
		t.Fatal(err)
	}
	return g
}

// hit picks the current target after d.
func hit(s *Session, d time.Duration) {
	s.Tick(d)
	for i, c := range s.Snapshot().Cells {
		if c == 1 {
			s.Submit(core.Select(i))
			return
		}
	}
}

// play runs one full two-target round.
func play(s *Session) {
	s.Start()
	hit(s, 100*time.Millisecond)
	hit(s, 300*time.Millisecond)
}

// failingStore rejects every write.
type failingStore struct{ *storage.Memory }

var errDiskFull = errors.New("disk full")

func (failingStore) RecordResult(core.Kind, float64, string) (storage.Result, error) {
	return storage.Result{}, errDiskFull
}

func TestFinishedRoundSavedOnce(t *testing.T) {
	store := storage.NewMemory()
	s := New(newAim(t), Options{Store: store, Runtime: core.RuntimeConfig{Seed: 5}})
	play(s)

	if !s.State().GameOver() {
		t.Fatalf("phase = %s", s.State().Phase)
	}
	res, ok := s.Result()
	if !ok || res.Score != 200 || res.Variant != "2" || res.Kind != core.KindAim {
		t.Errorf("Result() = %+v, %v", res, ok)
	}

	// More input and time after the finish must not save again
	s.Submit(core.Press(core.ActionConfirm))
	s.Tick(time.Minute)

	hist, _ := store.History(core.KindAim, storage.AnyVariant, storage.Chronological)
	if len(hist) != 1 {
		t.Fatalf("%d results stored, expected 1", len(hist))
	}
	if best, ok := s.Best(); !ok || best != 200 {
		t.Errorf("Best() = %v, %v", best, ok)
	}
}

func TestRestartSavesEachRound(t *testing.T) {
	store := storage.NewMemory()
	s := New(newAim(t), Options{Store: store, Runtime: core.RuntimeConfig{Seed: 9}})
	play(s)
	s.Restart()

	if s.Seed() != 10 {
		t.Errorf("seed = %d after restart, expected 10", s.Seed())
	}
	if _, ok := s.Result(); ok {
		t.Error("restart kept the previous result")
	}
	if s.State().Phase != core.PhaseReady {
		t.Errorf("phase = %s after restart", s.State().Phase)
	}

	play(s)
	hist, _ := store.History(core.KindAim, "2", storage.Chronological)
	if len(hist) != 2 {
		t.Errorf("%d results stored over two rounds", len(hist))
	}
}

func TestNewBestComparesWithEarlierResults(t *testing.T) {
	store := storage.NewMemory()
	s := New(newAim(t), Options{Store: store, Runtime: core.RuntimeConfig{Seed: 6}})

	// First round: nothing to beat
	play(s)
	if !s.NewBest() {
		t.Error("first saved round should be a new best")
	}

	// Same timings tie the best, which is not a new best
	s.Restart()
	play(s)
	if s.NewBest() {
		t.Error("a tie with the earlier best was reported as a new best")
	}
	if best, ok := s.Best(); !ok || best != 200 {
		t.Errorf("Best() = %v, %v, expected 200 ms", best, ok)
	}

	// Faster hits lower the mean
	s.Restart()
	s.Start()
	hit(s, 100*time.Millisecond)
	hit(s, 100*time.Millisecond)
	if !s.NewBest() {
		t.Error("a faster round should be a new best")
	}

	s.Restart()
	if s.NewBest() {
		t.Error("NewBest() should reset with the round")
	}
}

func TestPersistentFollowsStore(t *testing.T) {
	if New(newAim(t), Options{}).Persistent() {
		t.Error("session without a store reported persistence")
	}
	if !New(newAim(t), Options{Store: storage.NewMemory()}).Persistent() {
		t.Error("session with a store reported no persistence")
	}
}

func TestSaveFailureIsLoggedAndPlayContinues(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	s := New(newAim(t), Options{
		Store:   failingStore{storage.NewMemory()},
		Logger:  logger,
		Runtime: core.RuntimeConfig{Seed: 1},
	})
	play(s)

	if !errors.Is(s.SaveErr(), errDiskFull) {
		t.Errorf("SaveErr() = %v", s.SaveErr())
	}
	if !strings.Contains(buf.String(), "cannot save result") {
		t.Errorf("save failure not logged: %q", buf.String())
	}

	s.Restart()
	play(s)
	if !s.State().GameOver() {
		t.Error("session stopped working after a failed save")
	}
}

func TestEffectsAndListeners(t *testing.T) {
	rec := effects.NewRecorder()
	s := New(newAim(t), Options{Effects: rec, Runtime: core.RuntimeConfig{Seed: 2}})

	var changes []core.Phase
	s.OnChange(func(_, to core.Phase) { changes = append(changes, to) })
	play(s)

	want := []core.EventKind{core.EventStart, core.EventCorrect, core.EventFinished}
	got := rec.Kinds()
	if len(got) != len(want) {
		t.Fatalf("events = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %s, expected %s", i, got[i], want[i])
		}
	}
	if len(changes) != 2 || changes[0] != core.PhasePlaying || changes[1] != core.PhaseFinished {
		t.Errorf("phase changes = %v", changes)
	}

	s.Restart()
	if len(changes) != 3 || changes[2] != core.PhaseReady {
		t.Errorf("phase changes after Restart() = %v, expected a final ready", changes)
	}
}

func TestNilStoreStillFinishes(t *testing.T) {
	s := New(newAim(t), Options{Runtime: core.RuntimeConfig{Seed: 3}})
	play(s)
	if !s.State().GameOver() || s.SaveErr() != nil {
		t.Errorf("phase %s, err %v", s.State().Phase, s.SaveErr())
	}
	if _, ok := s.Best(); ok {
		t.Error("Best() without a store should report nothing")
	}
}

func TestSeedZeroResolved(t *testing.T) {
	s := New(newAim(t), Options{})
	if s.Seed() == 0 {
		t.Error("seed 0 was not replaced")
	}
}

func TestCloseIgnoresInput(t *testing.T) {
	store := storage.NewMemory()
	s := New(newAim(t), Options{Store: store, Runtime: core.RuntimeConfig{Seed: 4}})
	s.Start()
	s.Close()
	play(s)

	if s.State().Phase != core.PhaseReady {
		t.Errorf("phase = %s after close", s.State().Phase)
	}
	if hist, _ := store.History(core.KindAim, storage.AnyVariant, storage.Chronological); len(hist) != 0 {
		t.Errorf("closed session saved %d results", len(hist))
	}
}
