// Package reaction implements the reaction time test: wait for the signal,
// then press as fast as possible. Pressing early restarts the attempt.
package reaction

import (
	"fmt"
	"time"

	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/games/gridview"
	"github.com/vovakirdan/mindgym/internal/registry"
)

var transitions = core.Transitions{
	core.PhaseReady:   {core.PhaseShowing},
	core.PhaseShowing: {core.PhasePlaying, core.PhaseWrong},
	core.PhasePlaying: {core.PhaseCorrect, core.PhaseFinished},
	core.PhaseCorrect: {core.PhaseShowing},
	core.PhaseWrong:   {core.PhaseShowing},
}

// Game implements the reaction time test. Showing is the random wait,
// playing is the signal.
type Game struct {
	*core.Round

	cfg config.ReactionConfig
	rng core.RNG

	signalAt time.Duration // Clock time the signal appeared
	early    int           // Presses before the signal
}

func init() {
	registry.Register(string(core.KindReaction), func(cfg *config.Config) registry.Game {
		return New(cfg.Reaction)
	})
}

// New creates a reaction time test.
func New(cfg config.ReactionConfig) *Game {
	return &Game{
		Round: core.NewRound(string(core.KindReaction), transitions),
		cfg:   cfg,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return string(core.KindReaction) }

// Title returns the display name.
func (g *Game) Title() string { return "Reaction Time" }

// Kind returns the score kind.
func (g *Game) Kind() core.Kind { return core.KindReaction }

// Reset prepares a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Round.Reset(0)
	g.rng = core.NewRNG(cfg.Seed)
	g.signalAt = 0
	g.early = 0
}

// Start begins the first wait.
func (g *Game) Start() {
	if !g.Is(core.PhaseReady) {
		return
	}
	g.StartClock()
	g.Notify(core.EventStart, 0)
	g.wait()
}

// wait schedules the signal after a random delay.
func (g *Game) wait() {
	if !g.Go(core.PhaseShowing) {
		return
	}
	g.Level = len(g.Timings) + 1
	g.Later(g.cfg.Wait(g.rng.Float64()), g.signal)
}

func (g *Game) signal() {
	if g.Go(core.PhasePlaying) {
		g.signalAt = g.Clock.Now()
		g.Notify(core.EventTick, g.score())
	}
}

// Submit treats Confirm and any cell pick as the reaction press.
func (g *Game) Submit(in core.Input) {
	if in.Action != core.ActionConfirm && in.Action != core.ActionSelect {
		return
	}

	switch g.Phase() {
	case core.PhaseReady:
		g.Start()
	case core.PhaseShowing:
		g.tooSoon()
	case core.PhasePlaying:
		g.press()
	}
}

// tooSoon cancels the pending signal; the attempt is retried, not counted.
func (g *Game) tooSoon() {
	g.early++
	g.Go(core.PhaseWrong)
	g.Notify(core.EventWrong, g.score())
	g.Later(g.cfg.Feedback, g.wait)
}

func (g *Game) press() {
	g.Record(g.Clock.Now() - g.signalAt)
	if len(g.Timings) >= g.cfg.Attempts {
		g.Finish(g.score())
		return
	}
	g.Go(core.PhaseCorrect)
	g.Notify(core.EventCorrect, g.score())
	g.Later(g.cfg.Feedback, g.wait)
}

// score is the mean reaction time in milliseconds.
func (g *Game) score() float64 {
	return core.Millis(g.MeanTiming())
}

// Early returns how many presses came before the signal.
func (g *Game) Early() int { return g.early }

func (g *Game) lastTiming() time.Duration {
	if len(g.Timings) == 0 {
		return 0
	}
	return g.Timings[len(g.Timings)-1]
}

// State returns the presentation summary.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:   g.Phase(),
		Score:   g.score(),
		Level:   g.Level,
		Elapsed: g.Elapsed(),
	}
	switch g.Phase() {
	case core.PhaseReady:
		st.Message = fmt.Sprintf("Press when the screen turns green. %d attempts", g.cfg.Attempts)
	case core.PhaseShowing:
		st.Message = "Wait for green..."
	case core.PhasePlaying:
		st.Message = "PRESS!"
	case core.PhaseCorrect:
		st.Message = fmt.Sprintf("%.0f ms", core.Millis(g.lastTiming()))
	case core.PhaseWrong:
		st.Message = "Too soon!"
	case core.PhaseFinished:
		st.Message = fmt.Sprintf("Average: %.0f ms", st.Score)
	}
	return st
}

// Snapshot returns the round data; Sequence holds the recorded times in ms.
func (g *Game) Snapshot() core.Snapshot {
	times := make([]int, len(g.Timings))
	for i, d := range g.Timings {
		times[i] = int(d / time.Millisecond)
	}
	return core.Snapshot{
		State:    g.State(),
		Cursor:   -1,
		Sequence: times,
	}
}

// Render fills the play area with the phase color.
func (g *Game) Render(dst *core.Screen) {
	st := g.State()
	gridview.Header(dst, g.Title(), gridview.Status(
		fmt.Sprintf("Attempt %d/%d", core.Clamp(g.Level, 1, g.cfg.Attempts), g.cfg.Attempts),
		fmt.Sprintf("Avg %.0f ms", st.Score),
	))

	var fill core.Color
	switch g.Phase() {
	case core.PhaseShowing:
		fill = core.ColorRed
	case core.PhasePlaying:
		fill = core.ColorGreen
	case core.PhaseWrong:
		fill = core.ColorOrange
	}
	if fill != core.ColorDefault {
		for y := 3; y < dst.Height()-3; y++ {
			for x := 2; x < dst.Width()-2; x++ {
				dst.SetColored(x, y, '░', fill)
			}
		}
	}

	gridview.Center(dst, 0, " "+st.Message+" ", core.ColorWhite)
	if g.Is(core.PhaseFinished) {
		gridview.Footer(dst, "R: play again   Esc: back")
	} else {
		gridview.Footer(dst, "Enter/Space: press   Esc: back")
	}
}
