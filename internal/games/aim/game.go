// Package aim implements the aim trainer: hit a single target that jumps to
// a new cell after every hit. The score is the mean time between hits.
package aim

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/mindgym/internal/board"
	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/games/gridview"
	"github.com/vovakirdan/mindgym/internal/registry"
)

var transitions = core.Transitions{
	core.PhaseReady:   {core.PhasePlaying},
	core.PhasePlaying: {core.PhaseFinished},
}

// Game implements the aim trainer.
type Game struct {
	*core.Round

	cfg     config.AimConfig
	targets int // Hits required this round (the variant)
	grid    core.Grid
	rng     core.RNG

	target  int           // Cell holding the target
	shownAt time.Duration // Clock time the current target appeared
	cursor  int
	misses  int
}

func init() {
	registry.Register(string(core.KindAim), func(cfg *config.Config) registry.Game {
		return New(cfg.Aim)
	})
}

// New creates an aim trainer.
func New(cfg config.AimConfig) *Game {
	return &Game{
		Round:   core.NewRound(string(core.KindAim), transitions),
		cfg:     cfg,
		targets: cfg.Targets,
		grid:    core.NewGrid(cfg.Rows, cfg.Cols),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return string(core.KindAim) }

// Title returns the display name.
func (g *Game) Title() string { return "Aim Trainer" }

// Kind returns the score kind.
func (g *Game) Kind() core.Kind { return core.KindAim }

// Variants lists the selectable target counts, default first.
func (g *Game) Variants() []string {
	out := []string{strconv.Itoa(g.cfg.Targets)}
	for _, n := range g.cfg.TargetOptions {
		if n != g.cfg.Targets {
			out = append(out, strconv.Itoa(n))
		}
	}
	return out
}

// SetVariant selects the number of targets per round.
func (g *Game) SetVariant(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 500 {
		return fmt.Errorf("aim: invalid target count %q", v)
	}
	g.targets = n
	return nil
}

// Reset prepares a new round with the first target placed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Round.Reset(0)
	g.rng = core.NewRNG(cfg.Seed)
	g.target = g.rng.Intn(g.grid.Cells())
	g.cursor = g.grid.Cells() / 2
	g.shownAt = 0
	g.misses = 0
}

// Start begins the round; the first target is live from now on.
func (g *Game) Start() {
	if !g.Go(core.PhasePlaying) {
		return
	}
	g.StartClock()
	g.shownAt = g.Clock.Now()
	g.Notify(core.EventStart, 0)
}

// Submit handles cursor moves and picks.
func (g *Game) Submit(in core.Input) {
	if g.Is(core.PhaseReady) && in.Action == core.ActionConfirm {
		g.Start()
		return
	}
	if !g.Is(core.PhasePlaying) {
		return
	}

	cell, ok := gridview.Pick(in, g.grid, &g.cursor)
	if !ok {
		return
	}
	if cell != g.target {
		g.misses++
		g.Notify(core.EventWrong, g.score())
		return
	}

	g.Record(g.Clock.Now() - g.shownAt)
	if len(g.Timings) >= g.targets {
		g.Finish(g.score())
		return
	}
	g.Level++
	g.Notify(core.EventCorrect, g.score())

	g.target = board.Pick(g.grid.Cells(), g.target, g.rng)
	g.shownAt = g.Clock.Now()
}

// score is the mean time between hits in milliseconds.
func (g *Game) score() float64 {
	return core.Millis(g.MeanTiming())
}

// Hits returns the number of targets hit so far.
func (g *Game) Hits() int { return len(g.Timings) }

// Misses returns the number of picks that missed the target.
func (g *Game) Misses() int { return g.misses }

// State returns the presentation summary.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:   g.Phase(),
		Score:   g.score(),
		Level:   g.Level,
		Elapsed: g.Elapsed(),
		Variant: strconv.Itoa(g.targets),
	}
	switch g.Phase() {
	case core.PhaseReady:
		st.Message = fmt.Sprintf("Hit %d targets as fast as you can", g.targets)
	case core.PhasePlaying:
		st.Message = fmt.Sprintf("%d remaining", g.targets-len(g.Timings))
	case core.PhaseFinished:
		st.Message = fmt.Sprintf("Average %s per target, %d misses", core.KindAim.Format(st.Score), g.misses)
	}
	return st
}

// Snapshot returns the round data; Cells holds 1 at the target.
func (g *Game) Snapshot() core.Snapshot {
	cells := make([]int, g.grid.Cells())
	if !g.Is(core.PhaseFinished) {
		cells[g.target] = 1
	}
	return core.Snapshot{
		State:  g.State(),
		Grid:   g.grid,
		Cells:  cells,
		Cursor: g.cursor,
	}
}

// Render draws the board and status.
func (g *Game) Render(dst *core.Screen) {
	st := g.State()
	gridview.Header(dst, g.Title(), gridview.Status(
		fmt.Sprintf("Target %d/%d", core.Clamp(len(g.Timings)+1, 1, g.targets), g.targets),
		fmt.Sprintf("Avg %.0f ms", st.Score),
	))

	if g.Is(core.PhaseReady, core.PhaseFinished) {
		gridview.Center(dst, -1, st.Message, core.ColorWhite)
		if g.Is(core.PhaseReady) {
			gridview.Footer(dst, "Enter: start   arrows: aim   Esc: back")
		} else {
			gridview.Footer(dst, "R: play again   Esc: back")
		}
		return
	}

	layout := gridview.Fit(dst, g.grid, 5)
	layout.Draw(dst, g.cursor, func(idx int) gridview.Cell {
		if idx == g.target {
			return gridview.Cell{Label: "◎", Color: core.ColorBrightRed}
		}
		return gridview.Cell{Blank: true, Color: core.ColorGray}
	})
	gridview.Message(dst, st.Message, core.ColorGray)
	gridview.Footer(dst, "arrows: aim   Enter: shoot   Esc: back")
}
