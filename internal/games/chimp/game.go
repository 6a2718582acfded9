// Package chimp implements the chimp test: numbers 1..n are flashed on a
// grid and must be picked in ascending order. The numbers hide as soon as
// 1 is picked.
package chimp

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/mindgym/internal/board"
	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/games/gridview"
	"github.com/vovakirdan/mindgym/internal/registry"
)

var transitions = core.Transitions{
	core.PhaseReady:   {core.PhaseShowing},
	core.PhaseShowing: {core.PhasePlaying, core.PhaseCorrect, core.PhaseWrong, core.PhaseFinished},
	core.PhasePlaying: {core.PhaseCorrect, core.PhaseWrong, core.PhaseFinished},
	core.PhaseCorrect: {core.PhaseShowing},
	core.PhaseWrong:   {core.PhaseShowing},
}

// Game implements the chimp test.
type Game struct {
	*core.Round

	cfg  config.ChimpConfig
	grid core.Grid
	rng  core.RNG

	count  int   // Numbers on the board this level
	cells  []int // Number at each cell, 0 when empty or already picked
	next   int   // Next number to pick
	cursor int
	best   int // Largest count completed
}

func init() {
	registry.Register(string(core.KindChimp), func(cfg *config.Config) registry.Game {
		return New(cfg.Chimp)
	})
}

// New creates a chimp test.
func New(cfg config.ChimpConfig) *Game {
	return &Game{
		Round: core.NewRound(string(core.KindChimp), transitions),
		cfg:   cfg,
		grid:  core.NewGrid(cfg.Rows, cfg.Cols),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return string(core.KindChimp) }

// Title returns the display name.
func (g *Game) Title() string { return "Chimp Test" }

// Kind returns the score kind.
func (g *Game) Kind() core.Kind { return core.KindChimp }

// Reset prepares a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Round.Reset(g.cfg.Strikes)
	g.rng = core.NewRNG(cfg.Seed)
	g.count = g.cfg.StartCount
	g.Level = g.count
	g.cells = make([]int, g.grid.Cells())
	g.next = 1
	g.cursor = 0
	g.best = 0
}

// Start lays out the first level.
func (g *Game) Start() {
	if !g.Is(core.PhaseReady) {
		return
	}
	g.StartClock()
	g.Notify(core.EventStart, 0)
	g.layout()
}

// layout places 1..count on the grid and enters the showing phase.
func (g *Game) layout() {
	if !g.Go(core.PhaseShowing) {
		return
	}
	for i := range g.cells {
		g.cells[i] = 0
	}
	for i, cell := range board.Targets(g.grid, g.count, g.rng) {
		g.cells[cell] = i + 1
	}
	g.next = 1
	g.Level = g.count
}

// Submit handles cursor moves and picks.
func (g *Game) Submit(in core.Input) {
	if g.Is(core.PhaseReady) && in.Action == core.ActionConfirm {
		g.Start()
		return
	}
	if !g.Is(core.PhaseShowing, core.PhasePlaying) {
		return
	}

	cell, ok := gridview.Pick(in, g.grid, &g.cursor)
	if !ok {
		return
	}
	g.pick(cell)
}

func (g *Game) pick(cell int) {
	if g.cells[cell] != g.next {
		g.fail()
		return
	}

	g.cells[cell] = 0
	g.next++

	if g.next > g.count {
		g.complete()
		return
	}
	if g.Is(core.PhaseShowing) {
		// Picking 1 hides the remaining numbers
		g.Go(core.PhasePlaying)
	}
}

// complete records the cleared level and schedules the next one.
func (g *Game) complete() {
	g.best = g.count
	if g.count >= g.grid.Cells() {
		g.Finish(g.score())
		return
	}
	g.Go(core.PhaseCorrect)
	g.Notify(core.EventCorrect, g.score())

	g.Later(g.cfg.Feedback, func() {
		g.count++
		g.layout()
		g.Notify(core.EventLevelUp, g.score())
	})
}

// fail costs a strike; the same count is replayed on a fresh layout.
func (g *Game) fail() {
	if g.LoseLife() {
		g.Finish(g.score())
		return
	}
	g.Go(core.PhaseWrong)
	g.Notify(core.EventWrong, g.score())

	g.Later(g.cfg.Feedback, g.layout)
}

func (g *Game) score() float64 {
	return float64(g.best)
}

// State returns the presentation summary.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:   g.Phase(),
		Score:   g.score(),
		Level:   g.count,
		Lives:   g.Lives,
		Elapsed: g.Elapsed(),
	}
	switch g.Phase() {
	case core.PhaseReady:
		st.Message = "Remember the numbers, then pick them in order"
	case core.PhaseShowing:
		st.Message = "Pick 1 to hide the numbers"
	case core.PhasePlaying:
		st.Message = fmt.Sprintf("Next: %d", g.next)
	case core.PhaseCorrect:
		st.Message = fmt.Sprintf("Cleared %d!", g.count)
	case core.PhaseWrong:
		st.Message = fmt.Sprintf("Wrong. %d strikes left", g.Lives)
	case core.PhaseFinished:
		st.Message = fmt.Sprintf("Score: %d numbers", g.best)
	}
	return st
}

// Snapshot returns the round data; Cells holds the number still on each cell.
func (g *Game) Snapshot() core.Snapshot {
	return core.Snapshot{
		State:  g.State(),
		Grid:   g.grid,
		Cells:  core.CopyInts(g.cells),
		Cursor: g.cursor,
		Text:   strconv.Itoa(g.next),
	}
}

// Render draws the board and status.
func (g *Game) Render(dst *core.Screen) {
	st := g.State()
	gridview.Header(dst, g.Title(), gridview.Status(
		fmt.Sprintf("Numbers %d", g.count),
		fmt.Sprintf("Strikes %d", g.Lives),
		fmt.Sprintf("Best %d", g.best),
	))

	if g.Is(core.PhaseReady, core.PhaseFinished) {
		gridview.Center(dst, -1, st.Message, core.ColorWhite)
		if g.Is(core.PhaseReady) {
			gridview.Footer(dst, "Enter: start   Esc: back")
		} else {
			gridview.Footer(dst, "R: play again   Esc: back")
		}
		return
	}

	layout := gridview.Fit(dst, g.grid, 5)
	hidden := g.Is(core.PhasePlaying)
	layout.Draw(dst, g.cursor, func(idx int) gridview.Cell {
		n := g.cells[idx]
		switch {
		case n == 0:
			return gridview.Cell{Blank: true, Color: core.ColorGray}
		case hidden:
			return gridview.Cell{Fill: true, Color: core.ColorWhite}
		default:
			return gridview.Cell{Label: strconv.Itoa(n), Color: core.ColorBrightCyan}
		}
	})

	color := core.ColorGray
	switch g.Phase() {
	case core.PhaseCorrect:
		color = core.ColorBrightGreen
	case core.PhaseWrong:
		color = core.ColorBrightRed
	}
	gridview.Message(dst, st.Message, color)
	gridview.Footer(dst, "arrows: move   Enter: pick   Esc: back")
}
