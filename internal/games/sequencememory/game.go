// Package sequencememory implements sequence memory: cells of a 3x3 grid
// flash in order and the player repeats the sequence. Every level appends one
// step; the first mismatch ends the round.
package sequencememory

import (
	"fmt"
	"time"

	"github.com/vovakirdan/mindgym/internal/board"
	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/games/gridview"
	"github.com/vovakirdan/mindgym/internal/registry"
)

var transitions = core.Transitions{
	core.PhaseReady:   {core.PhaseShowing},
	core.PhaseShowing: {core.PhasePlaying},
	core.PhasePlaying: {core.PhaseCorrect, core.PhaseFinished},
	core.PhaseCorrect: {core.PhaseShowing},
}

// Game implements sequence memory.
type Game struct {
	*core.Round

	cfg  config.SequenceMemoryConfig
	rng  core.RNG
	grid core.Grid

	seq      []int
	progress int // Steps repeated correctly this level
	lit      int // Cell currently lit, -1 for none
	cursor   int
	best     int // Longest sequence reproduced
}

func init() {
	registry.Register(string(core.KindSequenceMemory), func(cfg *config.Config) registry.Game {
		return New(cfg.SequenceMemory)
	})
}

// New creates a sequence memory game.
func New(cfg config.SequenceMemoryConfig) *Game {
	return &Game{
		Round: core.NewRound(string(core.KindSequenceMemory), transitions),
		cfg:   cfg,
		grid:  core.Square(cfg.Size),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return string(core.KindSequenceMemory) }

// Title returns the display name.
func (g *Game) Title() string { return "Sequence Memory" }

// Kind returns the score kind.
func (g *Game) Kind() core.Kind { return core.KindSequenceMemory }

// Reset prepares a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Round.Reset(0)
	g.rng = core.NewRNG(cfg.Seed)
	g.seq = nil
	g.progress = 0
	g.lit = -1
	g.cursor = g.grid.Cells() / 2
	g.best = 0
}

// Start plays the first one-step sequence.
func (g *Game) Start() {
	if !g.Is(core.PhaseReady) {
		return
	}
	g.StartClock()
	g.Notify(core.EventStart, 0)
	g.play()
}

// play extends the sequence to the current level and flashes it.
func (g *Game) play() {
	if !g.Go(core.PhaseShowing) {
		return
	}
	for len(g.seq) < g.Level {
		g.seq = board.Extend(g.seq, g.grid.Cells(), g.rng)
	}
	g.progress = 0
	g.lit = -1

	step := g.cfg.Flash + g.cfg.Gap
	for i, cell := range g.seq {
		cell := cell
		on := g.cfg.Gap + time.Duration(i)*step
		g.Later(on, func() { g.lit = cell })
		g.Later(on+g.cfg.Flash, func() { g.lit = -1 })
	}
	g.Later(time.Duration(len(g.seq))*step+g.cfg.Gap, func() {
		g.Go(core.PhasePlaying)
	})
}

// Submit handles cursor moves and picks. Picks are ignored while the
// sequence is being shown.
func (g *Game) Submit(in core.Input) {
	if g.Is(core.PhaseReady) && in.Action == core.ActionConfirm {
		g.Start()
		return
	}
	if !g.Is(core.PhasePlaying) {
		return
	}
	if cell, ok := gridview.Pick(in, g.grid, &g.cursor); ok {
		g.pick(cell)
	}
}

// pick checks one step. The first mismatch finishes the round at once.
func (g *Game) pick(cell int) {
	if cell != g.seq[g.progress] {
		g.Finish(g.score())
		return
	}

	g.progress++
	if g.progress < len(g.seq) {
		return
	}

	g.best = len(g.seq)
	g.Go(core.PhaseCorrect)
	g.Notify(core.EventCorrect, g.score())
	g.Later(g.cfg.Feedback, func() {
		g.Level++
		g.play()
		g.Notify(core.EventLevelUp, g.score())
	})
}

func (g *Game) score() float64 {
	return float64(g.best)
}

// Lit returns the cell currently flashing, or -1.
func (g *Game) Lit() int { return g.lit }

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
		st.Message = "Watch the cells flash, then repeat the order"
	case core.PhaseShowing:
		st.Message = "Watch..."
	case core.PhasePlaying:
		st.Message = fmt.Sprintf("Your turn: %d of %d", g.progress, len(g.seq))
	case core.PhaseCorrect:
		st.Message = "Correct!"
	case core.PhaseFinished:
		st.Message = fmt.Sprintf("Score: level %d", g.best)
	}
	return st
}

// Snapshot returns the round data; Cells marks the lit cell with 1 and
// Sequence is the full flash order.
func (g *Game) Snapshot() core.Snapshot {
	cells := make([]int, g.grid.Cells())
	if g.lit >= 0 {
		cells[g.lit] = 1
	}
	return core.Snapshot{
		State:    g.State(),
		Grid:     g.grid,
		Cells:    cells,
		Cursor:   g.cursor,
		Sequence: core.CopyInts(g.seq),
	}
}

// Render draws the board and status.
func (g *Game) Render(dst *core.Screen) {
	st := g.State()
	gridview.Header(dst, g.Title(), gridview.Status(
		fmt.Sprintf("Level %d", g.Level),
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

	cursor := g.cursor
	if g.Is(core.PhaseShowing) {
		cursor = -1
	}
	layout := gridview.Fit(dst, g.grid, 7)
	layout.Draw(dst, cursor, func(idx int) gridview.Cell {
		if idx == g.lit {
			return gridview.Cell{Fill: true, Color: core.ColorBrightCyan}
		}
		return gridview.Cell{Color: core.ColorBlue}
	})

	color := core.ColorGray
	if g.Is(core.PhaseCorrect) {
		color = core.ColorBrightGreen
	}
	gridview.Message(dst, st.Message, color)
	gridview.Footer(dst, "arrows: move   Enter: pick   Esc: back")
}
