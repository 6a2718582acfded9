// Package visualmemory implements visual memory: a set of tiles lights up
// briefly and has to be picked back from the dark grid. Levels add tiles and
// the grid grows at configured thresholds.
package visualmemory

import (
	"fmt"

	"github.com/vovakirdan/mindgym/internal/board"
	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/games/gridview"
	"github.com/vovakirdan/mindgym/internal/registry"
)

// Cell contents reported by Snapshot.
const (
	CellEmpty  = 0
	CellTarget = 1 // Lit tile not found yet
	CellFound  = 2
	CellMissed = 3 // Dark tile picked by mistake
)

var transitions = core.Transitions{
	core.PhaseReady:         {core.PhaseShowing},
	core.PhaseShowing:       {core.PhasePlaying},
	core.PhasePlaying:       {core.PhaseLevelComplete, core.PhaseWrong, core.PhaseFinished},
	core.PhaseLevelComplete: {core.PhaseShowing},
	core.PhaseWrong:         {core.PhaseShowing},
}

// Game implements visual memory.
type Game struct {
	*core.Round

	cfg  config.VisualMemoryConfig
	rng  core.RNG
	grid core.Grid

	cells     []int
	remaining int // Targets not found yet
	misses    int // Wrong picks this level
	cursor    int
	completed int // Levels completed
}

func init() {
	registry.Register(string(core.KindVisualMemory), func(cfg *config.Config) registry.Game {
		return New(cfg.VisualMemory)
	})
}

// New creates a visual memory game.
func New(cfg config.VisualMemoryConfig) *Game {
	return &Game{
		Round: core.NewRound(string(core.KindVisualMemory), transitions),
		cfg:   cfg,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return string(core.KindVisualMemory) }

// Title returns the display name.
func (g *Game) Title() string { return "Visual Memory" }

// Kind returns the score kind.
func (g *Game) Kind() core.Kind { return core.KindVisualMemory }

// Reset prepares a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Round.Reset(g.cfg.Lives)
	g.rng = core.NewRNG(cfg.Seed)
	g.grid = core.Square(g.cfg.GridSize(1))
	g.cells = make([]int, g.grid.Cells())
	g.remaining = 0
	g.misses = 0
	g.cursor = 0
	g.completed = 0
}

// Start lights the first level.
func (g *Game) Start() {
	if !g.Is(core.PhaseReady) {
		return
	}
	g.StartClock()
	g.Notify(core.EventStart, 0)
	g.show()
}

// show lays out the current level and lights its tiles for the display time.
func (g *Game) show() {
	if !g.Go(core.PhaseShowing) {
		return
	}
	g.grid = core.Square(g.cfg.GridSize(g.Level))
	g.cells = make([]int, g.grid.Cells())
	g.cursor = core.Clamp(g.cursor, 0, g.grid.Cells()-1)

	tiles := g.cfg.Tiles(g.Level)
	for _, cell := range board.Targets(g.grid, tiles, g.rng) {
		g.cells[cell] = CellTarget
	}
	g.remaining = tiles
	g.misses = 0

	g.Later(g.cfg.Show, func() { g.Go(core.PhasePlaying) })
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
	if cell, ok := gridview.Pick(in, g.grid, &g.cursor); ok {
		g.pick(cell)
	}
}

func (g *Game) pick(cell int) {
	switch g.cells[cell] {
	case CellFound, CellMissed:
		return // Already revealed
	case CellTarget:
		g.cells[cell] = CellFound
		g.remaining--
		if g.remaining == 0 {
			g.levelComplete()
		}
		return
	}

	g.cells[cell] = CellMissed
	g.misses++
	if g.misses < g.cfg.MissesPerLevel {
		return
	}

	if g.LoseLife() {
		g.Finish(g.score())
		return
	}
	g.Go(core.PhaseWrong)
	g.Notify(core.EventWrong, g.score())
	g.Later(g.cfg.Feedback, g.show)
}

func (g *Game) levelComplete() {
	g.completed = g.Level
	g.Go(core.PhaseLevelComplete)
	g.Notify(core.EventCorrect, g.score())

	g.Later(g.cfg.Feedback, func() {
		g.Level++
		g.show()
		g.Notify(core.EventLevelUp, g.score())
	})
}

func (g *Game) score() float64 {
	return float64(g.completed)
}

// State returns the presentation summary.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:   g.Phase(),
		Score:   g.score(),
		Level:   g.Level,
		Lives:   g.Lives,
		Elapsed: g.Elapsed(),
	}
	switch g.Phase() {
	case core.PhaseReady:
		st.Message = "Memorize the lit tiles, then pick them"
	case core.PhaseShowing:
		st.Message = "Memorize!"
	case core.PhasePlaying:
		st.Message = fmt.Sprintf("%d tiles left, %d of %d misses", g.remaining, g.misses, g.cfg.MissesPerLevel)
	case core.PhaseLevelComplete:
		st.Message = fmt.Sprintf("Level %d complete", g.Level)
	case core.PhaseWrong:
		st.Message = fmt.Sprintf("Too many misses. %d lives left", g.Lives)
	case core.PhaseFinished:
		st.Message = fmt.Sprintf("Score: level %d", g.completed)
	}
	return st
}

// Snapshot returns the round data; Cells uses the Cell* constants.
func (g *Game) Snapshot() core.Snapshot {
	return core.Snapshot{
		State:  g.State(),
		Grid:   g.grid,
		Cells:  core.CopyInts(g.cells),
		Cursor: g.cursor,
	}
}

// Render draws the board and status.
func (g *Game) Render(dst *core.Screen) {
	st := g.State()
	gridview.Header(dst, g.Title(), gridview.Status(
		fmt.Sprintf("Level %d", g.Level),
		fmt.Sprintf("Lives %d", g.Lives),
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

	showing := g.Is(core.PhaseShowing)
	cursor := g.cursor
	if showing {
		cursor = -1
	}
	layout := gridview.Fit(dst, g.grid, 5)
	layout.Draw(dst, cursor, func(idx int) gridview.Cell {
		switch g.cells[idx] {
		case CellTarget:
			if showing {
				return gridview.Cell{Fill: true, Color: core.ColorWhite}
			}
		case CellFound:
			return gridview.Cell{Fill: true, Color: core.ColorBrightGreen}
		case CellMissed:
			return gridview.Cell{Label: "x", Color: core.ColorRed}
		}
		return gridview.Cell{Color: core.ColorBlue}
	})

	color := core.ColorGray
	switch g.Phase() {
	case core.PhaseLevelComplete:
		color = core.ColorBrightGreen
	case core.PhaseWrong:
		color = core.ColorBrightRed
	}
	gridview.Message(dst, st.Message, color)
	gridview.Footer(dst, "arrows: move   Enter: pick   Esc: back")
}
