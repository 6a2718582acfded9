// Package npuzzle implements the sliding puzzle. Boards come from the
// solvable shuffle in the board package; the score is the solve time.
package npuzzle

import (
	"fmt"
	"slices"
	"strconv"

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

// Game implements the sliding puzzle.
type Game struct {
	*core.Round

	cfg  config.NPuzzleConfig
	size int

	puzzle *board.Puzzle
	err    error // Shuffle failure, shown instead of a board
	moves  int
	cursor int
}

func init() {
	registry.Register(string(core.KindNPuzzle), func(cfg *config.Config) registry.Game {
		return New(cfg.NPuzzle)
	})
}

// New creates a sliding puzzle.
func New(cfg config.NPuzzleConfig) *Game {
	return &Game{
		Round: core.NewRound(string(core.KindNPuzzle), transitions),
		cfg:   cfg,
		size:  cfg.Size,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return string(core.KindNPuzzle) }

// Title returns the display name.
func (g *Game) Title() string { return "N-Puzzle" }

// Kind returns the score kind.
func (g *Game) Kind() core.Kind { return core.KindNPuzzle }

// Variants lists the selectable board sizes, default first.
func (g *Game) Variants() []string {
	out := []string{strconv.Itoa(g.cfg.Size)}
	for _, n := range g.cfg.Sizes {
		if n != g.cfg.Size {
			out = append(out, strconv.Itoa(n))
		}
	}
	return out
}

// SetVariant selects the board size. Takes effect on the next Reset.
func (g *Game) SetVariant(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || (n != g.cfg.Size && !slices.Contains(g.cfg.Sizes, n)) {
		return fmt.Errorf("npuzzle: unsupported size %q", v)
	}
	g.size = n
	return nil
}

// Reset shuffles a new board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Round.Reset(0)
	g.puzzle, g.err = board.Shuffle(g.size, core.NewRNG(cfg.Seed))
	g.moves = 0
	g.Level = 0
	g.cursor = 0
	if g.puzzle != nil {
		g.cursor = g.puzzle.Blank()
	}
}

// Start starts the clock.
func (g *Game) Start() {
	if g.puzzle == nil || !g.Go(core.PhasePlaying) {
		return
	}
	g.StartClock()
	g.Notify(core.EventStart, 0)
}

// Submit slides tiles. Directions move the tile next to the blank in that
// direction, Select moves the picked tile and Confirm moves the cursor tile.
// The first move starts the clock.
func (g *Game) Submit(in core.Input) {
	if g.puzzle == nil || g.Is(core.PhaseFinished) {
		return
	}
	if g.Is(core.PhaseReady) {
		if in.Action == core.ActionConfirm {
			g.Start()
			return
		}
		g.Start()
	}

	var moved bool
	switch {
	case in.Action.IsDirection():
		moved = g.puzzle.Slide(in.Action)
	case in.Action == core.ActionSelect:
		moved = g.puzzle.Move(in.Cell)
		g.cursor = in.Cell
	case in.Action == core.ActionConfirm:
		moved = g.puzzle.Move(g.cursor)
	}
	if !moved {
		return
	}

	g.moves++
	g.Level = g.moves
	if g.puzzle.Solved() {
		g.Finish(g.score())
		return
	}
	g.Notify(core.EventTick, 0)
}

// score is the solve time in seconds.
func (g *Game) score() float64 {
	return g.Elapsed().Seconds()
}

// Moves returns the number of tiles moved.
func (g *Game) Moves() int { return g.moves }

// Puzzle returns the current board.
func (g *Game) Puzzle() *board.Puzzle { return g.puzzle }

// State returns the presentation summary.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:   g.Phase(),
		Score:   g.score(),
		Level:   g.moves,
		Elapsed: g.Elapsed(),
		Variant: strconv.Itoa(g.size),
	}
	switch {
	case g.err != nil:
		st.Message = g.err.Error()
	case g.Is(core.PhaseReady):
		st.Message = "Slide the tiles into order"
	case g.Is(core.PhasePlaying):
		st.Message = fmt.Sprintf("%d moves", g.moves)
	case g.Is(core.PhaseFinished):
		st.Message = fmt.Sprintf("Solved in %s with %d moves", core.KindNPuzzle.Format(st.Score), g.moves)
	}
	return st
}

// Snapshot returns the round data; Cells holds the tile at each position, 0 for the blank.
func (g *Game) Snapshot() core.Snapshot {
	snap := core.Snapshot{State: g.State(), Cursor: g.cursor}
	if g.puzzle != nil {
		snap.Grid = g.puzzle.Grid()
		snap.Cells = g.puzzle.Order()
	}
	return snap
}

// Render draws the board and status.
func (g *Game) Render(dst *core.Screen) {
	st := g.State()
	gridview.Header(dst, g.Title(), gridview.Status(
		fmt.Sprintf("%dx%d", g.size, g.size),
		fmt.Sprintf("Moves %d", g.moves),
		fmt.Sprintf("%.1fs", st.Elapsed.Seconds()),
	))

	if g.puzzle == nil {
		gridview.Center(dst, 0, st.Message, core.ColorBrightRed)
		gridview.Footer(dst, "R: retry   Esc: back")
		return
	}

	order := g.puzzle.Order()
	solved := g.Is(core.PhaseFinished)
	layout := gridview.Fit(dst, g.puzzle.Grid(), 6)
	layout.Draw(dst, g.cursor, func(idx int) gridview.Cell {
		id := order[idx]
		switch {
		case id == 0:
			return gridview.Cell{Blank: true, Color: core.ColorGray}
		case solved:
			return gridview.Cell{Label: strconv.Itoa(id), Color: core.ColorBrightGreen}
		case id == idx+1:
			return gridview.Cell{Label: strconv.Itoa(id), Color: core.ColorBrightCyan}
		default:
			return gridview.Cell{Label: strconv.Itoa(id), Color: core.ColorWhite}
		}
	})

	gridview.Message(dst, st.Message, core.ColorGray)
	if solved {
		gridview.Footer(dst, "R: play again   Esc: back")
	} else {
		gridview.Footer(dst, "arrows: slide   Enter: move tile   Esc: back")
	}
}
