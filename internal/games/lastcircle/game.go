// Package lastcircle implements last circle: identical circles appear on the
// grid one at a time, and once they are all out the player picks the one that
// appeared last. Each correct answer adds a circle.
package lastcircle

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
	core.PhaseShowing: {core.PhasePlaying},
	core.PhasePlaying: {core.PhaseCorrect, core.PhaseWrong, core.PhaseFinished},
	core.PhaseCorrect: {core.PhaseShowing},
	core.PhaseWrong:   {core.PhaseShowing},
}

// Game implements last circle.
type Game struct {
	*core.Round

	cfg   config.LastCircleConfig
	start int // Circles in the first level (the variant)
	grid  core.Grid
	rng   core.RNG

	count  int   // Circles this level
	order  []int // Cells in appearance order
	shown  int   // Circles visible so far
	picked int   // Cell picked in the last answer, -1 if none
	cursor int
	best   int
}

func init() {
	registry.Register(string(core.KindLastCircle), func(cfg *config.Config) registry.Game {
		return New(cfg.LastCircle)
	})
}

// New creates a last circle game.
func New(cfg config.LastCircleConfig) *Game {
	return &Game{
		Round: core.NewRound(string(core.KindLastCircle), transitions),
		cfg:   cfg,
		start: cfg.StartCount,
		grid:  core.NewGrid(cfg.Rows, cfg.Cols),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return string(core.KindLastCircle) }

// Title returns the display name.
func (g *Game) Title() string { return "Last Circle" }

// Kind returns the score kind.
func (g *Game) Kind() core.Kind { return core.KindLastCircle }

// Variants lists the selectable starting counts, default first.
func (g *Game) Variants() []string {
	out := []string{strconv.Itoa(g.cfg.StartCount)}
	for _, n := range g.cfg.StartOptions {
		if n != g.cfg.StartCount {
			out = append(out, strconv.Itoa(n))
		}
	}
	return out
}

// SetVariant selects the number of circles in the first level.
func (g *Game) SetVariant(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n < 2 || n > g.grid.Cells() {
		return fmt.Errorf("last-circle: invalid start count %q", v)
	}
	g.start = n
	return nil
}

// Reset prepares a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Round.Reset(g.cfg.Lives)
	g.rng = core.NewRNG(cfg.Seed)
	g.count = g.start
	g.Level = g.count
	g.order = nil
	g.shown = 0
	g.picked = -1
	g.cursor = 0
	g.best = 0
}

// Start shows the first level.
func (g *Game) Start() {
	if !g.Is(core.PhaseReady) {
		return
	}
	g.StartClock()
	g.Notify(core.EventStart, 0)
	g.show()
}

// show places the circles and reveals them one per interval. The answer
// phase starts one interval after the last circle appears.
func (g *Game) show() {
	if !g.Go(core.PhaseShowing) {
		return
	}
	g.Level = g.count
	g.order = board.Targets(g.grid, g.count, g.rng)
	g.shown = 0
	g.picked = -1

	g.Repeat(g.cfg.Interval, func() {
		if g.shown < len(g.order) {
			g.shown++
			return
		}
		g.Go(core.PhasePlaying)
	})
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
	if !ok || !g.visible(cell) {
		return
	}
	g.picked = cell
	if cell == g.Last() {
		g.correct()
	} else {
		g.wrong()
	}
}

func (g *Game) correct() {
	g.best = g.count
	if g.count >= g.grid.Cells() {
		g.Finish(g.score())
		return
	}
	g.Go(core.PhaseCorrect)
	g.Notify(core.EventCorrect, g.score())
	g.Later(g.cfg.Feedback, func() {
		g.count++
		g.show()
		g.Notify(core.EventLevelUp, g.score())
	})
}

// wrong costs a life; the same count is replayed on a new layout.
func (g *Game) wrong() {
	if g.LoseLife() {
		g.Finish(g.score())
		return
	}
	g.Go(core.PhaseWrong)
	g.Notify(core.EventWrong, g.score())
	g.Later(g.cfg.Feedback, g.show)
}

func (g *Game) visible(cell int) bool {
	for _, c := range g.order[:g.shown] {
		if c == cell {
			return true
		}
	}
	return false
}

// Last returns the cell of the circle that appeared last, or -1.
func (g *Game) Last() int {
	if len(g.order) == 0 {
		return -1
	}
	return g.order[len(g.order)-1]
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
		Variant: strconv.Itoa(g.start),
	}
	switch g.Phase() {
	case core.PhaseReady:
		st.Message = "Watch the circles appear, then pick the last one"
	case core.PhaseShowing:
		st.Message = fmt.Sprintf("%d of %d", g.shown, g.count)
	case core.PhasePlaying:
		st.Message = "Which circle appeared last?"
	case core.PhaseCorrect:
		st.Message = "Correct!"
	case core.PhaseWrong:
		st.Message = fmt.Sprintf("Wrong. %d lives left", g.Lives)
	case core.PhaseFinished:
		st.Message = fmt.Sprintf("Score: %d circles", g.best)
	}
	return st
}

// Snapshot returns the round data; Cells holds 1 for every visible circle and
// Sequence the full appearance order.
func (g *Game) Snapshot() core.Snapshot {
	cells := make([]int, g.grid.Cells())
	for _, c := range g.order[:g.shown] {
		cells[c] = 1
	}
	return core.Snapshot{
		State:    g.State(),
		Grid:     g.grid,
		Cells:    cells,
		Cursor:   g.cursor,
		Sequence: core.CopyInts(g.order),
	}
}

// Render draws the board and status.
func (g *Game) Render(dst *core.Screen) {
	st := g.State()
	gridview.Header(dst, g.Title(), gridview.Status(
		fmt.Sprintf("Circles %d", g.count),
		fmt.Sprintf("Lives %d", g.Lives),
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

	reveal := g.Is(core.PhaseCorrect, core.PhaseWrong)
	layout := gridview.Fit(dst, g.grid, 5)
	layout.Draw(dst, g.cursor, func(idx int) gridview.Cell {
		switch {
		case !g.visible(idx):
			return gridview.Cell{Blank: true, Color: core.ColorGray}
		case reveal && idx == g.Last():
			return gridview.Cell{Label: "●", Color: core.ColorBrightGreen}
		case reveal && idx == g.picked:
			return gridview.Cell{Label: "●", Color: core.ColorBrightRed}
		default:
			return gridview.Cell{Label: "●", Color: core.ColorBrightCyan}
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
