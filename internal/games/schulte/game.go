// Package schulte implements the Schulte table: pick the numbers 1..n² in
// ascending order as fast as possible.
package schulte

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
	core.PhaseReady:   {core.PhasePlaying},
	core.PhasePlaying: {core.PhaseFinished},
}

// Game implements the Schulte table.
type Game struct {
	*core.Round

	cfg  config.SchulteConfig
	size int
	grid core.Grid
	rng  core.RNG

	table  []int // Number at each cell
	found  []bool
	next   int
	cursor int
}

func init() {
	registry.Register(string(core.KindSchulte), func(cfg *config.Config) registry.Game {
		return New(cfg.Schulte)
	})
}

// New creates a Schulte table.
func New(cfg config.SchulteConfig) *Game {
	g := &Game{
		Round: core.NewRound(string(core.KindSchulte), transitions),
		cfg:   cfg,
	}
	g.resize(cfg.Size)
	return g
}

func (g *Game) resize(size int) {
	g.size = size
	g.grid = core.Square(size)
}

// ID returns the game identifier.
func (g *Game) ID() string { return string(core.KindSchulte) }

// Title returns the display name.
func (g *Game) Title() string { return "Schulte Table" }

// Kind returns the score kind.
func (g *Game) Kind() core.Kind { return core.KindSchulte }

// Variants lists the selectable table sizes, default first.
func (g *Game) Variants() []string {
	out := []string{strconv.Itoa(g.cfg.Size)}
	for _, n := range g.cfg.Sizes {
		if n != g.cfg.Size {
			out = append(out, strconv.Itoa(n))
		}
	}
	return out
}

// SetVariant selects the table size. Takes effect on the next Reset.
func (g *Game) SetVariant(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n < g.cfg.MinSize || n > g.cfg.MaxSize {
		return fmt.Errorf("schulte: size %q outside %d..%d", v, g.cfg.MinSize, g.cfg.MaxSize)
	}
	g.resize(n)
	return nil
}

// Reset prepares a fresh table.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Round.Reset(0)
	g.rng = core.NewRNG(cfg.Seed)
	g.table = board.SchulteTable(g.size, g.rng)
	g.found = make([]bool, len(g.table))
	g.next = 1
	g.cursor = 0
}

// Start shows the table and starts the clock.
func (g *Game) Start() {
	if !g.Go(core.PhasePlaying) {
		return
	}
	g.StartClock()
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
	if g.table[cell] != g.next {
		g.Strikes++
		g.Notify(core.EventWrong, 0)
		return
	}

	g.found[cell] = true
	g.next++
	g.Level = g.next
	if g.next > len(g.table) {
		g.Finish(g.score())
		return
	}
	g.Notify(core.EventCorrect, 0)
}

// score is the elapsed time in seconds.
func (g *Game) score() float64 {
	return g.Elapsed().Seconds()
}

// Next returns the number to pick next.
func (g *Game) Next() int { return g.next }

// Table returns the number at each cell.
func (g *Game) Table() []int { return core.CopyInts(g.table) }

// State returns the presentation summary.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:   g.Phase(),
		Score:   g.score(),
		Level:   g.next,
		Elapsed: g.Elapsed(),
		Variant: strconv.Itoa(g.size),
	}
	switch g.Phase() {
	case core.PhaseReady:
		st.Message = fmt.Sprintf("Find 1 to %d in order", len(g.table))
	case core.PhasePlaying:
		st.Message = fmt.Sprintf("Find %d", g.next)
	case core.PhaseFinished:
		st.Message = fmt.Sprintf("Done in %s with %d mistakes", core.KindSchulte.Format(st.Score), g.Strikes)
	}
	return st
}

// Snapshot returns the round data; Cells holds the table, Text the next number.
func (g *Game) Snapshot() core.Snapshot {
	return core.Snapshot{
		State:  g.State(),
		Grid:   g.grid,
		Cells:  core.CopyInts(g.table),
		Cursor: g.cursor,
		Text:   strconv.Itoa(g.next),
	}
}

// Render draws the table and status.
func (g *Game) Render(dst *core.Screen) {
	st := g.State()
	gridview.Header(dst, g.Title(), gridview.Status(
		fmt.Sprintf("%dx%d", g.size, g.size),
		fmt.Sprintf("Next %d", core.Clamp(g.next, 1, len(g.table))),
		fmt.Sprintf("Mistakes %d", g.Strikes),
		fmt.Sprintf("%.1fs", st.Elapsed.Seconds()),
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
	layout.Draw(dst, g.cursor, func(idx int) gridview.Cell {
		if g.found[idx] {
			return gridview.Cell{Label: strconv.Itoa(g.table[idx]), Color: core.ColorGray}
		}
		return gridview.Cell{Label: strconv.Itoa(g.table[idx]), Color: core.ColorWhite}
	})
	gridview.Message(dst, st.Message, core.ColorGray)
	gridview.Footer(dst, "arrows: move   Enter: pick   Esc: back")
}
