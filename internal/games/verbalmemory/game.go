// Package verbalmemory implements verbal memory: words are shown one at a
// time and the player judges each as seen before or new.
package verbalmemory

import (
	"fmt"

	"github.com/vovakirdan/mindgym/internal/board"
	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/games/gridview"
	"github.com/vovakirdan/mindgym/internal/registry"
)

// Judgment is the player's answer for the current word.
type Judgment int

const (
	JudgeSeen Judgment = iota
	JudgeNew
)

var transitions = core.Transitions{
	core.PhaseReady:   {core.PhasePlaying},
	core.PhasePlaying: {core.PhaseFinished},
}

// Game implements verbal memory. A wrong judgment costs a life but keeps the
// round in the playing phase until the lives run out.
type Game struct {
	*core.Round

	cfg config.VerbalMemoryConfig
	rng core.RNG

	pool    []int        // Unseen word indices in presentation order
	seen    []int        // Indices already shown, in first-shown order
	shown   map[int]bool // Set view of seen
	current int          // Index of the word on screen
	correct int
	last    string // Feedback for the previous judgment
}

func init() {
	registry.Register(string(core.KindVerbalMemory), func(cfg *config.Config) registry.Game {
		return New(cfg.VerbalMemory)
	})
}

// New creates a verbal memory game.
func New(cfg config.VerbalMemoryConfig) *Game {
	return &Game{
		Round: core.NewRound(string(core.KindVerbalMemory), transitions),
		cfg:   cfg,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return string(core.KindVerbalMemory) }

// Title returns the display name.
func (g *Game) Title() string { return "Verbal Memory" }

// Kind returns the score kind.
func (g *Game) Kind() core.Kind { return core.KindVerbalMemory }

// Reset prepares a new round with a freshly shuffled word pool.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Round.Reset(g.cfg.Lives)
	g.rng = core.NewRNG(cfg.Seed)
	g.pool = board.Perm(len(g.cfg.Words), g.rng)
	g.seen = nil
	g.shown = make(map[int]bool)
	g.correct = 0
	g.last = ""
	g.Level = 0
	g.current = -1
}

// Start shows the first word.
func (g *Game) Start() {
	if !g.Go(core.PhasePlaying) {
		return
	}
	g.StartClock()
	g.Notify(core.EventStart, 0)
	g.nextWord()
}

// nextWord picks a seen word with probability SeenRatio once any exist,
// otherwise the next unseen word. An exhausted pool repeats seen words.
func (g *Game) nextWord() {
	repeat := len(g.seen) > 0 && (len(g.pool) == 0 || g.rng.Float64() < g.cfg.SeenRatio)
	if repeat {
		// Avoid showing the same word twice in a row when possible
		i := board.Pick(len(g.seen), indexOf(g.seen, g.current), g.rng)
		g.current = g.seen[i]
	} else {
		g.current = g.pool[0]
		g.pool = g.pool[1:]
	}
	g.Level++
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// Word returns the word currently shown, empty before the round starts.
func (g *Game) Word() string {
	if g.current < 0 {
		return ""
	}
	return g.cfg.Words[g.current]
}

// Judge records the player's judgment of the current word.
func (g *Game) Judge(j Judgment) {
	if !g.Is(core.PhasePlaying) {
		return
	}

	wasSeen := g.shown[g.current]
	if !wasSeen {
		g.shown[g.current] = true
		g.seen = append(g.seen, g.current)
	}

	if (j == JudgeSeen) == wasSeen {
		g.correct++
		g.last = "Correct"
		g.Notify(core.EventCorrect, g.score())
		g.nextWord()
		return
	}

	if g.LoseLife() {
		g.last = "Out of lives"
		g.Finish(g.score())
		return
	}
	if wasSeen {
		g.last = "You had seen it"
	} else {
		g.last = "It was new"
	}
	g.Notify(core.EventWrong, g.score())
	g.nextWord()
}

// Submit maps Seen/New actions (and Left/Right) to judgments.
func (g *Game) Submit(in core.Input) {
	switch {
	case g.Is(core.PhaseReady) && in.Action == core.ActionConfirm:
		g.Start()
	case in.Action == core.ActionSeen || in.Action == core.ActionLeft:
		g.Judge(JudgeSeen)
	case in.Action == core.ActionNew || in.Action == core.ActionRight:
		g.Judge(JudgeNew)
	}
}

func (g *Game) score() float64 {
	return float64(g.correct)
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
		st.Message = "Is the word new, or have you seen it already?"
	case core.PhasePlaying:
		st.Message = g.last
	case core.PhaseFinished:
		st.Message = fmt.Sprintf("Score: %d words", g.correct)
	}
	return st
}

// Snapshot returns the round data; Text is the current word and Sequence
// the seen word indices.
func (g *Game) Snapshot() core.Snapshot {
	return core.Snapshot{
		State:    g.State(),
		Cursor:   -1,
		Text:     g.Word(),
		Sequence: core.CopyInts(g.seen),
	}
}

// Render draws the current word and the two answer buttons.
func (g *Game) Render(dst *core.Screen) {
	st := g.State()
	gridview.Header(dst, g.Title(), gridview.Status(
		fmt.Sprintf("Lives %d", g.Lives),
		fmt.Sprintf("Score %d", g.correct),
	))

	switch g.Phase() {
	case core.PhasePlaying:
		gridview.Center(dst, -2, g.Word(), core.ColorBrightCyan)
		gridview.Center(dst, 1, "[ SEEN ]        [ NEW ]", core.ColorWhite)
		color := core.ColorBrightGreen
		if g.last != "Correct" {
			color = core.ColorBrightRed
		}
		gridview.Message(dst, st.Message, color)
		gridview.Footer(dst, "Y/←: seen   N/→: new   Esc: back")
	case core.PhaseFinished:
		gridview.Center(dst, -1, st.Message, core.ColorWhite)
		gridview.Footer(dst, "R: play again   Esc: back")
	default:
		gridview.Center(dst, -1, st.Message, core.ColorWhite)
		gridview.Footer(dst, "Enter: start   Esc: back")
	}
}
