// Package numbermemory implements number memory: a number is shown for a
// while, then has to be typed back. Each success adds a digit.
package numbermemory

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/mindgym/internal/board"
	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/games/gridview"
	"github.com/vovakirdan/mindgym/internal/registry"
)

// maxAnswer bounds the typed answer.
const maxAnswer = 64

var transitions = core.Transitions{
	core.PhaseReady:   {core.PhaseShowing},
	core.PhaseShowing: {core.PhasePlaying},
	core.PhasePlaying: {core.PhaseCorrect, core.PhaseWrong, core.PhaseFinished},
	core.PhaseCorrect: {core.PhaseShowing, core.PhaseFinished},
	core.PhaseWrong:   {core.PhaseShowing},
}

// Game implements number memory.
type Game struct {
	*core.Round

	cfg config.NumberMemoryConfig
	rng core.RNG

	digits int    // Length of the current number
	number string // Number to remember
	answer []rune // Typed so far
	best   int    // Longest number recalled
}

func init() {
	registry.Register(string(core.KindNumberMemory), func(cfg *config.Config) registry.Game {
		return New(cfg.NumberMemory)
	})
}

// New creates a number memory game.
func New(cfg config.NumberMemoryConfig) *Game {
	return &Game{
		Round: core.NewRound(string(core.KindNumberMemory), transitions),
		cfg:   cfg,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return string(core.KindNumberMemory) }

// Title returns the display name.
func (g *Game) Title() string { return "Number Memory" }

// Kind returns the score kind.
func (g *Game) Kind() core.Kind { return core.KindNumberMemory }

// Reset prepares a new round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.Round.Reset(g.cfg.Lives)
	g.rng = core.NewRNG(cfg.Seed)
	g.digits = g.cfg.StartDigits
	g.number = ""
	g.answer = nil
	g.best = 0
}

// Start shows the first number.
func (g *Game) Start() {
	if !g.Is(core.PhaseReady) {
		return
	}
	g.StartClock()
	g.Notify(core.EventStart, 0)
	g.show()
}

// show displays a fresh number of the current length, then asks for it.
func (g *Game) show() {
	if !g.Go(core.PhaseShowing) {
		return
	}
	g.number = board.Digits(g.digits, g.rng)
	g.answer = g.answer[:0]
	g.Level = g.digits
	g.Later(g.cfg.ShowTime(g.digits), g.ask)
}

func (g *Game) ask() {
	g.Go(core.PhasePlaying)
}

// Submit handles typing and submission.
func (g *Game) Submit(in core.Input) {
	switch g.Phase() {
	case core.PhaseReady:
		if in.Action == core.ActionConfirm {
			g.Start()
		}
	case core.PhaseShowing:
		// Enter skips the rest of the display time
		if in.Action == core.ActionConfirm {
			g.ask()
		}
	case core.PhasePlaying:
		switch in.Action {
		case core.ActionRune:
			if len(g.answer) < maxAnswer && unicode.IsPrint(in.Rune) {
				g.answer = append(g.answer, in.Rune)
			}
		case core.ActionErase:
			if len(g.answer) > 0 {
				g.answer = g.answer[:len(g.answer)-1]
			}
		case core.ActionConfirm:
			g.check()
		}
	}
}

// check compares the answer. Anything other than the exact digits,
// including non-numeric input, is wrong.
func (g *Game) check() {
	if Normalize(string(g.answer)) != g.number {
		g.fail()
		return
	}

	g.best = g.digits
	if g.digits >= g.cfg.MaxDigits {
		g.Finish(g.score())
		return
	}
	g.Go(core.PhaseCorrect)
	g.Notify(core.EventCorrect, g.score())

	g.Later(g.cfg.Feedback, func() {
		g.digits++
		g.show()
		g.Notify(core.EventLevelUp, g.score())
	})
}

func (g *Game) fail() {
	if g.LoseLife() {
		g.Finish(g.score())
		return
	}
	g.Go(core.PhaseWrong)
	g.Notify(core.EventWrong, g.score())
	g.Later(g.cfg.Feedback, g.show)
}

// Normalize trims surrounding blanks from a typed answer. The result is
// returned as typed otherwise, so stray characters still make it wrong.
func Normalize(answer string) string {
	return strings.TrimSpace(answer)
}

func (g *Game) score() float64 {
	return float64(g.best)
}

// Answer returns the text typed so far.
func (g *Game) Answer() string {
	return string(g.answer)
}

// State returns the presentation summary.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:   g.Phase(),
		Score:   g.score(),
		Level:   g.digits,
		Lives:   g.Lives,
		Elapsed: g.Elapsed(),
	}
	switch g.Phase() {
	case core.PhaseReady:
		st.Message = "Remember the number, then type it back"
	case core.PhaseShowing:
		st.Message = "Remember it!"
	case core.PhasePlaying:
		st.Message = "What was the number?"
	case core.PhaseCorrect:
		st.Message = "Correct!"
	case core.PhaseWrong:
		st.Message = fmt.Sprintf("The number was %s", g.number)
	case core.PhaseFinished:
		st.Message = fmt.Sprintf("The number was %s. Score: %d digits", g.number, g.best)
	}
	return st
}

// Snapshot returns the round data; Text is the number to remember.
func (g *Game) Snapshot() core.Snapshot {
	return core.Snapshot{
		State:  g.State(),
		Cursor: -1,
		Text:   g.number,
	}
}

// Render draws the number or the answer prompt.
func (g *Game) Render(dst *core.Screen) {
	st := g.State()
	gridview.Header(dst, g.Title(), gridview.Status(
		fmt.Sprintf("Digits %d", g.digits),
		fmt.Sprintf("Lives %d", g.Lives),
		fmt.Sprintf("Best %d", g.best),
	))

	switch g.Phase() {
	case core.PhaseShowing:
		gridview.Center(dst, -1, spaced(g.number), core.ColorBrightCyan)
		gridview.Center(dst, 1, st.Message, core.ColorGray)
		gridview.Footer(dst, "Enter: skip   Esc: back")
	case core.PhasePlaying:
		gridview.Center(dst, -2, st.Message, core.ColorWhite)
		gridview.Center(dst, 0, "> "+string(g.answer)+"_", core.ColorBrightYellow)
		gridview.Footer(dst, "type the digits   Enter: submit   Backspace: erase")
	case core.PhaseCorrect:
		gridview.Center(dst, -1, spaced(g.number), core.ColorBrightGreen)
		gridview.Center(dst, 1, st.Message, core.ColorBrightGreen)
	case core.PhaseWrong, core.PhaseFinished:
		gridview.Center(dst, -2, spaced(g.number), core.ColorWhite)
		gridview.Center(dst, 0, "You typed: "+string(g.answer), core.ColorBrightRed)
		gridview.Center(dst, 2, st.Message, core.ColorGray)
		if g.Is(core.PhaseFinished) {
			gridview.Footer(dst, "R: play again   Esc: back")
		}
	default:
		gridview.Center(dst, -1, st.Message, core.ColorWhite)
		gridview.Footer(dst, "Enter: start   Esc: back")
	}
}

// spaced separates digits for readability on long numbers.
func spaced(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Join(strings.Split(number, ""), " ")
}
