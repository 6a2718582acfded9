package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/session"
)

// maxTickGap caps the time fed to the game after a stall (suspend, slow terminal).
const maxTickGap = 250 * time.Millisecond

// Model is the Bubble Tea model running one game session.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	keys     *KeyMapper
	tickRate int
	lastTick time.Time
	now      func() time.Time
	quitting bool
	back     bool // Esc/B pressed: return to the menu
}

// NewModel creates a model for the session.
func NewModel(s *session.Session, cfg core.RuntimeConfig) Model {
	w, h := cfg.ScreenW, cfg.ScreenH
	if w <= 0 || h <= 0 {
		def := core.DefaultConfig()
		w, h = def.ScreenW, def.ScreenH
	}
	return Model{
		session:  s,
		screen:   core.NewScreen(w, h),
		keys:     NewKeyMapper(),
		tickRate: cfg.TickRate,
		now:      time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.session.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.catchUp(time.Time(msg))
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// catchUp advances the game clock to t. Keys are applied after catching up,
// so reaction times are measured at the key press, not at the next tick.
func (m *Model) catchUp(t time.Time) {
	if m.lastTick.IsZero() {
		m.lastTick = t
		return
	}
	dt := t.Sub(m.lastTick)
	m.lastTick = t
	if dt <= 0 {
		return
	}
	if dt > maxTickGap {
		dt = maxTickGap
	}
	m.session.Tick(dt)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	in, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	m.catchUp(m.now())
	st := m.session.State()
	switch in.Action {
	case core.ActionNone:
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	case core.ActionRestart:
		if st.GameOver() {
			m.session.Restart()
		}
	case core.ActionConfirm:
		if st.Phase == core.PhaseReady {
			m.session.Start()
			return m, nil
		}
		if st.GameOver() {
			m.session.Restart()
			return m, nil
		}
		m.session.Submit(in)
	default:
		m.session.Submit(in)
	}
	return m, nil
}

// saveScreenshot saves the current screen to ~/.mindgym/screenshots.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := config.UserPath("screenshots")
	if dir == "" {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.screen.Clear()
	m.session.Render(m.screen)
	if st := m.session.State(); st.GameOver() {
		m.drawResult(st)
	}
	return RenderScreen(m.screen)
}

// drawResult adds the stored best and any save failure under the final score.
func (m Model) drawResult(st core.GameState) {
	kind := m.session.Game().Kind()
	line := ""
	color := core.ColorGray
	switch {
	case !m.session.Persistent():
		line = "Results are not recorded"
	case m.session.SaveErr() != nil:
		line = "Could not save result: " + m.session.SaveErr().Error()
		color = core.ColorBrightRed
	case m.session.NewBest():
		line = "New best: " + kind.Format(st.Score) + "!"
		color = core.ColorBrightYellow
	default:
		if best, ok := m.session.Best(); ok {
			line = "Best: " + kind.Format(best)
		}
	}
	if line != "" {
		m.screen.DrawTextCentered(m.screen.Height()/2+1, line, color)
	}
}

// WentBack reports whether the player left with Esc/B rather than quitting.
func (m Model) WentBack() bool {
	return m.back
}

// Run starts the Bubble Tea program for the session.
// Returns true if the player went back to the menu, false if they quit.
func Run(s *session.Session, cfg core.RuntimeConfig) (back bool, err error) {
	p := tea.NewProgram(
		NewModel(s, cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	s.Close()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.WentBack(), nil
}
