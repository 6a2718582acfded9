package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mindgym/internal/registry"
	"github.com/vovakirdan/mindgym/internal/storage"
)

const (
	maxScores       = 100 // Rows loaded per game and variant
	statsPanelWidth = 26
	sideBySideWidth = 90 // Below this the stats panel goes under the table
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	chipStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeChipStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Variant  key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Variant, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/right", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("left", "prev game")),
		Variant:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "variant")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best results of one game at a time, filtered by
// variant, together with the game's aggregate statistics.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	variants   []string // AnyVariant followed by the game's variants
	variantIdx int

	store  storage.ScoreStore
	scores []storage.Result // Best first
	stats  storage.Stats

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first game.
func NewScoreboardModel(store storage.ScoreStore, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	if len(m.games) > 0 {
		m.selectGame(0)
	}
	return m
}

// newTable builds the results table sized for the current window.
func (m *ScoreboardModel) newTable() table.Model {
	dateWidth := 12
	if m.width >= sideBySideWidth+20 {
		dateWidth = 16
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 12},
			{Title: "Variant", Width: 8},
			{Title: "Played", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// selectGame switches to game i and shows all of its variants.
func (m *ScoreboardModel) selectGame(i int) {
	m.gameCursor = i
	m.variants = append([]string{storage.AnyVariant}, m.games[i].Variants...)
	m.variantIdx = 0
	m.loadScores()
}

// loadScores reads the selected game and variant from the store.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	m.stats = storage.Stats{}
	if m.store != nil && len(m.games) > 0 {
		kind := m.games[m.gameCursor].Kind
		variant := m.variants[m.variantIdx]
		if history, err := m.store.History(kind, variant, storage.NewestFirst); err == nil {
			m.scores = storage.Top(kind, history, maxScores)
		}
		if stats, err := m.store.Stats(kind, variant); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, r := range m.scores {
		variant := r.Variant
		if variant == "" {
			variant = "-"
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			r.Kind.Format(r.Score),
			variant,
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := len(m.games)
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame) && n > 0:
			m.selectGame((m.gameCursor + 1) % n)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame) && n > 0:
			m.selectGame((m.gameCursor + n - 1) % n)
			return m, nil
		case key.Matches(msg, m.keys.Variant) && len(m.variants) > 1:
			m.variantIdx = (m.variantIdx + 1) % len(m.variants)
			m.loadScores()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.loadScores()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	if len(m.games) == 0 {
		b.WriteString(centerText(dimStyle.Render("No games registered."), m.width))
		return b.String()
	}

	game := m.games[m.gameCursor]
	switcher := fmt.Sprintf("< %s >  %d/%d  %s is better", game.Title, m.gameCursor+1, len(m.games), game.Kind.Order())
	b.WriteString(centerText(selectedStyle.Render(switcher), m.width))
	b.WriteString("\n")
	if len(m.variants) > 1 {
		b.WriteString(centerText(m.variantChips(), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	results := m.table.View()
	if len(m.scores) == 0 {
		results = dimStyle.Italic(true).Padding(1, 2).Render("No rounds recorded yet.")
	}
	results = panelStyle.Render(results)
	stats := panelStyle.Width(statsPanelWidth).Render(m.statsPanel())

	body := lipgloss.JoinVertical(lipgloss.Center, results, stats)
	if m.width >= sideBySideWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, results, " ", stats)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// variantChips lists the selectable variants with the active one highlighted.
func (m ScoreboardModel) variantChips() string {
	chips := make([]string, len(m.variants))
	for i, v := range m.variants {
		if v == storage.AnyVariant {
			v = "all"
		}
		if i == m.variantIdx {
			chips[i] = activeChipStyle.Render(v)
		} else {
			chips[i] = chipStyle.Render(v)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// statsPanel summarizes the selected game and variant.
func (m ScoreboardModel) statsPanel() string {
	st := m.stats
	if st.Count == 0 {
		return dimStyle.Render("No statistics")
	}
	kind := m.games[m.gameCursor].Kind
	lines := [][2]string{
		{"Rounds", fmt.Sprint(st.Count)},
		{"Best", kind.Format(st.Best)},
		{"Mean", kind.Format(st.Mean)},
		{"Median", kind.Format(st.Median)},
		{"Std dev", fmt.Sprintf("%.1f", st.StdDev)},
		{"Last", kind.Format(st.LastScore)},
		{"Played", st.LastPlayed.Local().Format("Jan 02 15:04")},
	}
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%-8s %s", l[0], l[1])
	}
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store storage.ScoreStore, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
