package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/mindgym/internal/core"
	"github.com/vovakirdan/mindgym/internal/registry"
	"github.com/vovakirdan/mindgym/internal/storage"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID   string
	Title    string
	Kind     core.Kind
	Variants []string
}

// MenuModel is the Bubble Tea model for the game picker menu. Games with
// variants open a second list to pick one.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	picking        *MenuItem // Game whose variant list is open
	variantCursor  int
	width          int
	height         int
	store          storage.ScoreStore
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	variant        string
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store storage.ScoreStore, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:   g.ID,
			Title:    g.Title,
			Kind:     g.Kind,
			Variants: g.Variants,
		})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.picking != nil {
			return m.handleVariantKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		if len(item.Variants) > 1 {
			m.picking = &item
			m.variantCursor = 0
			return m, nil
		}
		m.selected = &item
		return m, tea.Quit // Exit menu to start game

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// handleVariantKey processes input while the variant list is open.
func (m MenuModel) handleVariantKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		m.picking = nil

	case MenuActionUp:
		if m.variantCursor > 0 {
			m.variantCursor--
		}

	case MenuActionDown:
		if m.variantCursor < len(m.picking.Variants)-1 {
			m.variantCursor++
		}

	case MenuActionSelect:
		m.selected = m.picking
		m.variant = m.picking.Variants[m.variantCursor]
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  M I N D G Y M  "), m.width))
	b.WriteString("\n\n")

	if m.picking != nil {
		m.viewVariants(&b)
		return b.String()
	}

	b.WriteString(centerText(dimStyle.Render("Select a game"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if best := m.bestLine(item.Kind, storage.AnyVariant); best != "" {
			line += dimStyle.Render("  best " + best)
		}
		if i == m.cursor {
			line = selectedStyle.Render("> "+item.Title) + strings.TrimPrefix(line, "  "+item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewVariants(b *strings.Builder) {
	b.WriteString(centerText(fmt.Sprintf("%s - choose a variant", m.picking.Title), m.width))
	b.WriteString("\n\n")

	for i, v := range m.picking.Variants {
		line := "  " + v
		if best := m.bestLine(m.picking.Kind, v); best != "" {
			line += dimStyle.Render("  best " + best)
		}
		if i == m.variantCursor {
			line = selectedStyle.Render("> "+v) + strings.TrimPrefix(line, "  "+v)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Esc: Back"), m.width))
	b.WriteString("\n")
}

// bestLine formats the stored best score, or "" if there is none.
func (m MenuModel) bestLine(kind core.Kind, variant string) string {
	if m.store == nil {
		return ""
	}
	best, ok, err := m.store.BestScore(kind, variant)
	if err != nil || !ok {
		return ""
	}
	return kind.Format(best)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Variant returns the chosen variant, empty for the game's default.
func (m MenuModel) Variant() string {
	return m.variant
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// truncate shortens text to width cells.
func truncate(text string, width int) string {
	return runewidth.Truncate(text, width, ".")
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Variant         string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store storage.ScoreStore, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
		result.Variant = m.Variant()
	} else {
		result.Quit = true
	}

	return result, nil
}
