package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/games/golf/match"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

// MenuItem represents a selectable course in the menu.
type MenuItem struct {
	Entry course.Entry
	Best  int // Lowest recorded total, 0 if never played
}

// MenuModel is the Bubble Tea model for the course and players picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a course
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model listing the courses of lib.
func NewMenuModel(lib *course.Library, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(lib.Entries))
	for _, e := range lib.Entries {
		item := MenuItem{Entry: e}
		if store != nil {
			//nolint:errcheck // Missing history only hides the best total
			item.Best, _ = store.BestTotal(e.Course.Name)
		}
		items = append(items, item)
	}
	cfg.Players = core.Clamp(cfg.Players, 1, match.MaxPlayers)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
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

	case MenuActionLess:
		if m.config.Players > 1 {
			m.config.Players--
		}

	case MenuActionMore:
		if m.config.Players < match.MaxPlayers {
			m.config.Players++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuControlsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  M I N I   G O L F  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a course", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := m.itemLine(item)
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("players:  < %d >", m.config.Players), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Course  |  Left/Right: Players  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuControlsStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) itemLine(item MenuItem) string {
	c := item.Entry.Course
	best := "  -"
	if item.Best > 0 {
		best = fmt.Sprintf("%3d", item.Best)
	}
	return fmt.Sprintf("%-6s %-24s par %2d  best %s", item.Entry.ID, c.Name, c.Par(), best)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config, including the chosen number
// of players and any size change.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
