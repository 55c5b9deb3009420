package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Menu layout constants
const (
	menuIDWidth    = 16
	menuTitleWidth = 28
	menuChrome     = 8 // Title, borders and help rows around the table
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)

	menuTableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	modes    []registry.GameInfo
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	config   core.RuntimeConfig
	quitting bool
	selected string
}

// NewMenuModel creates a picker over every registered mode.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()

	rows := make([]table.Row, len(modes))
	for i, g := range modes {
		rows[i] = table.Row{g.ID, g.Title}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Mode", Width: menuIDWidth},
			{Title: "Board", Width: menuTitleWidth},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight(len(rows), cfg.ScreenH)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		modes:  modes,
		table:  t,
		help:   h,
		keys:   DefaultMenuKeyMap(),
		config: cfg,
	}
}

// tableHeight fits the rows plus header into the screen.
func tableHeight(rows, screenH int) int {
	h := rows + 1
	if screenH > menuChrome {
		h = min(h, screenH-menuChrome)
	}
	return max(h, 2)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if len(m.modes) > 0 {
				m.selected = m.modes[m.table.Cursor()].ID
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(tableHeight(len(m.modes), msg.Height))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render("T E T R I S"))
	b.WriteString("\n\n")
	b.WriteString(menuTableStyle.Render(m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, b.String())
}

// Selected returns the chosen mode ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == "" {
		result.Quit = true
		return result, nil
	}
	result.GameID = m.Selected()
	return result, nil
}
