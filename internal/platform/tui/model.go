package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// resizer is implemented by games that can adapt to a new screen size
// without restarting the session.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed,
		"screen", m.screen.Width(), "rows", m.screen.Height())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "round", m.gameState.Round)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen buffer. Games that can resize keep their
// session; others are restarted unless the session is already over.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := elapsedMillis(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logger.Info("session restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame, elapsed)
	m.gameState = result.State
	m.logStep(result, wasOver)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logStep(result core.StepResult, wasOver bool) {
	if result.Merged {
		m.logger.Debug("piece merged", "lines", result.LinesCleared, "score", result.State.Score)
	}
	if result.RoundUp {
		m.logger.Info("round up", "round", result.State.Round, "score", result.State.Score)
	}
	if result.State.GameOver && !wasOver {
		m.logger.Info("game over", "score", result.State.Score, "round", result.State.Round)
	}
}

// State returns the state reported by the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the game and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// gameConfig is the runtime config with the help bar rows removed.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

func gameHeight(screenH int) int {
	return max(screenH-helpHeight, 0)
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
