package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game adapts an Engine to the platform: pause, restart, input mapping,
// screen-size checks and rendering.
type Game struct {
	mode   Mode
	cfg    Config
	rng    *rand.Rand
	engine *Engine

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New loads the configuration, applies the difficulty preset and the mode's
// board size, and returns a game ready for Reset. Invalid configuration is
// reported here.
func New(mode Mode) (*Game, error) {
	fileCfg, err := config.LoadTetris(configPath)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParseDifficultyPreset(difficultyPreset)
	if err != nil {
		return nil, err
	}
	config.ApplyTetrisPreset(&fileCfg, preset)

	return NewWithConfig(mode, ConfigFrom(fileCfg))
}

// NewWithConfig builds a game from explicit engine parameters.
func NewWithConfig(mode Mode, cfg Config) (*Game, error) {
	if mode.Width > 0 {
		cfg.Width = mode.Width
	}
	if mode.Height > 0 {
		cfg.Height = mode.Height
	}

	rng := rand.New(rand.NewSource(0))
	engine, err := NewEngine(cfg, rng)
	if err != nil {
		return nil, err
	}

	return &Game{
		mode:   mode,
		cfg:    cfg,
		rng:    rng,
		engine: engine,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.mode.Title
}

// Engine exposes the underlying session.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Reset reseeds the piece generator and starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng.Seed(cfg.Seed)
	g.engine.Reset()
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.MinScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one host tick.
func (g *Game) Step(in core.InputFrame, elapsedMs int64) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.engine.State().isOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	before := g.engine.Snapshot()
	after := g.engine.Step(IntentFromInput(in), elapsedMs)

	return core.StepResult{
		State:        g.State(),
		Merged:       after.Merges > before.Merges,
		LinesCleared: int(after.LinesCleared - before.LinesCleared),
		RoundUp:      after.Round > before.Round,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.score,
		Round:    g.engine.round,
		GameOver: g.engine.State().isOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// IntentFromInput picks the single intent applied this tick.
// Hard drop wins over rotation, rotation over sideways moves, and sideways
// moves over a soft drop.
func IntentFromInput(in core.InputFrame) Intent {
	switch {
	case in.Has(core.ActionHardDrop):
		return IntentHardDrop
	case in.Has(core.ActionRotate):
		return IntentRotate
	case in.Has(core.ActionLeft):
		return IntentLeft
	case in.Has(core.ActionRight):
		return IntentRight
	case in.Has(core.ActionSoftDrop):
		return IntentSoftDrop
	default:
		return IntentNone
	}
}

func (s State) isOver() bool {
	return s == StateGameOver
}
