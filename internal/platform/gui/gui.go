// Package gui runs a game in a desktop window using Ebitengine.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Window layout in pixels.
const (
	cellSize = 24
	cellGap  = 1
	margin   = 16
	hudWidth = 180
	lineH    = 16 // Debug font line height
)

// Held movement keys repeat after 12 ticks, then every 3 ticks.
var keyRepeat = core.KeyRepeat{Delay: 12, Every: 3}

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	wellColor       = color.RGBA{30, 30, 40, 255}
	frameColor      = color.RGBA{90, 90, 110, 255}
	overlayColor    = color.RGBA{0, 0, 0, 180}
)

// Host adapts a tetris game to ebiten.Game.
type Host struct {
	game   *tetris.Game
	config core.RuntimeConfig
	logger *log.Logger
	state  core.GameState
	width  int
	height int
}

// NewHost creates a window host for the game.
func NewHost(game *tetris.Game, cfg core.RuntimeConfig, logger *log.Logger) *Host {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// The window always fits the board, so the game never reports it too small.
	cfg.ScreenW, cfg.ScreenH = game.MinScreenSize()

	snap := game.Engine().Snapshot()
	return &Host{
		game:   game,
		config: cfg,
		logger: logger,
		width:  margin*3 + snap.Width*cellSize + hudWidth,
		height: margin*2 + snap.Height*cellSize,
	}
}

// Update advances the game by one ebiten tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.logger.Info("quit", "score", h.state.Score, "round", h.state.Round)
		return ebiten.Termination
	}

	in := readInput()
	if in.Has(core.ActionRestart) && h.state.GameOver {
		h.config.Seed = time.Now().UnixNano()
		h.game.Reset(h.config)
		h.state = h.game.State()
		h.logger.Info("session restarted", "seed", h.config.Seed)
		return nil
	}

	elapsed := (time.Second / time.Duration(ebiten.TPS())).Milliseconds()
	wasOver := h.state.GameOver
	result := h.game.Step(in, elapsed)
	h.state = result.State

	if result.Merged {
		h.logger.Debug("piece merged", "lines", result.LinesCleared, "score", h.state.Score)
	}
	if result.RoundUp {
		h.logger.Info("round up", "round", h.state.Round, "score", h.state.Score)
	}
	if h.state.GameOver && !wasOver {
		h.logger.Info("game over", "score", h.state.Score, "round", h.state.Round)
	}
	return nil
}

// readInput polls the keyboard. Movement keys auto-repeat while held;
// the rest trigger once per press.
func readInput() core.InputFrame {
	in := core.NewInputFrame()

	repeatKeys := []struct {
		key    ebiten.Key
		action core.Action
	}{
		{ebiten.KeyArrowLeft, core.ActionLeft},
		{ebiten.KeyA, core.ActionLeft},
		{ebiten.KeyArrowRight, core.ActionRight},
		{ebiten.KeyD, core.ActionRight},
		{ebiten.KeyArrowDown, core.ActionSoftDrop},
		{ebiten.KeyS, core.ActionSoftDrop},
	}
	for _, k := range repeatKeys {
		if keyRepeat.Fires(inpututil.KeyPressDuration(k.key)) {
			in.Set(k.action)
		}
	}

	pressKeys := []struct {
		key    ebiten.Key
		action core.Action
	}{
		{ebiten.KeyArrowUp, core.ActionRotate},
		{ebiten.KeyW, core.ActionRotate},
		{ebiten.KeySpace, core.ActionHardDrop},
		{ebiten.KeyP, core.ActionPause},
		{ebiten.KeyEscape, core.ActionPause},
		{ebiten.KeyR, core.ActionRestart},
	}
	for _, k := range pressKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			in.Set(k.action)
		}
	}

	return in
}

// Draw renders the board, the falling piece and the HUD.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := h.game.Engine().Snapshot()
	wellW := float32(snap.Width * cellSize)
	wellH := float32(snap.Height * cellSize)

	vector.StrokeRect(screen, margin-2, margin-2, wellW+4, wellH+4, 2, frameColor, false)
	vector.DrawFilledRect(screen, margin, margin, wellW, wellH, wellColor, false)

	for row, cells := range snap.Grid {
		for col, v := range cells {
			if v != 0 {
				drawCell(screen, row, col, v)
			}
		}
	}
	if !snap.GameOver() {
		for _, c := range snap.Piece.Cells {
			drawCell(screen, c.Row, c.Col, snap.Piece.Color)
		}
	}

	h.drawHUD(screen, snap, margin*2+int(wellW))

	switch {
	case snap.GameOver():
		drawOverlay(screen, wellW, wellH, "GAME OVER", "R: restart  Q: quit")
	case h.state.Paused:
		drawOverlay(screen, wellW, wellH, "PAUSED", "P: resume")
	}
}

func drawCell(screen *ebiten.Image, row, col, palette int) {
	r, g, b := tetris.PaletteColor(palette).RGB()
	x := float32(margin + col*cellSize + cellGap)
	y := float32(margin + row*cellSize + cellGap)
	size := float32(cellSize - 2*cellGap)
	vector.DrawFilledRect(screen, x, y, size, size, color.RGBA{r, g, b, 255}, false)
}

func (h *Host) drawHUD(screen *ebiten.Image, snap tetris.Snapshot, x int) {
	lines := []string{
		h.game.Title(),
		"",
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Round: %d", snap.Round),
		fmt.Sprintf("Speed: %.0fms", snap.FallIntervalMs),
		fmt.Sprintf("Lines: %d", snap.LinesCleared),
		fmt.Sprintf("Piece: %s", snap.Piece.Variant),
		"",
		"Arrows/WASD: move",
		"Up/W: rotate",
		"Space: hard drop",
		"P: pause  Q: quit",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, margin+i*lineH)
	}
}

func drawOverlay(screen *ebiten.Image, wellW, wellH float32, lines ...string) {
	boxH := float32(len(lines)*lineH + 2*margin)
	y := margin + (wellH-boxH)/2
	vector.DrawFilledRect(screen, margin, y, wellW, boxH, overlayColor, false)

	for i, line := range lines {
		tx := margin + int(wellW)/2 - len(line)*3 // Debug font glyphs are 6px wide
		ebitenutil.DebugPrintAt(screen, line, tx, int(y)+margin+i*lineH)
	}
}

// Layout returns the fixed logical screen size; ebiten scales it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

// Run opens the window and blocks until it is closed.
func Run(game *tetris.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	host := NewHost(game, cfg, logger)
	game.Reset(host.config)
	host.state = game.State()
	logger.Info("session started", "game", game.ID(), "seed", host.config.Seed)

	ebiten.SetWindowSize(host.width, host.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
