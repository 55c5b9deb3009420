package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth = 2  // Terminal columns per board cell
	hudWidth  = 20 // Columns reserved right of the board
	hudGap    = 2
)

// paletteColors is indexed by Variant.Color(); index 0 is the empty cell.
var paletteColors = [PaletteSize + 1]core.Color{
	core.ColorGray,
	core.ColorCyan,    // I
	core.ColorYellow,  // O
	core.ColorMagenta, // T
	core.ColorOrange,  // L
	core.ColorBlue,    // J
	core.ColorRed,     // Z
	core.ColorGreen,   // S
}

// PaletteColor maps a grid palette index to a screen color.
// Index 0 (empty) and unknown indices map to gray.
func PaletteColor(index int) core.Color {
	if index < 0 || index > PaletteSize {
		return core.ColorGray
	}
	return paletteColors[index]
}

// MinScreenSize returns the smallest screen that fits the board and HUD.
func (g *Game) MinScreenSize() (int, int) {
	return g.cfg.Width*cellWidth + 2 + hudGap + hudWidth, g.cfg.Height + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.engine.Snapshot()

	boardW := snap.Width*cellWidth + 2
	boardH := snap.Height + 2
	totalW := boardW + hudGap + hudWidth

	boardX := core.Clamp((g.screenW-totalW)/2, 0, g.screenW)
	boardY := core.Clamp((g.screenH-boardH)/2, 0, g.screenH)

	frame := core.NewRect(boardX, boardY, boardW, boardH)
	dst.DrawBox(frame)
	renderBoard(dst, snap, boardX+1, boardY+1)

	g.renderHUD(dst, snap, frame.Right()+hudGap, boardY)
	g.renderOverlays(dst, snap, frame)
}

// RenderSnapshot draws just the board of a snapshot, framed, at the origin.
// Used by headless output.
func RenderSnapshot(snap Snapshot) *core.Screen {
	dst := core.NewScreen(snap.Width*cellWidth+2, snap.Height+2)
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()))
	renderBoard(dst, snap, 1, 1)
	return dst
}

// renderBoard draws settled cells, then the falling piece on top.
func renderBoard(dst *core.Screen, snap Snapshot, x0, y0 int) {
	for row, cells := range snap.Grid {
		for col, v := range cells {
			x := x0 + col*cellWidth
			y := y0 + row
			if v == 0 {
				dst.SetColored(x, y, ' ', core.ColorGray)
				dst.SetColored(x+1, y, '·', core.ColorGray)
				continue
			}
			drawBlock(dst, x, y, PaletteColor(v))
		}
	}

	if snap.GameOver() {
		return
	}
	color := PaletteColor(snap.Piece.Color)
	well := core.NewRect(0, 0, snap.Width, snap.Height)
	for _, c := range snap.Piece.Cells {
		if !well.Contains(c.Col, c.Row) {
			continue
		}
		drawBlock(dst, x0+c.Col*cellWidth, y0+c.Row, color)
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetColored(x, y, '█', c)
	dst.SetColored(x+1, y, '█', c)
}

// renderHUD draws score, round and speed to the right of the board.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, x, y int) {
	dst.DrawTextColored(x, y, g.Title(), core.ColorBrightWhite)

	dst.DrawText(x, y+2, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawText(x, y+3, fmt.Sprintf("Round: %d", snap.Round))
	dst.DrawText(x, y+4, fmt.Sprintf("Speed: %.0fms", snap.FallIntervalMs))
	dst.DrawText(x, y+5, fmt.Sprintf("Lines: %d", snap.LinesCleared))

	dst.DrawTextColored(x, y+7, "Piece:", core.ColorGray)
	dst.DrawTextColored(x+7, y+7, snap.Piece.Variant.String(), PaletteColor(snap.Piece.Color))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	minW, minH := g.MinScreenSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
}

// renderOverlays draws pause and game-over boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, snap Snapshot, board core.Rect) {
	centerX, centerY := board.Center()

	switch {
	case snap.GameOver():
		drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Round: %d", snap.Round),
			"R: restart",
		)
	case g.paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "P: resume")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
