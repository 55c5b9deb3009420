package tetris

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// ErrInvalidConfig is wrapped by every configuration rejected by NewEngine.
var ErrInvalidConfig = errors.New("tetris: invalid configuration")

// Config holds the engine parameters.
type Config struct {
	Width              int     // Board columns
	Height             int     // Board rows
	BaseFallIntervalMs float64 // Gravity interval in round 1
	RoundPassScore     int     // Cleared rows per round
	SpeedUpRate        float64 // Interval multiplier per round, in (0, 1]
}

// DefaultConfig returns the engine configuration matching the embedded defaults.
func DefaultConfig() Config {
	return ConfigFrom(config.DefaultTetrisConfig())
}

// ConfigFrom converts a loaded file configuration into engine parameters.
func ConfigFrom(c config.TetrisConfig) Config {
	return Config{
		Width:              c.Board.Width,
		Height:             c.Board.Height,
		BaseFallIntervalMs: c.Timing.BaseFallIntervalMs,
		RoundPassScore:     c.Scoring.RoundPassScore,
		SpeedUpRate:        c.Timing.SpeedUpRate,
	}
}

// SpawnColumn is the column every new piece is anchored at.
func (c Config) SpawnColumn() int {
	return c.Width / 2
}

// Validate rejects configurations the engine cannot run. Values are never clamped.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d must have positive dimensions", ErrInvalidConfig, c.Width, c.Height)
	}
	if !c.fitsEveryPiece() {
		return fmt.Errorf("%w: board %dx%d cannot hold every piece at the spawn column", ErrInvalidConfig, c.Width, c.Height)
	}
	if !(c.BaseFallIntervalMs > 0) || math.IsInf(c.BaseFallIntervalMs, 1) {
		return fmt.Errorf("%w: base fall interval %vms must be positive and finite", ErrInvalidConfig, c.BaseFallIntervalMs)
	}
	if c.RoundPassScore <= 0 {
		return fmt.Errorf("%w: round pass score %d must be positive", ErrInvalidConfig, c.RoundPassScore)
	}
	// Written positively so NaN is rejected too.
	if !(c.SpeedUpRate > 0 && c.SpeedUpRate <= 1) {
		return fmt.Errorf("%w: speed-up rate %v must be in (0, 1]", ErrInvalidConfig, c.SpeedUpRate)
	}
	return nil
}

// fitsEveryPiece reports whether every rotation state of every variant,
// anchored at the spawn position, lies on the board.
func (c Config) fitsEveryPiece() bool {
	b := Board{width: c.Width, height: c.Height}
	anchor := Cell{Row: 0, Col: c.SpawnColumn()}
	for _, states := range rotations {
		for _, s := range states {
			for _, cell := range project(s, anchor) {
				if !b.InBounds(cell) {
					return false
				}
			}
		}
	}
	return true
}
