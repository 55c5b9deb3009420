package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode is a registered board preset.
type Mode struct {
	ID     string
	Title  string
	Width  int // 0 keeps the configured width
	Height int // 0 keeps the configured height
}

// Modes lists the registered presets.
var Modes = []Mode{
	{ID: "tetris", Title: "Tetris"},
	{ID: "tetris_classic", Title: "Tetris (Classic 15x25)", Width: 15, Height: 25},
	{ID: "tetris_mini", Title: "Tetris (Mini 8x14)", Width: 8, Height: 14},
}

// Package-level settings applied when a game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used by new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by new games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

func init() {
	for _, m := range Modes {
		registry.Register(registry.GameInfo{ID: m.ID, Title: m.Title}, func() (registry.Game, error) {
			return New(m)
		})
	}
}
