package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. An empty name means
// "no preset" and is returned as-is.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Normal and empty presets leave the loaded values untouched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseFallIntervalMs = 1000
		cfg.Timing.SpeedUpRate = 0.95
		cfg.Scoring.RoundPassScore = 15
	case DifficultyHard:
		cfg.Timing.BaseFallIntervalMs = 400
		cfg.Timing.SpeedUpRate = 0.8
		cfg.Scoring.RoundPassScore = 5
	case DifficultyFixed:
		// Rounds still advance, the speed does not.
		cfg.Timing.SpeedUpRate = 1.0
	}
}
