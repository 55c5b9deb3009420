// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines gravity timing.
type TimingConfig struct {
	BaseFallIntervalMs float64 `yaml:"base_fall_interval_ms"`
	SpeedUpRate        float64 `yaml:"speed_up_rate"` // Applied once per round advance
}

// ScoringConfig defines round progression.
type ScoringConfig struct {
	RoundPassScore int `yaml:"round_pass_score"` // Cleared rows per round
}
