package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// modeArg returns the requested mode, or the default when none is given.
func modeArg(args []string) (string, error) {
	mode := defaultMode
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return "", fmt.Errorf("unknown mode %q (run 'tetris list' to see available modes)", mode)
	}
	return mode, nil
}

// applyGameFlags passes --config and --difficulty to games created afterwards.
func applyGameFlags() {
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(flagDifficulty)
}

// terminalConfig builds the runtime config from the terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// fileLogger opens the --log-file logger. Without a file the logger
// discards, since terminal hosts own the screen.
func fileLogger() (*log.Logger, io.Closer, error) {
	return logging.OpenFile(flagLogFile, flagLogLevel)
}

// stderrLogger logs to --log-file when set, otherwise to stderr.
func stderrLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile != "" {
		return logging.OpenFile(flagLogFile, flagLogLevel)
	}
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return nil, nil, err
	}
	return logger, io.NopCloser(nil), nil
}

// createGame builds a registered mode with the game flags applied.
func createGame(mode string) (registry.Game, error) {
	applyGameFlags()
	game, err := registry.Create(mode)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", mode, err)
	}
	return game, nil
}
