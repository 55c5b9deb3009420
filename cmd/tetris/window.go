package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open the specified mode (default: tetris) in a desktop window.

Controls are the same as in the terminal; held arrow keys repeat.
Logs go to stderr unless --log-file is set.

Examples:
  tetris window
  tetris window tetris_classic --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	logger, closer, err := stderrLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	created, err := createGame(mode)
	if err != nil {
		return err
	}
	game, ok := created.(*tetris.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot be played in a window", mode)
	}

	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	return gui.Run(game, cfg, logger)
}
