package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing the specified mode (default: tetris) in the terminal.

Controls:
  Left/Right, A/D  - Move
  Up, W            - Rotate
  Down, S          - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, gentler speed-up, longer rounds
  normal - Configured values
  hard   - Faster start, steeper speed-up, shorter rounds
  fixed  - No speed-up between rounds

Examples:
  tetris play
  tetris play tetris_mini --difficulty easy
  tetris play --config ./my-tetris.yaml --log-file tetris.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	logger, closer, err := fileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	game, err := createGame(mode)
	if err != nil {
		return err
	}

	if err := tui.Run(game, terminalConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
