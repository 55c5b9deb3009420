package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode with an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select mode
  Q/Esc        - Quit

Examples:
  tetris menu
  tetris menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := fileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		game, err := createGame(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "mode", menuResult.GameID, "error", err)
			return err
		}

		if err := tui.Run(game, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
