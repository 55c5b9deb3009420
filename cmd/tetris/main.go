// tetris is a falling-block puzzle for the terminal and the desktop.
//
// Usage:
//
//	tetris list              - List available modes
//	tetris play [mode]       - Play in the terminal (default mode: tetris)
//	tetris menu              - Pick a mode interactively
//	tetris window [mode]     - Play in a desktop window
//	tetris sim [mode]        - Run a headless seeded session and print the board
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

const defaultMode = "tetris"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - a falling-block puzzle in your terminal",
	Long: `Tetris drops pieces onto a board; complete rows to clear them and
score. Every few cleared rows the round advances and pieces fall faster.

Available commands:
  list     - Show all available modes
  play     - Play a mode in the terminal
  menu     - Interactive mode picker
  window   - Play a mode in a desktop window
  sim      - Run a headless seeded session
  config   - Print the effective configuration

Examples:
  tetris play
  tetris play tetris_classic --difficulty hard
  tetris menu --fps 30
  tetris window --seed 42
  tetris sim --seed 7 --steps 5000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
