package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load the configuration the way play does (--config, then
~/.tetris/configs/tetris.yaml, then ./configs/tetris.yaml, then the built-in
defaults), apply --difficulty, validate it and print it as YAML.

Use --defaults to print the built-in defaults as a starting point for a
custom file.

Examples:
  tetris config
  tetris config --difficulty hard
  tetris config --defaults > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	if err := tetris.ConfigFrom(cfg).Validate(); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
