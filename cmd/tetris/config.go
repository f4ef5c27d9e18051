package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with, after applying the
search order: --config, ~/.tetris/configs/tetris.yaml, ./configs/tetris.yaml,
built-in defaults.

With --default the built-in defaults are printed verbatim, which makes a
good starting point for a custom file.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagDefaultConfig {
		_, err := out.Write(config.DefaultTetrisYAML())
		return err
	}

	cfg, source, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	cmd.PrintErrf("# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
