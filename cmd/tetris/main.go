// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                  - Play (same as "tetris play")
//	tetris play [game]      - Play a game (default: tetris)
//	tetris list             - List available games
//	tetris config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom config YAML
//	--log-file <path>   - Write logs to a file (default: no logging)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - stack falling pieces in your terminal",
	Long: `A terminal falling-block puzzle. Move and rotate the falling piece,
complete rows to clear them, and keep the stack below the top.

Available commands:
  play     - Start a game (default)
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  tetris
  tetris --seed 42
  tetris play --config ./my-tetris.yaml
  tetris config --default > ~/.tetris/configs/tetris.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, nil)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
