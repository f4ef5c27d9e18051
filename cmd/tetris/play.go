package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The only bundled game is "tetris".

Controls:
  Left/Right, A/D   - Move (hold to repeat)
  Down, S           - Soft drop
  Space             - Hard drop
  Up, W, X          - Rotate
  C                 - Hold
  P/Esc             - Pause
  R                 - Restart
  Ctrl+S            - Save a screenshot to ~/.tetris/screenshots
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Examples:
  tetris play
  tetris play --seed 1234
  tetris play --config ./my-tetris.yaml --log-file tetris.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "tetris"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'tetris list' to see available games)", gameID)
	}

	cfg, source, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	tetris.Configure(cfg)

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger.Info("config loaded", "source", source)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Debug("terminal size unavailable, using defaults", "error", termErr)
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, rc, tui.Options{Logger: logger, Bell: cfg.Display.Bell}); err != nil {
		logger.Error("game exited with error", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("game finished", "score", game.State().Score)
	return nil
}
