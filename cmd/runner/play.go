package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/registry"
	"github.com/vovakirdan/pixel-runner/internal/runner"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  Space/Up   - Jump
  R          - Restart (after game over or win)
  Q/Esc      - Quit

The terminal backend draws two pixels per character cell and needs a
terminal with true colour support. Its logs go to --log-file only, since
the game owns the screen.

Examples:
  runner play
  runner play --backend terminal --fps 30
  runner play --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "window", "Presentation backend (see 'runner backends')")
}

func runPlay(cmd *cobra.Command, args []string) (err error) {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q (run 'runner backends' to see available backends)", flagBackend)
	}

	var fallback io.Writer = os.Stderr
	if flagBackend == "terminal" {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog()
	defer func() {
		if err != nil {
			logger.Error("play failed", "err", err)
		}
	}()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return fmt.Errorf("creating backend: %w", err)
	}

	game := runner.New(cfg)
	opts := registry.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  cfg.Screen.Width,
			ScreenH:  cfg.Screen.Height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	logger.Info("starting", "backend", backend.ID(), "fps", flagFPS)
	if err := backend.Run(game, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	st := game.State()
	logger.Info("finished", "phase", st.Phase, "score", st.Score, "elapsed", st.Elapsed)
	return nil
}
