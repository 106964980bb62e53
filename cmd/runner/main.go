// runner is a side-scrolling arcade game: jump over the enemies that scroll
// toward you and dodge ten of them to win.
//
// Usage:
//
//	runner play                  - Play in a window (default) or the terminal
//	runner backends              - List presentation backends
//	runner sprites --out DIR     - Export every sprite as PNG
//	runner snapshot --out FILE   - Run headless ticks and save the frame as PNG
//	runner config                - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load a custom YAML configuration
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-runner/internal/config"

	// Import backends to register them
	_ "github.com/vovakirdan/pixel-runner/internal/platform/tui"
	_ "github.com/vovakirdan/pixel-runner/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Pixel Runner - jump over enemies, dodge ten to win",
	Long: `Pixel Runner is a side-scrolling arcade game. Every character is drawn
at startup from rectangles, circles and ellipses.

Available commands:
  play      - Start a game
  backends  - Show available presentation backends
  sprites   - Export the generated sprites as PNG files
  snapshot  - Simulate a number of ticks and save the frame as PNG
  config    - Print the default configuration

Examples:
  runner play
  runner play --backend terminal
  runner play --seed 42 --config ./configs/runner.yaml
  runner sprites --out ./sprites --scale 4
  runner snapshot --ticks 300 --out frame.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback; the returned closer releases the log file, if any. Commands
// return their errors instead of exiting so the closer always runs.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig reads the configuration named by --config or the search path.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}
