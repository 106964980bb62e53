package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it as
~/.pixel-runner/runner.yaml or ./configs/runner.yaml, or pass it with
--config, and edit the values you want to change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
