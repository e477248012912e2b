package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shield-duel/internal/config"
)

var flagConfigPath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning as YAML",
	Long: `Print the tuning a match would use, after applying the config search order:

  1. --config PATH
  2. ~/.duel/configs/duel.yaml
  3. ./configs/duel.yaml
  4. built-in defaults

The output is a complete config file and can be edited and passed back
with --config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to custom config YAML")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadDuel(flagConfigPath)
	if err != nil {
		return err
	}

	data, err := config.DumpYAML(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
