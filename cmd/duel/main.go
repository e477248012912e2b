// duel is a two-player arena duel played in the terminal.
//
// Usage:
//
//	duel play      - Start a local match (setup menu first)
//	duel serve     - Start SSH server for remote play
//	duel config    - Print the effective tuning as YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set preferences database path (default: ~/.duel/prefs.db)
//	--log <path>    - Write logs to a file while the TUI is running
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagLogPath string
)

// logger reports to stderr outside the TUI.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "duel",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duel",
	Short: "Shield Duel - a two-player arena shooter in your terminal",
	Long: `Shield Duel is a real-time arena duel for two players sharing one
keyboard, or one player against the computer.

Move, raise your shield and fire until your opponent runs out of health.
Shields soak hits until they break; a broken shield flashes briefly.

Available commands:
  play     - Start a local match
  serve    - Start SSH server for remote play
  config   - Print the effective tuning

Examples:
  duel play
  duel play --mode solo --p1 Ann
  duel play --config ./duel.yaml --watch
  duel serve --ssh :2222
  duel config > ~/.duel/configs/duel.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duel/prefs.db", "Path to preferences database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file used while the TUI is running (default: discard)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
