// reflex is a swipe reflex game for the terminal.
//
// Usage:
//
//	reflex play              - Play in this terminal
//	reflex serve             - Start SSH server for remote play
//	reflex sim               - Run a headless game with random swipes
//	reflex palette           - Show the theme palette
//	reflex config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed (0 = random based on time)
//	--config <path>       - Path to a custom reflex.yaml
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reflex/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reflex",
	Short: "Reflex - swipe markers past falling obstacles",
	Long: `Reflex is a real-time reflex game for the terminal.

Swipe left or right to launch a marker across the playfield. Every marker
that reaches the far edge scores a point; a marker touching a falling
obstacle ends the round.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless game with random swipes
  palette  - Show the theme palette
  config   - Print the effective configuration

Examples:
  reflex play
  reflex play --config ./my-reflex.yaml
  reflex serve --ssh :2222
  reflex sim --frames 7200 --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom reflex.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(configCmd)
}

// mustLoadConfig loads the game config or exits.
func mustLoadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// mustLogger is newLogger that exits on error.
func mustLogger(w io.Writer, prefix string) *log.Logger {
	logger, err := newLogger(w, prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}
