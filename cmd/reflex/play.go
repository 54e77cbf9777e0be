package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reflex/internal/core"
	"github.com/vovakirdan/reflex/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/H/A    - Swipe left at the aim row
  Right/L/D   - Swipe right at the aim row
  Up/K/W      - Move the aim row up
  Down/J/S    - Move the aim row down
  Mouse drag  - Swipe at the row where the drag started
  ?           - Toggle help
  Q/Esc       - Quit

The first swipe starts a round. The round ends when a marker touches an
obstacle; swipe again to start over.

Examples:
  reflex play
  reflex play --fps 30
  reflex play --config ./my-reflex.yaml
  reflex play --log-file /tmp/reflex.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := mustLogger(logOut, "reflex")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(cfg, rt, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
