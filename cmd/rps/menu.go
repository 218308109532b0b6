package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rps/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Set up and play a match in a full-screen menu",
	Long: `Start the full-screen interface.

Setup screen:
  Up/Down     - Move between fields
  Left/Right  - Change player type (or press its key 1-5)
  0-9         - Type the number of rounds
  Enter       - Start the match
  Q/Ctrl+C    - Quit

Match screen:
  R/P/S       - Play rock, paper or scissors (human players)
  Enter       - Rematch when the game is over
  B/Esc       - Back to setup
  Q/Ctrl+C    - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	settings := tui.Settings{
		Defaults: tui.Defaults{
			One:    cfg.Players.One,
			Two:    cfg.Players.Two,
			Rounds: cfg.Match.Rounds,
		},
		Seed:   cfg.Match.Seed,
		Pace:   cfg.UI.Pace,
		Width:  width,
		Height: height,
		Logger: logger,
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
		os.Exit(1)
	}
}
