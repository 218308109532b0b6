package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rps/internal/platform/cli"
)

var (
	flagOne    string
	flagTwo    string
	flagRounds int
	flagPause  time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match with line prompts",
	Long: `Play a match, answering prompts line by line.

Anything not given by flags or config is asked for: the player type for
each side and the number of rounds. A human player types rock, paper or
scissors (any case) every round.

Player types (key or ID):
  1 rock     Always plays rock
  2 random   Picks uniformly at random
  3 mirror   Plays the opponent's previous move
  4 cycle    Cycles rock, paper, scissors
  5 human    You

Examples:
  rps play
  rps play --one human --two cycle --rounds 3
  rps play --one 3 --two 2 --rounds 100 --pause 0`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagOne, "one", "", "Player type for Player One (key or ID)")
	playCmd.Flags().StringVar(&flagTwo, "two", "", "Player type for Player Two (key or ID)")
	playCmd.Flags().IntVar(&flagRounds, "rounds", 0, "Number of rounds (0 = ask)")
	playCmd.Flags().DurationVar(&flagPause, "pause", 0, "Pause between player type descriptions")
}

func runPlay(cmd *cobra.Command, args []string) {
	opts := cli.Options{
		One:    cfg.Players.One,
		Two:    cfg.Players.Two,
		Rounds: cfg.Match.Rounds,
		Seed:   cfg.Match.Seed,
		Pause:  cfg.UI.Pause,
		Logger: logger,
	}

	flags := cmd.Flags()
	if flags.Changed("one") {
		opts.One = flagOne
	}
	if flags.Changed("two") {
		opts.Two = flagTwo
	}
	if flags.Changed("rounds") {
		opts.Rounds = flagRounds
	}
	if flags.Changed("pause") {
		opts.Pause = flagPause
	}

	// Piped input has nobody reading the intro
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		opts.Pause = 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := cli.NewSession(os.Stdin, os.Stdout, opts.Pause)
	if _, err := session.Run(ctx, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Match abandoned.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
