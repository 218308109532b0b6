// rps plays Rock, Paper, Scissors matches between two strategies in the terminal.
//
// Usage:
//
//	rps list              - List available player types
//	rps play              - Play a match with line prompts
//	rps menu              - Set up and play a match in a full-screen menu
//	rps serve             - Start SSH server for remote play against the computer
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.rps/config.yaml, ./configs/rps.yaml)
//	--seed <value>      - Set RNG seed for reproducible matches
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rps/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rps",
	Short: "Rock, Paper, Scissors - play matches in your terminal",
	Long: `rps plays a multi-round game of Rock, Paper, Scissors between two players
and reports both players' scores each round.

Available commands:
  list     - Show all player types
  play     - Play a match with line prompts
  menu     - Interactive full-screen setup and match
  serve    - Start SSH server for remote play

Examples:
  rps list
  rps play
  rps play --one human --two mirror --rounds 5
  rps menu
  rps serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the config file, applies global flags and builds the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		loaded.Match.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = flagLogLevel
	}

	level, err := loaded.LogLevel()
	if err != nil {
		return err
	}

	cfg = loaded
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rps",
		Level:           level,
	})
	return nil
}
