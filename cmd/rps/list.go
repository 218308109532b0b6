package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rps/internal/strategy"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all player types",
	Long:  `Shows every player type with the key and ID accepted by --one and --two.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	infos := strategy.List()

	fmt.Println("Player types:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, info := range infos {
		maxIDLen = max(maxIDLen, len(info.ID))
		maxTitleLen = max(maxTitleLen, len(info.Title))
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-*s  %s\n", "Key", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-3s  %-*s  %-*s  %s\n", "---", maxIDLen, "--", maxTitleLen, "-----", "-----------")

	for _, info := range infos {
		fmt.Printf("  %-3s  %-*s  %-*s  %s\n", info.Key, maxIDLen, info.ID, maxTitleLen, info.Title, info.Description)
	}

	fmt.Println()
	fmt.Println("Run 'rps play --one <key> --two <key>' to start a match.")
}
