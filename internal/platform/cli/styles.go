// Package cli is the line-based presentation layer: it prompts for match
// setup and human moves on a text stream and prints coloured round reports.
package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the palette used for all line output.
// Colors degrade to plain text when the writer is not a terminal.
type styles struct {
	banner  lipgloss.Style // Headings and intro lines
	prompt  lipgloss.Style
	invalid lipgloss.Style
	first   lipgloss.Style // Player One wins
	second  lipgloss.Style // Player Two wins
	tie     lipgloss.Style
	score   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		banner:  r.NewStyle().Foreground(lipgloss.Color("3")),
		prompt:  r.NewStyle().Foreground(lipgloss.Color("6")),
		invalid: r.NewStyle().Foreground(lipgloss.Color("1")),
		first:   r.NewStyle().Foreground(lipgloss.Color("2")),
		second:  r.NewStyle().Foreground(lipgloss.Color("4")),
		tie:     r.NewStyle().Foreground(lipgloss.Color("5")),
		score:   r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	}
}
