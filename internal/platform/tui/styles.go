package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rps/internal/core"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	firstStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	secondStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	tieStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	scoreStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	frameStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	helpBarStyle  = lipgloss.NewStyle().MarginTop(1)
	waitingStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("3"))
	lockedInStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// outcomeStyle picks the colour for a round or match outcome.
func outcomeStyle(o core.Outcome) lipgloss.Style {
	switch o {
	case core.FirstWins:
		return firstStyle
	case core.SecondWins:
		return secondStyle
	default:
		return tieStyle
	}
}

// center places s in the middle of a width-wide block.
func center(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
