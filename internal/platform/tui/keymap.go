// Package tui provides the Bubble Tea presentation layer: a setup menu,
// a match screen and an SSH server that serves both via Wish.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rps/internal/core"
)

// KeyMap defines the key bindings shared by the setup and match screens.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Rock     key.Binding
	Paper    key.Binding
	Scissors key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rock, k.Paper, k.Scissors, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select},
		{k.Rock, k.Paper, k.Scissors},
		{k.Back, k.Quit},
	}
}

// setupHelp lists the bindings relevant on the setup screen.
type setupHelp struct{ KeyMap }

// ShortHelp returns key bindings for the setup screen.
func (k setupHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Quit}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("down/j", "next field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev player"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next player"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Rock: key.NewBinding(
			key.WithKeys("r", "1"),
			key.WithHelp("r", "rock"),
		),
		Paper: key.NewBinding(
			key.WithKeys("p", "2"),
			key.WithHelp("p", "paper"),
		),
		Scissors: key.NewBinding(
			key.WithKeys("s", "3"),
			key.WithHelp("s", "scissors"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MoveForKey translates a key press to a move. ok is false for other keys.
func (k KeyMap) MoveForKey(msg tea.KeyMsg) (m core.Move, ok bool) {
	switch {
	case key.Matches(msg, k.Rock):
		return core.Rock, true
	case key.Matches(msg, k.Paper):
		return core.Paper, true
	case key.Matches(msg, k.Scissors):
		return core.Scissors, true
	}
	return core.MoveNone, false
}
