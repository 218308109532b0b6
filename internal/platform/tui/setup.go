package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rps/internal/core"
	"github.com/vovakirdan/tui-rps/internal/strategy"
)

// Setup fields, top to bottom.
const (
	fieldOne = iota
	fieldTwo
	fieldRounds
	fieldCount
)

// Defaults preselect values on the setup screen.
type Defaults struct {
	One    string // Strategy key or ID
	Two    string
	Rounds int
}

// Selection is the confirmed match setup.
type Selection struct {
	One    strategy.Info
	Two    strategy.Info
	Rounds int
}

// SetupModel is the Bubble Tea model for choosing both players and the
// round count.
type SetupModel struct {
	infos     []strategy.Info
	picks     [2]int // Index into infos per side
	field     int
	rounds    textinput.Model
	keys      KeyMap
	help      help.Model
	width     int
	height    int
	err       string
	quitting  bool
	selection *Selection
}

// NewSetupModel creates a setup model with the given defaults.
// Unknown default keys fall back to the first registered strategy.
func NewSetupModel(d Defaults, width, height int) SetupModel {
	infos := strategy.List()

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "3"
	ti.CharLimit = 4
	ti.Width = 6
	if d.Rounds > 0 {
		ti.SetValue(strconv.Itoa(d.Rounds))
	}

	return SetupModel{
		infos:  infos,
		picks:  [2]int{indexOf(infos, d.One), indexOf(infos, d.Two)},
		rounds: ti,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// indexOf returns the position of key in infos, or 0.
func indexOf(infos []strategy.Info, k string) int {
	if k == "" {
		return 0
	}
	info, err := strategy.Lookup(k)
	if err != nil {
		return 0
	}
	for i, in := range infos {
		if in.ID == info.ID {
			return i
		}
	}
	return 0
}

// Init initializes the setup model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the setup screen.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for field navigation and editing.
func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		return m.focus((m.field + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keys.Down):
		return m.focus((m.field + 1) % fieldCount)

	case key.Matches(msg, m.keys.Select):
		return m.confirm()
	}

	if m.field == fieldRounds {
		if msg.Type == tea.KeyRunes && !allDigits(msg.Runes) {
			return m, nil
		}
		var cmd tea.Cmd
		m.rounds, cmd = m.rounds.Update(msg)
		m.err = ""
		return m, cmd
	}

	side := m.field
	switch {
	case key.Matches(msg, m.keys.Left):
		m.picks[side] = (m.picks[side] + len(m.infos) - 1) % len(m.infos)
	case key.Matches(msg, m.keys.Right):
		m.picks[side] = (m.picks[side] + 1) % len(m.infos)
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		// Menu keys jump straight to a strategy.
		if info, err := strategy.Lookup(string(msg.Runes)); err == nil {
			m.picks[side] = indexOf(m.infos, info.ID)
		}
	}
	return m, nil
}

// focus moves the cursor to field f.
func (m SetupModel) focus(f int) (tea.Model, tea.Cmd) {
	m.field = f
	if f == fieldRounds {
		return m, m.rounds.Focus()
	}
	m.rounds.Blur()
	return m, nil
}

// confirm validates the round count and finishes setup.
func (m SetupModel) confirm() (tea.Model, tea.Cmd) {
	n, err := strconv.Atoi(strings.TrimSpace(m.rounds.Value()))
	if err != nil || n <= 0 {
		m.err = "Please enter a positive integer number of rounds."
		return m.focus(fieldRounds)
	}

	m.selection = &Selection{
		One:    m.infos[m.picks[0]],
		Two:    m.infos[m.picks[1]],
		Rounds: n,
	}
	return m, nil
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("R O C K   P A P E R   S C I S S O R S"))
	b.WriteString("\n\n")

	for side, label := range []core.Side{core.PlayerOne, core.PlayerTwo} {
		info := m.infos[m.picks[side]]
		line := fmt.Sprintf("%-11s < %s >", label.String()+":", info.Title)
		if m.field == side {
			b.WriteString(activeStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("    " + info.Description))
		b.WriteString("\n")
	}

	rounds := fmt.Sprintf("%-11s %s", "Rounds:", m.rounds.View())
	if m.field == fieldRounds {
		b.WriteString(activeStyle.Render("> ") + rounds)
	} else {
		b.WriteString("  " + rounds)
	}
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpBarStyle.Render(m.help.View(setupHelp{m.keys})))

	return center(frameStyle.Render(b.String()), m.width)
}

// Selected returns the confirmed setup, or nil if none yet.
func (m SetupModel) Selected() *Selection {
	return m.selection
}

// IsQuitting returns true if user requested to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(rs) > 0
}
