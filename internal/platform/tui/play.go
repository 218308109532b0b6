package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rps/internal/core"
	"github.com/vovakirdan/tui-rps/internal/match"
	"github.com/vovakirdan/tui-rps/internal/strategy"
)

var errNoPendingMove = errors.New("no move entered")

// keySource feeds a key press to an interactive strategy.
// The match screen sets pending before asking the match to play a round.
type keySource struct {
	pending core.Move
}

// ReadMove hands over the pending move once.
func (k *keySource) ReadMove(context.Context, bool) (string, error) {
	if k.pending == core.MoveNone {
		return "", errNoPendingMove
	}
	m := k.pending
	k.pending = core.MoveNone
	return m.String(), nil
}

// RoundMsg is sent to play the next round of a computer-only match.
// A tick scheduled for a match that has since been left is dropped.
type RoundMsg struct {
	ID match.ID
}

// roundCmd schedules the next automatic round of match id.
func roundCmd(id match.ID, pace time.Duration) tea.Cmd {
	if pace <= 0 {
		return func() tea.Msg { return RoundMsg{ID: id} }
	}
	return tea.Tick(pace, func(time.Time) tea.Msg {
		return RoundMsg{ID: id}
	})
}

// MatchModel is the Bubble Tea model for a running match.
type MatchModel struct {
	sel        Selection
	settings   Settings
	match      *match.Match
	humans     [2]*keySource // nil for computer sides
	history    table.Model
	rows       []table.Row
	last       *match.RoundResult
	result     *match.Result
	keys       KeyMap
	help       help.Model
	err        error
	quitting   bool
	backToMenu bool
}

// NewMatchModel creates the strategies for sel and a fresh match.
func NewMatchModel(sel Selection, settings Settings) (MatchModel, error) {
	settings = settings.withDefaults()

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var humans [2]*keySource
	var players [2]strategy.Strategy
	for i, info := range []strategy.Info{sel.One, sel.Two} {
		env := strategy.Env{Rand: rng, Logger: settings.Logger}
		if info.Interactive {
			humans[i] = &keySource{}
			env.Input = humans[i]
		}
		s, err := strategy.Create(info.ID, env)
		if err != nil {
			return MatchModel{}, err
		}
		players[i] = s
	}

	mt, err := match.New(players[0], players[1], sel.Rounds, match.WithLogger(settings.Logger))
	if err != nil {
		return MatchModel{}, err
	}

	m := MatchModel{
		sel:      sel,
		settings: settings,
		match:    mt,
		humans:   humans,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	m.history = m.newTable()
	return m, nil
}

// newTable creates the round history table.
func (m MatchModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Round", Width: 6},
			{Title: core.PlayerOne.String(), Width: 11},
			{Title: core.PlayerTwo.String(), Width: 11},
			{Title: "Result", Width: 12},
			{Title: "Score", Width: 7},
		}),
		table.WithFocused(false),
		table.WithHeight(m.tableHeight()),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

// tableHeight leaves room for the header, status and help lines.
func (m MatchModel) tableHeight() int {
	h := m.settings.Height - 14
	if h < 3 {
		h = 3
	}
	return h
}

// Init starts automatic play when no human is involved.
func (m MatchModel) Init() tea.Cmd {
	if m.awaiting() < 0 {
		return roundCmd(m.match.ID(), m.settings.Pace)
	}
	return nil
}

// Update handles messages.
func (m MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.settings.Width = msg.Width
		m.settings.Height = msg.Height
		m.history.SetHeight(m.tableHeight())
		return m, nil
	case RoundMsg:
		if msg.ID != m.match.ID() || m.hasHuman() || m.match.Finished() || m.err != nil {
			return m, nil
		}
		return m.playRound()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m MatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Select) && m.match.Finished():
		next, err := NewMatchModel(m.sel, m.settings)
		if err != nil {
			m.err = err
			return m, nil
		}
		return next, next.Init()
	}

	mv, ok := m.keys.MoveForKey(msg)
	if !ok || m.match.Finished() || m.err != nil {
		return m, nil
	}

	side := m.awaiting()
	if side < 0 {
		return m, nil
	}
	m.humans[side].pending = mv

	if m.awaiting() >= 0 {
		// Hot seat: the other human still has to choose.
		return m, nil
	}
	return m.playRound()
}

// awaiting returns the index of the first human side without a pending
// move, or -1 when every human has chosen (or there are none).
func (m MatchModel) awaiting() int {
	for i, h := range m.humans {
		if h != nil && h.pending == core.MoveNone {
			return i
		}
	}
	return -1
}

// hasHuman reports whether any side is interactive.
func (m MatchModel) hasHuman() bool {
	return m.humans[0] != nil || m.humans[1] != nil
}

// playRound resolves one round and schedules the next automatic one.
func (m MatchModel) playRound() (tea.Model, tea.Cmd) {
	rr, err := m.match.PlayRound(context.Background())
	if err != nil {
		m.err = err
		m.settings.Logger.Error("round failed", "match", m.match.ID(), "error", err)
		return m, nil
	}

	m.last = &rr
	m.rows = append(m.rows, table.Row{
		fmt.Sprintf("%d", rr.Round),
		rr.First.String(),
		rr.Second.String(),
		roundText(rr.Outcome),
		fmt.Sprintf("%d-%d", rr.Score.First, rr.Score.Second),
	})
	m.history.SetRows(m.rows)
	m.history.GotoBottom()

	if m.match.Finished() {
		res := m.match.Result()
		m.result = &res
		return m, nil
	}
	if !m.hasHuman() {
		return m, roundCmd(m.match.ID(), m.settings.Pace)
	}
	return m, nil
}

// roundText describes a round outcome for the history table.
func roundText(o core.Outcome) string {
	switch o {
	case core.FirstWins:
		return "One wins"
	case core.SecondWins:
		return "Two wins"
	default:
		return "Tie"
	}
}

// View renders the match screen.
func (m MatchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s vs %s", m.sel.One.Title, m.sel.Two.Title)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Round %d of %d", m.match.Played(), m.match.Rounds())))
	b.WriteString("\n\n")

	score := m.match.Score()
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %s = %d, %s = %d, ties = %d",
		core.PlayerOne, score.First, core.PlayerTwo, score.Second, score.Ties)))
	b.WriteString("\n\n")

	b.WriteString(m.history.View())
	b.WriteString("\n\n")
	b.WriteString(m.status())
	b.WriteString(helpBarStyle.Render(m.help.View(m.keys)))

	return center(frameStyle.Render(b.String()), m.settings.Width)
}

// status renders the line under the history table.
func (m MatchModel) status() string {
	switch {
	case m.err != nil:
		return errorStyle.Render("Error: "+m.err.Error()) + "\n"

	case m.result != nil:
		line := verdict(m.result.Winner, "the game", "The game is a tie!")
		return outcomeStyle(m.result.Winner).Render("Game over! "+line) + "\n" +
			labelStyle.Render("enter: rematch") + "\n"
	}

	var b strings.Builder
	if m.last != nil {
		b.WriteString(outcomeStyle(m.last.Outcome).Render(lastRoundText(*m.last)))
		b.WriteString("\n")
	}

	side := m.awaiting()
	switch {
	case side >= 0:
		if side == 1 && m.humans[0] != nil {
			b.WriteString(lockedInStyle.Render(core.PlayerOne.String() + " locked in. "))
		}
		b.WriteString(waitingStyle.Render(fmt.Sprintf("%s, choose your move: r/p/s", core.Side(side+1))))
		b.WriteString("\n")
	case !m.hasHuman():
		b.WriteString(waitingStyle.Render("Playing..."))
		b.WriteString("\n")
	}
	return b.String()
}

// lastRoundText describes the previous round.
func lastRoundText(rr match.RoundResult) string {
	moves := fmt.Sprintf("%s: %s  %s: %s. ", core.PlayerOne, rr.First, core.PlayerTwo, rr.Second)
	return moves + verdict(rr.Outcome, "this round", "It's a tie!")
}

// verdict names the winning side of o, or returns tie.
func verdict(o core.Outcome, what, tie string) string {
	if side, ok := o.Winner(); ok {
		return fmt.Sprintf("%s wins %s!", side, what)
	}
	return tie
}

// Result returns the final result once the match is over.
func (m MatchModel) Result() *match.Result {
	return m.result
}

// IsQuitting returns true if user requested to quit entirely.
func (m MatchModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to setup.
func (m MatchModel) BackToMenu() bool {
	return m.backToMenu
}
