package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-rps/internal/core"
	"github.com/vovakirdan/tui-rps/internal/match"
	"github.com/vovakirdan/tui-rps/internal/strategy"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func info(t *testing.T, key string) strategy.Info {
	t.Helper()
	in, err := strategy.Lookup(key)
	require.NoError(t, err)
	return in
}

func TestMoveForKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Move
		ok   bool
	}{
		{runes("r"), core.Rock, true},
		{runes("p"), core.Paper, true},
		{runes("s"), core.Scissors, true},
		{runes("2"), core.Paper, true},
		{runes("x"), core.MoveNone, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.MoveNone, false},
	}

	for _, tt := range tests {
		got, ok := km.MoveForKey(tt.msg)
		assert.Equal(t, tt.ok, ok, "key %q", tt.msg.String())
		assert.Equal(t, tt.want, got, "key %q", tt.msg.String())
	}
}

func updateSetup(t *testing.T, m SetupModel, msgs ...tea.Msg) SetupModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(SetupModel)
		require.True(t, ok)
	}
	return m
}

func TestSetupDefaults(t *testing.T) {
	m := NewSetupModel(Defaults{One: "mirror", Two: "4", Rounds: 5}, 80, 24)
	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, "mirror", sel.One.ID)
	assert.Equal(t, "cycle", sel.Two.ID)
	assert.Equal(t, 5, sel.Rounds)
}

func TestSetupRequiresPositiveRounds(t *testing.T) {
	m := NewSetupModel(Defaults{}, 80, 24)
	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.Selected())
	assert.NotEmpty(t, m.err)
	assert.Equal(t, fieldRounds, m.field)

	// Letters are ignored, digits are typed.
	m = updateSetup(t, m, runes("x"), runes("0"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.Selected())

	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	sel := m.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, 3, sel.Rounds)
}

func TestSetupCyclesStrategies(t *testing.T) {
	m := NewSetupModel(Defaults{Rounds: 1}, 80, 24)

	// Player One: rock -> random; Player Two: rock -> human (wraps left).
	m = updateSetup(t, m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	sel := m.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, "random", sel.One.ID)
	assert.Equal(t, "human", sel.Two.ID)
}

func TestSetupMenuKeyJump(t *testing.T) {
	m := NewSetupModel(Defaults{Rounds: 1}, 80, 24)
	m = updateSetup(t, m, runes("4"), tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, "cycle", sel.One.ID)
}

func TestSetupQuit(t *testing.T) {
	m := NewSetupModel(Defaults{}, 80, 24)
	next, cmd := m.Update(runes("q"))
	assert.True(t, next.(SetupModel).IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func updateMatch(t *testing.T, m MatchModel, msgs ...tea.Msg) MatchModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(MatchModel)
		require.True(t, ok)
	}
	return m
}

func TestMatchComputerOnly(t *testing.T) {
	m, err := NewMatchModel(Selection{One: info(t, "rock"), Two: info(t, "random"), Rounds: 4}, Settings{Seed: 7})
	require.NoError(t, err)
	require.NotNil(t, m.Init())

	for i := 0; i < 10 && m.Result() == nil; i++ {
		m = updateMatch(t, m, RoundMsg{ID: m.match.ID()})
	}

	res := m.Result()
	require.NotNil(t, res)
	assert.Equal(t, 4, res.Score.Played())
	assert.Len(t, m.rows, 4)
	assert.Contains(t, m.View(), "Game over!")

	// Late ticks are ignored.
	m = updateMatch(t, m, RoundMsg{ID: m.match.ID()})
	assert.Len(t, m.rows, 4)
}

func TestMatchIgnoresTickFromOtherMatch(t *testing.T) {
	sel := Selection{One: info(t, "rock"), Two: info(t, "cycle"), Rounds: 3}
	old, err := NewMatchModel(sel, Settings{Seed: 1})
	require.NoError(t, err)
	m, err := NewMatchModel(sel, Settings{Seed: 1})
	require.NoError(t, err)
	require.NotEqual(t, old.match.ID(), m.match.ID())

	next, cmd := m.Update(RoundMsg{ID: old.match.ID()})
	m = next.(MatchModel)
	assert.Nil(t, cmd)
	assert.Zero(t, m.match.Played())

	next, cmd = m.Update(RoundMsg{ID: m.match.ID()})
	m = next.(MatchModel)
	assert.Equal(t, 1, m.match.Played())
	require.NotNil(t, cmd)
	assert.Equal(t, RoundMsg{ID: m.match.ID()}, cmd())
}

func TestMatchHumanVersusRock(t *testing.T) {
	m, err := NewMatchModel(Selection{One: info(t, "human"), Two: info(t, "rock"), Rounds: 2}, Settings{})
	require.NoError(t, err)
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "Player One, choose your move")

	// Ticks never play a round for a human.
	m = updateMatch(t, m, RoundMsg{ID: m.match.ID()}, runes("x"))
	assert.Zero(t, m.match.Played())

	m = updateMatch(t, m, runes("p"))
	require.NotNil(t, m.last)
	assert.Equal(t, core.FirstWins, m.last.Outcome)

	m = updateMatch(t, m, runes("s"))
	res := m.Result()
	require.NotNil(t, res)
	assert.Equal(t, match.Score{First: 1, Second: 1}, res.Score)
	assert.Equal(t, core.Tie, res.Winner)

	// Moves after the end are ignored, enter starts a rematch.
	m = updateMatch(t, m, runes("r"))
	assert.Equal(t, 2, m.match.Played())

	m = updateMatch(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Zero(t, m.match.Played())
	assert.Nil(t, m.Result())
}

func TestMatchHotSeat(t *testing.T) {
	m, err := NewMatchModel(Selection{One: info(t, "human"), Two: info(t, "human"), Rounds: 1}, Settings{})
	require.NoError(t, err)

	m = updateMatch(t, m, runes("r"))
	assert.Zero(t, m.match.Played())
	assert.Equal(t, 1, m.awaiting())
	assert.Contains(t, m.View(), "Player One locked in.")

	m = updateMatch(t, m, runes("s"))
	res := m.Result()
	require.NotNil(t, res)
	assert.Equal(t, core.FirstWins, res.Winner)
}

func TestMatchBackAndQuit(t *testing.T) {
	m, err := NewMatchModel(Selection{One: info(t, "human"), Two: info(t, "rock"), Rounds: 1}, Settings{})
	require.NoError(t, err)

	back := updateMatch(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.BackToMenu())

	quit := updateMatch(t, m, runes("q"))
	assert.True(t, quit.IsQuitting())
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(Settings{Defaults: Defaults{One: "human", Two: "cycle", Rounds: 2}})

	update := func(msg tea.Msg) {
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, s.play)
	assert.Equal(t, "human", s.play.sel.One.ID)

	update(runes("r"))
	assert.Equal(t, 1, s.play.match.Played())

	update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, s.play)
	assert.Equal(t, Defaults{One: "human", Two: "cycle", Rounds: 2}, s.settings.Defaults)

	update(runes("q"))
	assert.True(t, s.quitting)
}

func TestHostKeyPathCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "keys", "host_key")

	got, err := hostKeyPath(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	st, err := os.Stat(filepath.Join(dir, "keys"))
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}

func TestHostKeyPathDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := hostKeyPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".rps", "host_key"), got)
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
}

func TestSessionRestartDropsPendingTick(t *testing.T) {
	s := NewSessionModel(Settings{Defaults: Defaults{One: "rock", Two: "random", Rounds: 3}, Seed: 5})

	update := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	start := update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, s.play)
	require.NotNil(t, start)
	stale := start()
	first := s.play.match.ID()

	update(runes("b"))
	require.Nil(t, s.play)

	start = update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, s.play)
	require.NotEqual(t, first, s.play.match.ID())
	fresh := start()

	// The tick left over from the first match neither plays nor reschedules.
	assert.Nil(t, update(stale))
	assert.Zero(t, s.play.match.Played())

	assert.NotNil(t, update(fresh))
	assert.Equal(t, 1, s.play.match.Played())
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, "Player One wins the game!", verdict(core.FirstWins, "the game", "tie"))
	assert.Equal(t, "Player Two wins this round!", verdict(core.SecondWins, "this round", "tie"))
	assert.Equal(t, "tie", verdict(core.Tie, "this round", "tie"))
}
