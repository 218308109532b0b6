package match

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-rps/internal/core"
	"github.com/vovakirdan/tui-rps/internal/strategy"
)

// recorder wraps a strategy and keeps every Learn call.
type recorder struct {
	strategy.Strategy
	learned [][2]core.Move
}

func (r *recorder) Learn(own, opponent core.Move) {
	r.learned = append(r.learned, [2]core.Move{own, opponent})
	r.Strategy.Learn(own, opponent)
}

// failing returns err on every move.
type failing struct {
	err error
}

func (failing) Name() string { return "failing" }

func (f failing) Move(context.Context) (core.Move, error) { return core.MoveNone, f.err }

func (failing) Learn(_, _ core.Move) {}

func TestNewRejectsInvalidRoundCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := New(strategy.NewFixed(), strategy.NewFixed(), n)
		assert.ErrorIs(t, err, ErrInvalidRoundCount, "rounds=%d", n)
	}
}

func TestNewRequiresStrategies(t *testing.T) {
	_, err := New(nil, strategy.NewFixed(), 3)
	assert.Error(t, err)
}

func TestFixedVersusCyclic(t *testing.T) {
	m, err := New(strategy.NewFixed(), strategy.NewCyclicFrom(core.Rock), 3, WithID("fixed-vs-cycle"))
	require.NoError(t, err)
	assert.Equal(t, PhaseNotStarted, m.Phase())

	var rounds []RoundResult
	res, err := m.Run(context.Background(), func(rr RoundResult) {
		rounds = append(rounds, rr)
	})
	require.NoError(t, err)
	require.Len(t, rounds, 3)

	want := []struct {
		first, second core.Move
		outcome       core.Outcome
	}{
		{core.Rock, core.Rock, core.Tie},
		{core.Rock, core.Paper, core.SecondWins},
		{core.Rock, core.Scissors, core.FirstWins},
	}
	for i, w := range want {
		rr := rounds[i]
		assert.Equal(t, i+1, rr.Round)
		assert.Equal(t, w.first, rr.First, "round %d", i+1)
		assert.Equal(t, w.second, rr.Second, "round %d", i+1)
		assert.Equal(t, w.outcome, rr.Outcome, "round %d", i+1)
	}

	assert.Equal(t, Score{First: 1, Second: 1, Ties: 1}, res.Score)
	assert.Equal(t, core.Tie, res.Winner)
	assert.Equal(t, ID("fixed-vs-cycle"), res.MatchID)
	assert.Equal(t, "rock", res.FirstName)
	assert.Equal(t, "cycle", res.SecondName)
	assert.Equal(t, PhaseFinished, m.Phase())
}

func TestRunningScores(t *testing.T) {
	m, err := New(strategy.NewFixed(), strategy.NewCyclicFrom(core.Scissors), 4)
	require.NoError(t, err)

	var scores []Score
	_, err = m.Run(context.Background(), func(rr RoundResult) {
		scores = append(scores, rr.Score)
	})
	require.NoError(t, err)

	// Second plays scissors, rock, paper, scissors.
	assert.Equal(t, []Score{
		{First: 1},
		{First: 1, Ties: 1},
		{First: 1, Second: 1, Ties: 1},
		{First: 2, Second: 1, Ties: 1},
	}, scores)
}

func TestScoreInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for _, total := range []int{1, 2, 7, 50} {
		m, err := New(strategy.NewRandom(rng), strategy.NewMirror(rng), total)
		require.NoError(t, err)

		res, err := m.Run(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, total, res.Rounds)
		assert.Equal(t, total, res.Score.Played())
		assert.GreaterOrEqual(t, res.Score.First, 0)
		assert.GreaterOrEqual(t, res.Score.Second, 0)
		assert.GreaterOrEqual(t, res.Score.Ties, 0)
		assert.Equal(t, core.Compare(res.Score.First, res.Score.Second), res.Winner)
	}
}

func TestLearnOrderAndArguments(t *testing.T) {
	one := &recorder{Strategy: strategy.NewFixed()}
	two := &recorder{Strategy: strategy.NewCyclicFrom(core.Paper)}

	m, err := New(one, two, 2)
	require.NoError(t, err)
	_, err = m.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, [][2]core.Move{{core.Rock, core.Paper}, {core.Rock, core.Scissors}}, one.learned)
	assert.Equal(t, [][2]core.Move{{core.Paper, core.Rock}, {core.Scissors, core.Rock}}, two.learned)
}

func TestMirrorFollowsOpponentAcrossRounds(t *testing.T) {
	mirror := strategy.NewMirror(rand.New(rand.NewSource(5)))
	m, err := New(strategy.NewCyclicFrom(core.Rock), mirror, 4)
	require.NoError(t, err)

	var seconds []core.Move
	_, err = m.Run(context.Background(), func(rr RoundResult) {
		seconds = append(seconds, rr.Second)
	})
	require.NoError(t, err)

	// From round two on, mirror plays the cycle's previous move.
	assert.Equal(t, []core.Move{core.Rock, core.Paper, core.Scissors}, seconds[1:])
}

func TestPlayRoundAfterFinish(t *testing.T) {
	m, err := New(strategy.NewFixed(), strategy.NewFixed(), 1)
	require.NoError(t, err)

	rr, err := m.PlayRound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.Tie, rr.Outcome)
	assert.True(t, m.Finished())

	_, err = m.PlayRound(context.Background())
	assert.ErrorIs(t, err, ErrMatchFinished)
}

func TestStrategyErrorAbortsRun(t *testing.T) {
	boom := errors.New("input closed")
	m, err := New(strategy.NewFixed(), failing{err: boom}, 3)
	require.NoError(t, err)

	calls := 0
	res, err := m.Run(context.Background(), func(RoundResult) { calls++ })
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, calls)
	assert.Zero(t, res.Score.Played())
	assert.Equal(t, PhaseInProgress, m.Phase())
}

func TestFailedRoundCannotBeRetried(t *testing.T) {
	boom := errors.New("input closed")
	first := strategy.NewCyclicFrom(core.Rock)
	m, err := New(first, failing{err: boom}, 3)
	require.NoError(t, err)

	_, err = m.PlayRound(context.Background())
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrMatchAborted)

	_, err = m.PlayRound(context.Background())
	assert.ErrorIs(t, err, ErrMatchAborted)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, m.Played())

	// The refused retry did not ask the first strategy for another move.
	mv, err := first.Move(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.Paper, mv)
}

func TestGeneratedIDsDiffer(t *testing.T) {
	a, err := New(strategy.NewFixed(), strategy.NewFixed(), 1)
	require.NoError(t, err)
	b, err := New(strategy.NewFixed(), strategy.NewFixed(), 1)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotEmpty(t, a.ID())
}
