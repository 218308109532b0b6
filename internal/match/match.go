// Package match runs a fixed number of rounds between two strategies,
// keeps the score and decides the winner.
package match

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rps/internal/core"
	"github.com/vovakirdan/tui-rps/internal/strategy"
)

var (
	// ErrInvalidRoundCount is returned by New for a non-positive round count.
	ErrInvalidRoundCount = errors.New("round count must be a positive integer")

	// ErrMatchFinished is returned by PlayRound once every round was played.
	ErrMatchFinished = errors.New("match already finished")

	// ErrMatchAborted is returned by PlayRound after a strategy failed.
	ErrMatchAborted = errors.New("match aborted")
)

// ID uniquely identifies a match.
type ID string

// Phase is the lifecycle stage of a match.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseFinished
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseInProgress:
		return "InProgress"
	case PhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Score holds the running totals of a match.
type Score struct {
	First  int
	Second int
	Ties   int
}

// Played returns the number of rounds the score accounts for.
func (s Score) Played() int {
	return s.First + s.Second + s.Ties
}

// RoundResult is emitted after each resolved round.
type RoundResult struct {
	Round   int // 1-based
	First   core.Move
	Second  core.Move
	Outcome core.Outcome
	Score   Score // Running totals including this round
}

// Result is the final summary of a match.
type Result struct {
	MatchID    ID
	Rounds     int
	Score      Score
	Winner     core.Outcome
	FirstName  string
	SecondName string
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger used for round events.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithID overrides the generated match ID.
func WithID(id ID) Option {
	return func(m *Match) {
		m.id = id
	}
}

// Match is the state of one game between two strategies.
// It is not safe for concurrent use.
type Match struct {
	id     ID
	first  strategy.Strategy
	second strategy.Strategy
	rounds int
	played int
	score  Score
	phase  Phase
	failed error
	logger *log.Logger
}

// New creates a match of the given number of rounds.
func New(first, second strategy.Strategy, rounds int, opts ...Option) (*Match, error) {
	if rounds <= 0 {
		return nil, fmt.Errorf("match: %w: got %d", ErrInvalidRoundCount, rounds)
	}
	if first == nil || second == nil {
		return nil, errors.New("match: both strategies are required")
	}

	m := &Match{
		id:     ID(uuid.NewString()),
		first:  first,
		second: second,
		rounds: rounds,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// ID returns the match identifier.
func (m *Match) ID() ID { return m.id }

// Rounds returns the configured number of rounds.
func (m *Match) Rounds() int { return m.rounds }

// Played returns how many rounds have completed.
func (m *Match) Played() int { return m.played }

// Score returns the running totals.
func (m *Match) Score() Score { return m.score }

// Phase returns the lifecycle stage.
func (m *Match) Phase() Phase { return m.phase }

// Finished reports whether every round has been played.
func (m *Match) Finished() bool { return m.phase == PhaseFinished }

// PlayRound plays the next round.
// A strategy error leaves the score untouched and is returned wrapped with
// the round number and side. The other strategy may already have moved, so
// the match is aborted: later calls return ErrMatchAborted.
func (m *Match) PlayRound(ctx context.Context) (RoundResult, error) {
	if m.phase == PhaseFinished {
		return RoundResult{}, ErrMatchFinished
	}
	if m.failed != nil {
		return RoundResult{}, fmt.Errorf("match: %w: %w", ErrMatchAborted, m.failed)
	}
	m.phase = PhaseInProgress
	round := m.played + 1

	move1, err := m.first.Move(ctx)
	if err != nil {
		m.failed = fmt.Errorf("round %d: %s: %w", round, core.PlayerOne, err)
		return RoundResult{}, fmt.Errorf("match: %w", m.failed)
	}
	move2, err := m.second.Move(ctx)
	if err != nil {
		m.failed = fmt.Errorf("round %d: %s: %w", round, core.PlayerTwo, err)
		return RoundResult{}, fmt.Errorf("match: %w", m.failed)
	}

	outcome := core.Resolve(move1, move2)
	switch outcome {
	case core.FirstWins:
		m.score.First++
	case core.SecondWins:
		m.score.Second++
	default:
		m.score.Ties++
	}

	// Each side only learns from a round it played, before the next round.
	m.first.Learn(move1, move2)
	m.second.Learn(move2, move1)

	m.played = round
	if m.played >= m.rounds {
		m.phase = PhaseFinished
	}

	m.logger.Debug("round resolved",
		"match", m.id,
		"round", round,
		"first", move1,
		"second", move2,
		"outcome", outcome,
		"score1", m.score.First,
		"score2", m.score.Second,
	)

	return RoundResult{
		Round:   round,
		First:   move1,
		Second:  move2,
		Outcome: outcome,
		Score:   m.score,
	}, nil
}

// Run plays all remaining rounds, calling onRound after each one.
// onRound may be nil.
func (m *Match) Run(ctx context.Context, onRound func(RoundResult)) (Result, error) {
	for !m.Finished() {
		rr, err := m.PlayRound(ctx)
		if err != nil {
			return m.Result(), err
		}
		if onRound != nil {
			onRound(rr)
		}
	}

	res := m.Result()
	m.logger.Debug("match finished",
		"match", m.id,
		"rounds", res.Rounds,
		"score1", res.Score.First,
		"score2", res.Score.Second,
		"ties", res.Score.Ties,
		"winner", res.Winner,
	)
	return res, nil
}

// Result summarizes the match so far. Winner is meaningful once Finished.
func (m *Match) Result() Result {
	return Result{
		MatchID:    m.id,
		Rounds:     m.played,
		Score:      m.score,
		Winner:     core.Compare(m.score.First, m.score.Second),
		FirstName:  m.first.Name(),
		SecondName: m.second.Name(),
	}
}
