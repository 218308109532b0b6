package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rps/internal/core"
	"github.com/vovakirdan/tui-rps/internal/match"
	"github.com/vovakirdan/tui-rps/internal/strategy"
)

// Options preconfigure a session. Empty players and zero rounds are
// asked for interactively.
type Options struct {
	One    string // Strategy key or ID for Player One
	Two    string // Strategy key or ID for Player Two
	Rounds int
	Seed   int64         // 0 = seed from the current time
	Pause  time.Duration // Delay after each intro line
	Logger *log.Logger
}

// Session runs one match on a line-based terminal.
type Session struct {
	prompter *Prompter
	reporter *Reporter
}

// NewSession creates a session reading answers from in and printing to out.
func NewSession(in io.Reader, out io.Writer, pause time.Duration) *Session {
	return &Session{
		prompter: NewPrompter(in, out, pause),
		reporter: NewReporter(out),
	}
}

// Run sets up and plays a match.
// Preconfigured values that do not resolve are returned as errors rather
// than re-prompted, since the user cannot correct them interactively.
func (s *Session) Run(ctx context.Context, opts Options) (match.Result, error) {
	if opts.Rounds < 0 {
		return match.Result{}, fmt.Errorf("rounds: %w: got %d", match.ErrInvalidRoundCount, opts.Rounds)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if opts.One == "" || opts.Two == "" {
		s.prompter.Intro(strategy.List())
	}

	one, err := s.resolve(ctx, opts.One, core.PlayerOne)
	if err != nil {
		return match.Result{}, err
	}
	two, err := s.resolve(ctx, opts.Two, core.PlayerTwo)
	if err != nil {
		return match.Result{}, err
	}

	s.reporter.Start()
	rounds := opts.Rounds
	if rounds == 0 {
		if rounds, err = s.prompter.PromptRounds(ctx); err != nil {
			return match.Result{}, err
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	env := strategy.Env{
		Rand:   rand.New(rand.NewSource(seed)),
		Input:  s.prompter,
		Logger: logger,
	}

	first, err := strategy.Create(one.ID, env)
	if err != nil {
		return match.Result{}, err
	}
	second, err := strategy.Create(two.ID, env)
	if err != nil {
		return match.Result{}, err
	}

	m, err := match.New(first, second, rounds, match.WithLogger(logger))
	if err != nil {
		return match.Result{}, err
	}
	logger.Debug("match configured", "match", m.ID(), "one", one.ID, "two", two.ID, "rounds", rounds, "seed", seed)

	res, err := m.Run(ctx, s.reporter.Round)
	if err != nil {
		return res, err
	}
	s.reporter.Final(res)
	return res, nil
}

// resolve looks up a preconfigured key or prompts for one.
func (s *Session) resolve(ctx context.Context, key string, side core.Side) (strategy.Info, error) {
	if key != "" {
		info, err := strategy.Lookup(key)
		if err != nil {
			return strategy.Info{}, fmt.Errorf("%s: %w", side, err)
		}
		return info, nil
	}
	return s.prompter.PromptStrategy(ctx, side)
}
