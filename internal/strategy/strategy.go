// Package strategy provides the player abstraction for a match.
// A Strategy produces one move per round and may learn from the moves
// played in that round. Variants register themselves in init() so the
// presentation layer can list and create them by key.
package strategy

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rps/internal/core"
)

var (
	// ErrUnknownStrategy is returned for a key that no variant registered.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrNoMoveSource is returned when an interactive strategy is created
	// without an input source.
	ErrNoMoveSource = errors.New("interactive strategy needs a move source")
)

// Strategy selects moves for one side of a match.
type Strategy interface {
	// Name returns the registry ID of the variant (e.g., "rock", "mirror").
	Name() string

	// Move produces the move for the current round.
	// Only strategies backed by external input block or return an error.
	Move(ctx context.Context) (core.Move, error)

	// Learn is called once per round after resolution with this side's
	// move and the opponent's move.
	Learn(own, opponent core.Move)
}

// MoveSource supplies raw move text to an interactive strategy.
// retry is true when the previous text was rejected, so the adapter can
// show an "invalid move" prompt instead of the normal one.
type MoveSource interface {
	ReadMove(ctx context.Context, retry bool) (string, error)
}

// MoveSourceFunc adapts a function to MoveSource.
type MoveSourceFunc func(ctx context.Context, retry bool) (string, error)

// ReadMove calls f.
func (f MoveSourceFunc) ReadMove(ctx context.Context, retry bool) (string, error) {
	return f(ctx, retry)
}

// Env carries what a factory may need to build a strategy.
type Env struct {
	Rand   *rand.Rand  // Shared RNG; a time-seeded one is used when nil
	Input  MoveSource  // Required by interactive strategies only
	Logger *log.Logger // Optional; discards output when nil
}

// withDefaults fills nil fields so strategies never check for them.
func (e Env) withDefaults() Env {
	if e.Rand == nil {
		e.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	return e
}

// learnNothing is embedded by strategies that do not adapt.
type learnNothing struct{}

// Learn does nothing.
func (learnNothing) Learn(_, _ core.Move) {}

// randomMove picks one of the three moves uniformly.
func randomMove(rng *rand.Rand) core.Move {
	return core.MoveAt(rng.Intn(len(core.Moves())))
}
