package strategy

import (
	"context"
	"math/rand"

	"github.com/vovakirdan/tui-rps/internal/core"
)

func init() {
	Register(Info{
		Key:         "2",
		ID:          "random",
		Title:       "Random Player",
		Description: "Relies purely on randomness for its moves.",
	}, func(env Env) Strategy { return NewRandom(env.Rand) })
}

// Random picks each move uniformly and independently.
type Random struct {
	learnNothing
	rng *rand.Rand
}

// NewRandom creates a Random strategy drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Name returns the registry ID.
func (*Random) Name() string { return "random" }

// Move returns a uniformly random move.
func (r *Random) Move(context.Context) (core.Move, error) {
	return randomMove(r.rng), nil
}
