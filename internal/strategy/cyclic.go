package strategy

import (
	"context"
	"math/rand"

	"github.com/vovakirdan/tui-rps/internal/core"
)

func init() {
	Register(Info{
		Key:         "4",
		ID:          "cycle",
		Title:       "Cycle Player",
		Description: "Cycles through the three moves in order (rock, paper, scissors).",
	}, func(env Env) Strategy { return NewCyclic(env.Rand) })
}

// Cyclic walks the rock, paper, scissors cycle one step per round.
type Cyclic struct {
	learnNothing
	next core.Move
}

// NewCyclic creates a Cyclic strategy starting at a random point of the cycle.
func NewCyclic(rng *rand.Rand) *Cyclic {
	return NewCyclicFrom(randomMove(rng))
}

// NewCyclicFrom creates a Cyclic strategy whose first move is start.
// An invalid start falls back to rock.
func NewCyclicFrom(start core.Move) *Cyclic {
	if !start.Valid() {
		start = core.Rock
	}
	return &Cyclic{next: start}
}

// Name returns the registry ID.
func (*Cyclic) Name() string { return "cycle" }

// Move returns the current move and advances the cycle.
func (c *Cyclic) Move(context.Context) (core.Move, error) {
	m := c.next
	c.next = m.Next()
	return m, nil
}
