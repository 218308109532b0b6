package strategy

import (
	"context"
	"math/rand"

	"github.com/vovakirdan/tui-rps/internal/core"
)

func init() {
	Register(Info{
		Key:         "3",
		ID:          "mirror",
		Title:       "Mirror Player",
		Description: "Remembers the opponent's move from the previous round and plays that move next.",
	}, func(env Env) Strategy { return NewMirror(env.Rand) })
}

// Mirror replays the opponent's previous move.
// Before any round has been observed it plays a random move.
type Mirror struct {
	rng  *rand.Rand
	last core.Move // MoveNone until the first Learn
}

// NewMirror creates a Mirror strategy. rng is used for the opening move.
func NewMirror(rng *rand.Rand) *Mirror {
	return &Mirror{rng: rng}
}

// Name returns the registry ID.
func (*Mirror) Name() string { return "mirror" }

// Move returns the last observed opponent move, or a random opening move.
func (m *Mirror) Move(context.Context) (core.Move, error) {
	if m.last == core.MoveNone {
		return randomMove(m.rng), nil
	}
	return m.last, nil
}

// Learn records the opponent's move for the next round.
func (m *Mirror) Learn(_, opponent core.Move) {
	m.last = opponent
}
