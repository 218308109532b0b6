package strategy

import (
	"context"

	"github.com/vovakirdan/tui-rps/internal/core"
)

func init() {
	Register(Info{
		Key:         "1",
		ID:          "rock",
		Title:       "Rock Player",
		Description: "Always plays 'rock'.",
	}, func(Env) Strategy { return NewFixed() })
}

// Fixed always plays rock.
type Fixed struct {
	learnNothing
}

// NewFixed creates a Fixed strategy.
func NewFixed() *Fixed {
	return &Fixed{}
}

// Name returns the registry ID.
func (*Fixed) Name() string { return "rock" }

// Move returns rock.
func (*Fixed) Move(context.Context) (core.Move, error) {
	return core.Rock, nil
}
