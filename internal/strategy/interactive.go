package strategy

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rps/internal/core"
)

func init() {
	Register(Info{
		Key:         "5",
		ID:          "human",
		Title:       "Human Player",
		Description: "A human user who enters each move via the keyboard.",
		Interactive: true,
	}, func(env Env) Strategy { return NewInteractive(env.Input, env.Logger) })
}

// Interactive asks a MoveSource for every move and keeps asking until the
// text names a valid move. Rejected text never reaches the match.
type Interactive struct {
	learnNothing
	source  MoveSource
	logger  *log.Logger
	retries int
}

// NewInteractive creates an Interactive strategy reading from source.
func NewInteractive(source MoveSource, logger *log.Logger) *Interactive {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Interactive{source: source, logger: logger}
}

// Name returns the registry ID.
func (*Interactive) Name() string { return "human" }

// Move blocks until the source yields a valid move.
// It only fails when the source itself fails or ctx is done.
func (h *Interactive) Move(ctx context.Context) (core.Move, error) {
	retry := false
	for {
		if err := ctx.Err(); err != nil {
			return core.MoveNone, err
		}

		text, err := h.source.ReadMove(ctx, retry)
		if err != nil {
			return core.MoveNone, fmt.Errorf("strategy: read move: %w", err)
		}

		m, err := core.ParseMove(text)
		if err == nil {
			return m, nil
		}

		h.retries++
		h.logger.Debug("rejected move input", "input", text, "retries", h.retries)
		retry = true
	}
}

// Retries returns how many inputs have been rejected so far.
func (h *Interactive) Retries() int {
	return h.retries
}
