// Package core holds the Rock-Paper-Scissors move domain: the three moves,
// the beats relation and round outcome resolution.
// It has no dependency on input, output or styling.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned when text does not name one of the three moves.
var ErrInvalidMove = errors.New("invalid move")

// Move is one of rock, paper or scissors.
// The zero value is MoveNone and never appears in a played round.
type Move uint8

const (
	MoveNone Move = iota
	Rock
	Paper
	Scissors
)

// cycle is the canonical move order. Each move is beaten by its successor.
var cycle = [...]Move{Rock, Paper, Scissors}

// Moves returns a fresh slice of the three moves in cycle order: rock,
// paper, scissors.
func Moves() []Move {
	ms := cycle
	return ms[:]
}

// String returns the lowercase move name.
func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "none"
	}
}

// Valid reports whether m is one of the three moves.
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

// Index returns the position of m in the cycle, or -1 for an invalid move.
func (m Move) Index() int {
	if !m.Valid() {
		return -1
	}
	return int(m - Rock)
}

// Next returns the move after m in the cycle, wrapping scissors to rock.
func (m Move) Next() Move {
	if !m.Valid() {
		return MoveNone
	}
	return cycle[(m.Index()+1)%len(cycle)]
}

// MoveAt returns the move at position i of the cycle. i wraps modulo 3.
func MoveAt(i int) Move {
	n := len(cycle)
	return cycle[((i%n)+n)%n]
}

// ParseMove converts user text into a Move.
// Matching ignores case and surrounding whitespace; nothing but the three
// move names is accepted.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	}
	return MoveNone, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}

// Beats reports whether a defeats b: rock beats scissors, scissors beats
// paper and paper beats rock. It is false for equal or invalid moves.
func Beats(a, b Move) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return (a == Rock && b == Scissors) ||
		(a == Scissors && b == Paper) ||
		(a == Paper && b == Rock)
}
