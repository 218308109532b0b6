package core

// Side identifies a seat in a match.
type Side int

const (
	PlayerOne Side = iota + 1
	PlayerTwo
)

// String returns the display label for the side.
func (s Side) String() string {
	switch s {
	case PlayerOne:
		return "Player One"
	case PlayerTwo:
		return "Player Two"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a round or a whole match.
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Tie:
		return "Tie"
	case FirstWins:
		return "FirstWins"
	case SecondWins:
		return "SecondWins"
	default:
		return "Unknown"
	}
}

// Winner returns the winning side. ok is false for a tie.
func (o Outcome) Winner() (side Side, ok bool) {
	switch o {
	case FirstWins:
		return PlayerOne, true
	case SecondWins:
		return PlayerTwo, true
	default:
		return 0, false
	}
}

// Resolve decides a round between the first and second player's moves.
func Resolve(first, second Move) Outcome {
	switch {
	case Beats(first, second):
		return FirstWins
	case Beats(second, first):
		return SecondWins
	default:
		return Tie
	}
}

// Compare decides a match from the two final scores.
func Compare(first, second int) Outcome {
	switch {
	case first > second:
		return FirstWins
	case second > first:
		return SecondWins
	default:
		return Tie
	}
}
