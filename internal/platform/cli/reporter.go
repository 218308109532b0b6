package cli

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-rps/internal/core"
	"github.com/vovakirdan/tui-rps/internal/match"
)

// Reporter prints match progress as coloured lines.
type Reporter struct {
	out io.Writer
	st  styles
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, st: newStyles(out)}
}

// Start announces the match.
func (r *Reporter) Start() {
	fmt.Fprintln(r.out, r.st.banner.Render("Game start!"))
}

// Round prints one round result. It matches the onRound signature of match.Run.
func (r *Reporter) Round(rr match.RoundResult) {
	fmt.Fprintln(r.out, r.st.banner.Render(fmt.Sprintf("Round %d:", rr.Round)))
	fmt.Fprintln(r.out, r.st.banner.Render(fmt.Sprintf("%s: %s  %s: %s",
		core.PlayerOne, rr.First, core.PlayerTwo, rr.Second)))

	fmt.Fprintln(r.out, r.verdict(rr.Outcome, "this round", "It's a tie!"))

	fmt.Fprintln(r.out, r.st.score.Render(fmt.Sprintf("Score: %s = %d, %s = %d",
		core.PlayerOne, rr.Score.First, core.PlayerTwo, rr.Score.Second)))
}

// Final prints the final score and the match winner.
func (r *Reporter) Final(res match.Result) {
	fmt.Fprintln(r.out, r.st.banner.Render("Game over!"))
	fmt.Fprintln(r.out, r.st.score.Render(fmt.Sprintf("Final Score: %s = %d, %s = %d (ties: %d)",
		core.PlayerOne, res.Score.First, core.PlayerTwo, res.Score.Second, res.Score.Ties)))
	fmt.Fprintln(r.out, r.verdict(res.Winner, "the game", "The game is a tie!"))
}

// verdict renders "<side> wins <what>!" in the winner's colour, or tie.
func (r *Reporter) verdict(o core.Outcome, what, tie string) string {
	side, ok := o.Winner()
	if !ok {
		return r.st.tie.Render(tie)
	}
	st := r.st.first
	if side == core.PlayerTwo {
		st = r.st.second
	}
	return st.Render(fmt.Sprintf("%s wins %s!", side, what))
}
