package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tui-rps/internal/core"
	"github.com/vovakirdan/tui-rps/internal/strategy"
)

// Prompter reads answers line by line from an input stream.
// It implements strategy.MoveSource for the human player.
type Prompter struct {
	out    io.Writer
	st     styles
	pause  time.Duration
	scan   *bufio.Scanner
	once   sync.Once
	lines  chan string
	eofErr error // Set before lines is closed
	sleep  func(time.Duration)
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
// pause is the delay after each intro line.
func NewPrompter(in io.Reader, out io.Writer, pause time.Duration) *Prompter {
	return &Prompter{
		out:   out,
		st:    newStyles(out),
		pause: pause,
		scan:  bufio.NewScanner(in),
		lines: make(chan string),
		sleep: time.Sleep,
	}
}

// readLine waits for the next input line or ctx cancellation.
// The scanner runs in its own goroutine so a blocked read never
// prevents shutdown.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	p.once.Do(func() {
		go func() {
			for p.scan.Scan() {
				p.lines <- p.scan.Text()
			}
			p.eofErr = p.scan.Err()
			if p.eofErr == nil {
				p.eofErr = io.EOF
			}
			close(p.lines)
		}()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", p.eofErr
		}
		return line, nil
	}
}

// ask writes a prompt and returns the trimmed answer.
func (p *Prompter) ask(ctx context.Context, prompt string, retry bool) (string, error) {
	style := p.st.prompt
	if retry {
		style = p.st.invalid
	}
	fmt.Fprint(p.out, style.Render(prompt))

	line, err := p.readLine(ctx)
	if err != nil {
		fmt.Fprintln(p.out)
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadMove asks the human for a move. Validation is left to the strategy.
func (p *Prompter) ReadMove(ctx context.Context, retry bool) (string, error) {
	if retry {
		return p.ask(ctx, "Invalid move. Enter your move (rock, paper, scissors): ", true)
	}
	return p.ask(ctx, "Enter your move (rock, paper, scissors): ", false)
}

// Intro prints the available player types, pausing after each line.
func (p *Prompter) Intro(infos []strategy.Info) {
	fmt.Fprintln(p.out, p.st.banner.Render("Player types:"))
	for _, info := range infos {
		line := fmt.Sprintf("(%s) %s: %s", info.Key, info.Title, info.Description)
		fmt.Fprintln(p.out, p.st.banner.Render(line))
		if p.pause > 0 {
			p.sleep(p.pause)
		}
	}
}

// PromptStrategy asks which strategy plays the given side until a
// registered key or ID is entered.
func (p *Prompter) PromptStrategy(ctx context.Context, side core.Side) (strategy.Info, error) {
	prompt := fmt.Sprintf("Enter choice for %s (1-%d): ", side, len(strategy.List()))
	retry := false
	for {
		answer, err := p.ask(ctx, prompt, retry)
		if err != nil {
			return strategy.Info{}, err
		}

		info, err := strategy.Lookup(answer)
		if err == nil {
			return info, nil
		}
		if !errors.Is(err, strategy.ErrUnknownStrategy) {
			return strategy.Info{}, err
		}

		prompt = fmt.Sprintf("Invalid choice. Enter choice for %s: ", side)
		retry = true
	}
}

// PromptRounds asks for the number of rounds until a positive integer is entered.
func (p *Prompter) PromptRounds(ctx context.Context) (int, error) {
	prompt := "Enter number of rounds to play: "
	retry := false
	for {
		answer, err := p.ask(ctx, prompt, retry)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		switch {
		case err != nil:
			prompt = "Invalid input. Please enter a positive integer: "
		case n <= 0:
			prompt = "Please enter a positive integer: "
		default:
			return n, nil
		}
		retry = true
	}
}
