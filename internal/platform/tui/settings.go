package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Settings configure a TUI session.
type Settings struct {
	Defaults Defaults
	Seed     int64         // 0 = seed each match from the current time
	Pace     time.Duration // Delay between rounds when no human plays
	Width    int
	Height   int
	Logger   *log.Logger
}

// withDefaults fills zero values.
func (s Settings) withDefaults() Settings {
	if s.Width <= 0 {
		s.Width = 80
	}
	if s.Height <= 0 {
		s.Height = 24
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	return s
}
