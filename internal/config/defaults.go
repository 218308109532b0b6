package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/rps.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Match: MatchConfig{
			Rounds: 0,
			Seed:   0,
		},
		UI: UIConfig{
			Pause: 1500 * time.Millisecond,
			Pace:  800 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
