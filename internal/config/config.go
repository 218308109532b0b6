// Package config provides YAML-based configuration loading for rps,
// with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rps/internal/strategy"
)

// Config contains everything a match session can be preconfigured with.
// Empty or zero values mean "ask the user".
type Config struct {
	Match   MatchConfig   `yaml:"match"`
	Players PlayersConfig `yaml:"players"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// MatchConfig defines match parameters.
type MatchConfig struct {
	Rounds int   `yaml:"rounds" env:"RPS_ROUNDS"` // 0 = prompt
	Seed   int64 `yaml:"seed" env:"RPS_SEED"`     // 0 = random based on time
}

// PlayersConfig preselects strategies by menu key or ID.
type PlayersConfig struct {
	One string `yaml:"one" env:"RPS_PLAYER_ONE"`
	Two string `yaml:"two" env:"RPS_PLAYER_TWO"`
}

// UIConfig defines presentation pacing.
type UIConfig struct {
	Pause time.Duration `yaml:"pause" env:"RPS_PAUSE"` // Delay between intro lines (play)
	Pace  time.Duration `yaml:"pace" env:"RPS_PACE"`   // Delay between computer-only rounds (menu, serve)
}

// LogConfig defines the logger setup.
type LogConfig struct {
	Level string `yaml:"level" env:"RPS_LOG_LEVEL"`
}

// Validate checks value ranges and that preselected players name a
// registered strategy.
func (c Config) Validate() error {
	var errs []error

	if c.Match.Rounds < 0 {
		errs = append(errs, fmt.Errorf("match.rounds must not be negative, got %d", c.Match.Rounds))
	}
	if c.UI.Pause < 0 {
		errs = append(errs, fmt.Errorf("ui.pause must not be negative, got %s", c.UI.Pause))
	}
	if c.UI.Pace < 0 {
		errs = append(errs, fmt.Errorf("ui.pace must not be negative, got %s", c.UI.Pace))
	}
	for _, p := range []struct{ name, key string }{
		{"players.one", c.Players.One},
		{"players.two", c.Players.Two},
	} {
		if p.key != "" && !strategy.Exists(p.key) {
			errs = append(errs, fmt.Errorf("%s: %w: %q", p.name, strategy.ErrUnknownStrategy, p.key))
		}
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
