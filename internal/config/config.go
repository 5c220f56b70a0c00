// Package config loads the demo's TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

const (
	UnitsGraphemes = "graphemes"
	UnitsRunes     = "runes"
)

type Config struct {
	Text        string `toml:"text"`
	Prompt      string `toml:"prompt"`
	Placeholder string `toml:"placeholder"`
	Width       int    `toml:"width"`
	CharLimit   int    `toml:"char_limit"`
	Units       string `toml:"units"`

	Log Log `toml:"log"`
}

type Log struct {
	// File receives the log output. Empty discards it.
	File  string `toml:"file"`
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Prompt:      "> ",
		Placeholder: "type something",
		Units:       UnitsGraphemes,
		Log:         Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("parsing at %d:%d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("parsing: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("%w: width %d is negative", ErrInvalid, c.Width)
	}
	if c.CharLimit < 0 {
		return fmt.Errorf("%w: char_limit %d is negative", ErrInvalid, c.CharLimit)
	}
	switch c.Units {
	case UnitsGraphemes, UnitsRunes:
	default:
		return fmt.Errorf("%w: unknown units %q", ErrInvalid, c.Units)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SlogLevel parses Level. Empty means info.
func (l Log) SlogLevel() (slog.Level, error) {
	if strings.TrimSpace(l.Level) == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", l.Level, err)
	}
	return lvl, nil
}
