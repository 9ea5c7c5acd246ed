// Released under an MIT license. See LICENSE.

// Package config loads eva's settings.
//
// Precedence, lowest to highest: defaults, the YAML configuration file,
// EVA_ environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default values.
const (
	DefaultArity    = "strict"
	DefaultLogLevel = "warn"
	DefaultMaxDepth = 10000
	DefaultPrompt   = "> "

	// File is the name of the configuration file.
	File = "eva.yaml"
)

// ErrInvalid is wrapped by errors for settings with unusable values.
var ErrInvalid = errors.New("invalid setting")

// T (config) holds eva's settings.
type T struct {
	Arity    string `koanf:"arity"`
	History  bool   `koanf:"history"`
	LogLevel string `koanf:"log_level"`
	MaxDepth int    `koanf:"max_depth"`
	Prompt   string `koanf:"prompt"`
}

// Defaults returns the default settings as a koanf key map.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"arity":     DefaultArity,
		"history":   true,
		"log_level": DefaultLogLevel,
		"max_depth": DefaultMaxDepth,
		"prompt":    DefaultPrompt,
	}
}

// Find returns the first configuration file that exists: eva.yaml in the
// working directory, then $HOME/.config/eva/eva.yaml. It returns "" if neither exists.
func Find() string {
	candidates := []string{File}

	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "eva", File))
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}

	return ""
}

// Load reads settings from path (if not empty), the environment and flags.
// Flags holds koanf keys for values set on the command line.
func Load(path string, flags map[string]interface{}) (*T, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// EVA_MAX_DEPTH -> max_depth
	if err := k.Load(env.Provider("EVA_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "EVA_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg T
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Level returns the slog level named by c.LogLevel.
func (c *T) Level() slog.Level {
	var l slog.Level

	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}

	return l
}

// Lenient returns true if closures accept the wrong number of arguments.
func (c *T) Lenient() bool {
	return c.Arity == "lenient"
}

// Validate checks that every setting has a usable value.
func (c *T) Validate() error {
	switch c.Arity {
	case "strict", "lenient":
	default:
		return fmt.Errorf("%w: arity must be strict or lenient, got %q", ErrInvalid, c.Arity)
	}

	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: max_depth must be positive, got %d", ErrInvalid, c.MaxDepth)
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return nil
}
