// Package config loads the command line tool settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/myparse/myparse-go/parser"
)

// Config is the root YAML structure.
//
//	mode: compile
//	color: never
//	prompt: "calc> "
//	history_file: ~/.myparse_history
//	overflow: wrapping
//	fuel: 10000
//	max_depth: 64
//	log_level: debug
type Config struct {
	Mode        string `yaml:"mode"`     // eval or compile
	Color       string `yaml:"color"`    // auto, always or never
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file,omitempty"`
	Overflow    string `yaml:"overflow"` // checked or wrapping
	Fuel        uint64 `yaml:"fuel"`     // 0 means unlimited
	MaxDepth    int    `yaml:"max_depth"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode:     "eval",
		Color:    "auto",
		Prompt:   "> ",
		Overflow: "checked",
		MaxDepth: parser.DefaultMaxDepth,
		LogLevel: "warn",
	}
}

// Load reads a config file. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every enumerated field.
func (c Config) Validate() error {
	switch c.Mode {
	case "eval", "compile":
	default:
		return fmt.Errorf("invalid mode %q (expected eval or compile)", c.Mode)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q (expected auto, always or never)", c.Color)
	}
	switch c.Overflow {
	case "checked", "wrapping":
	default:
		return fmt.Errorf("invalid overflow %q (expected checked or wrapping)", c.Overflow)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}
