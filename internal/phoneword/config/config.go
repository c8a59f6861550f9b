// Package config provides loading and validation of phoneword TOML
// configuration files: dictionary limits, input limits, output and
// logging preferences.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// LogLevel represents the logging level for the application.
// Valid values: debug, info, warn, error
type LogLevel string

const (
	// LogLevelDebug enables debug-level logging
	LogLevelDebug LogLevel = "debug"

	// LogLevelInfo enables info-level logging (default)
	LogLevelInfo LogLevel = "info"

	// LogLevelWarn enables warning-level logging
	LogLevelWarn LogLevel = "warn"

	// LogLevelError enables error-level logging only
	LogLevelError LogLevel = "error"
)

// ErrInvalidLogLevel is returned when an invalid log level is provided
var ErrInvalidLogLevel = errors.New("invalid log level")

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// This enables validation during TOML parsing.
func (l *LogLevel) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	switch LogLevel(s) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		*l = LogLevel(s)
		return nil
	case "":
		// Empty string defaults to info level
		*l = LogLevelInfo
		return nil
	default:
		return fmt.Errorf("%w: %q (must be one of: debug, info, warn, error)", ErrInvalidLogLevel, string(text))
	}
}

// ToSlogLevel converts LogLevel to slog.Level for use with the slog package.
func (l LogLevel) ToSlogLevel() (slog.Level, error) {
	switch strings.ToLower(string(l)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l)
	}
}

// String returns the string representation of LogLevel.
func (l LogLevel) String() string {
	return string(l)
}

// ColorMode controls when result lines are colorized.
// Valid values: auto, always, never
type ColorMode string

const (
	// ColorModeAuto colorizes output when the terminal is interactive (default)
	ColorModeAuto ColorMode = "auto"

	// ColorModeAlways colorizes output unconditionally
	ColorModeAlways ColorMode = "always"

	// ColorModeNever disables colorized output
	ColorModeNever ColorMode = "never"
)

// ErrInvalidColorMode is returned when an invalid color mode is provided
var ErrInvalidColorMode = errors.New("invalid color mode")

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (c *ColorMode) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	switch ColorMode(s) {
	case ColorModeAuto, ColorModeAlways, ColorModeNever:
		*c = ColorMode(s)
		return nil
	case "":
		// Empty string defaults to auto
		*c = ColorModeAuto
		return nil
	default:
		return fmt.Errorf("%w: %q (must be one of: auto, always, never)", ErrInvalidColorMode, string(text))
	}
}

// String returns the string representation of ColorMode.
func (c ColorMode) String() string {
	return string(c)
}

// DictionarySpec configures the word list.
type DictionarySpec struct {
	// Path is the word-list file, one word per line
	Path string `toml:"path"`

	// MaxWords bounds the number of words accepted from the list
	MaxWords int `toml:"max_words"`

	// MaxWordLength bounds the letter count of a single word
	MaxWordLength int `toml:"max_word_length"`
}

// InputSpec configures the phone number list.
type InputSpec struct {
	// Path is the number-list file, one number per line. Numbers given as
	// command line arguments take precedence over the file.
	Path string `toml:"path"`

	// MaxNumberLength bounds the digit count of a single number
	MaxNumberLength int `toml:"max_number_length"`
}

// OutputSpec configures result reporting.
type OutputSpec struct {
	// Color controls colorization of result lines
	Color ColorMode `toml:"color"`
}

// LogSpec configures logging.
type LogSpec struct {
	// Level is the minimum level emitted
	Level LogLevel `toml:"level"`

	// Dir receives one JSON log file per run when non-empty
	Dir string `toml:"dir"`
}

// Spec is the root configuration document.
type Spec struct {
	Dictionary DictionarySpec `toml:"dictionary"`
	Input      InputSpec      `toml:"input"`
	Output     OutputSpec     `toml:"output"`
	Log        LogSpec        `toml:"log"`
}
