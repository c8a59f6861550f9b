// Package bootstrap wires up the logging system and resolves the effective
// configuration for the phoneword command-line tools before a run starts.
package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/isseis/go-phoneword/internal/logging"
	"github.com/isseis/go-phoneword/internal/terminal"
)

const (
	// File permissions for log files
	logFilePerm = 0o600
)

// LoggerOptions holds all configuration for logger setup
type LoggerOptions struct {
	Level            slog.Level
	LogDir           string    // Directory for the per-run JSON log; empty disables file logging
	RunID            string    // Identifier attached to every record of this run
	ConsoleWriter    io.Writer // Writer for console log output (defaults to stderr)
	ForceInteractive bool      // Treat the terminal as interactive regardless of detection
	ForceQuiet       bool      // Treat the terminal as non-interactive regardless of detection
}

// SetupLogger initializes the logging system and installs it as the slog
// default. It must be called exactly once during startup, before any
// logging occurs. Result lines go to stdout; log records go to the console
// writer and, when a log directory is configured, to a per-run JSON file.
func SetupLogger(opts LoggerOptions) error {
	console := opts.ConsoleWriter
	if console == nil {
		console = os.Stderr
	}

	var handlers []slog.Handler
	handlers = append(handlers, slog.NewTextHandler(console, &slog.HandlerOptions{
		Level: opts.Level,
	}))

	if opts.LogDir != "" {
		fileHandler, err := newFileHandler(opts.LogDir, opts.RunID, opts.Level)
		if err != nil {
			return err
		}
		handlers = append(handlers, fileHandler)
	}

	logger := slog.New(logging.NewMultiHandler(handlers...))
	if opts.RunID != "" {
		logger = logger.With("run_id", opts.RunID)
	}
	slog.SetDefault(logger)
	return nil
}

// newFileHandler opens the per-run JSON log file. The file name embeds a
// timestamp and the run ID so concurrent invocations never collide.
func newFileHandler(logDir, runID string, level slog.Level) (slog.Handler, error) {
	info, err := os.Stat(logDir)
	if err != nil {
		return nil, fmt.Errorf("log directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("log directory is not a directory: %s", logDir)
	}

	timestamp := time.Now().UTC().Format("20060102T150405Z")
	name := fmt.Sprintf("phoneword-%s-%s.json", timestamp, runID)
	logPath := filepath.Join(logDir, name)

	// #nosec G304 - logPath is derived from a validated directory
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}), nil
}

// ShouldColorize decides whether result lines are colorized, combining the
// configured color mode with terminal detection.
func ShouldColorize(mode string, forceInteractive, forceQuiet bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		detector := terminal.NewInteractiveDetector(terminal.DetectorOptions{
			ForceInteractive:    forceInteractive,
			ForceNonInteractive: forceQuiet,
		})
		return detector.IsInteractive()
	}
}
