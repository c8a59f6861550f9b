// Package main provides the entry point for the phoneword batch encoder.
// It handles command-line arguments, configuration loading, dictionary
// construction, and orchestrates the encoding of a phone number list.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/isseis/go-phoneword/internal/cmdcommon"
	"github.com/isseis/go-phoneword/internal/common"
	"github.com/isseis/go-phoneword/internal/logging"
	"github.com/isseis/go-phoneword/internal/phoneword"
	"github.com/isseis/go-phoneword/internal/phoneword/bootstrap"
	"github.com/isseis/go-phoneword/internal/phoneword/config"
	"github.com/isseis/go-phoneword/internal/phoneword/dictionary"
	"github.com/isseis/go-phoneword/internal/phoneword/input"
	"github.com/isseis/go-phoneword/internal/phoneword/output"
)

var (
	configPath     = flag.String("config", "", "path to TOML config file")
	dictionaryPath = flag.String("dictionary", "", "path to word list file (overrides config)")
	numbersPath    = flag.String("numbers", "", "path to phone number list file (overrides config)")
	envFile        = flag.String("env-file", "", "path to environment file")
	logLevel       = flag.String("log-level", "", "log level (debug, info, warn, error); overrides config")
	logDir         = flag.String("log-dir", "", "directory to place per-run JSON log (auto-named); overrides config")
	colorMode      = flag.String("color", "", "colorize result lines (auto, always, never); overrides config")
	interactive    = flag.Bool("interactive", false, "force interactive terminal handling")
	quiet          = flag.Bool("quiet", false, "force non-interactive terminal handling")
	validate       = flag.Bool("validate", false, "validate configuration and dictionary, then exit")
	showVersion    = flag.Bool("version", false, "print version and exit")
)

func main() {
	// Generate run ID early for error handling
	runID := logging.GenerateRunID()

	if err := run(runID); err != nil {
		if startupErr, ok := err.(*logging.StartupError); ok {
			logging.HandleStartupError(startupErr.Type, startupErr.Message, startupErr.Component, runID)
		} else {
			logging.HandleStartupError(logging.ErrorTypeSystemError, err.Error(), "main", runID)
		}
		os.Exit(1)
	}
}

func run(runID string) error {
	flag.Parse()

	if *showVersion {
		fmt.Printf("phoneword %s\n", cmdcommon.Version)
		return nil
	}

	// Set up context with cancellation
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			return &logging.StartupError{
				Type:      logging.ErrorTypeConfigParsing,
				Message:   fmt.Sprintf("Failed to load environment file: %v", err),
				Component: "config",
				RunID:     runID,
			}
		}
	}

	// Load configuration
	spec, err := loadSpec()
	if err != nil {
		return &logging.StartupError{
			Type:      logging.ErrorTypeConfigParsing,
			Message:   fmt.Sprintf("Failed to load config: %v", err),
			Component: "config",
			RunID:     runID,
		}
	}
	applyOverrides(spec)

	// Setup logging system before anything that logs
	level, err := spec.Log.Level.ToSlogLevel()
	if err != nil {
		return &logging.StartupError{
			Type:      logging.ErrorTypeConfigParsing,
			Message:   err.Error(),
			Component: "config",
			RunID:     runID,
		}
	}
	if err := bootstrap.SetupLogger(bootstrap.LoggerOptions{
		Level:            level,
		LogDir:           spec.Log.Dir,
		RunID:            runID,
		ForceInteractive: *interactive,
		ForceQuiet:       *quiet,
	}); err != nil {
		return &logging.StartupError{
			Type:      logging.ErrorTypeLogFileOpen,
			Message:   fmt.Sprintf("Failed to setup logger: %v", err),
			Component: "logging",
			RunID:     runID,
		}
	}

	// Load the dictionary
	if spec.Dictionary.Path == "" {
		return &logging.StartupError{
			Type:      logging.ErrorTypeRequiredArgumentMissing,
			Message:   "Dictionary path is required (flag, config, or " + cmdcommon.EnvDictionaryPath + ")",
			Component: "dictionary",
			RunID:     runID,
		}
	}
	loader := dictionary.NewLoader(
		dictionary.WithMaxWords(spec.Dictionary.MaxWords),
		dictionary.WithMaxWordLength(spec.Dictionary.MaxWordLength),
	)
	dict, err := loader.LoadFile(spec.Dictionary.Path)
	if err != nil {
		return &logging.StartupError{
			Type:      logging.ErrorTypeDictionaryLoad,
			Message:   err.Error(),
			Component: "dictionary",
			RunID:     runID,
		}
	}
	slog.Info("Dictionary loaded",
		"path", spec.Dictionary.Path,
		"words", dict.Len(),
		"encodings", dict.Encodings(),
	)

	if *validate {
		fmt.Printf("Configuration and dictionary are valid (%d words, %d encodings)\n",
			dict.Len(), dict.Encodings())
		return nil
	}

	// Collect the numbers to encode
	numbers, err := collectNumbers(spec)
	if err != nil {
		return &logging.StartupError{
			Type:      logging.ErrorTypeInputRead,
			Message:   err.Error(),
			Component: "input",
			RunID:     runID,
		}
	}

	// Run the encoder
	colorize := bootstrap.ShouldColorize(spec.Output.Color.String(), *interactive, *quiet)
	writer, err := output.NewConsoleWriter(os.Stdout, colorize)
	if err != nil {
		return err
	}
	defer func() {
		if err := writer.Close(); err != nil {
			slog.Error("Failed to flush output", "error", err)
		}
	}()

	runner, err := phoneword.NewRunner(dict, writer, phoneword.Options{
		MaxNumberLength: spec.Input.MaxNumberLength,
	})
	if err != nil {
		return err
	}
	if _, err := runner.Run(ctx, numbers); err != nil {
		return err
	}
	return nil
}

// loadSpec loads the TOML config when one was given and the defaults
// otherwise.
func loadSpec() (*config.Spec, error) {
	if *configPath == "" {
		return config.Default(), nil
	}
	return config.NewLoader().LoadConfig(*configPath)
}

// applyOverrides layers command line flags and environment variables over
// the configured values. Flags win over the environment, which wins over
// the config file.
func applyOverrides(spec *config.Spec) {
	spec.Dictionary.Path = cmdcommon.ResolvePath(*dictionaryPath, cmdcommon.EnvDictionaryPath, spec.Dictionary.Path)
	spec.Input.Path = cmdcommon.ResolvePath(*numbersPath, cmdcommon.EnvNumbersPath, spec.Input.Path)
	spec.Log.Dir = cmdcommon.ResolvePath(*logDir, cmdcommon.EnvLogDir, spec.Log.Dir)
	if *logLevel != "" {
		spec.Log.Level = config.LogLevel(*logLevel)
	}
	if *colorMode != "" {
		spec.Output.Color = config.ColorMode(*colorMode)
	}
}

// collectNumbers gathers the phone numbers to encode: positional arguments
// when present, the configured number file otherwise.
func collectNumbers(spec *config.Spec) ([]string, error) {
	if args := flag.Args(); len(args) > 0 {
		return args, nil
	}
	if spec.Input.Path != "" {
		return input.FromFile(common.NewDefaultFileSystem(), spec.Input.Path)
	}
	return input.FromReader(os.Stdin)
}
