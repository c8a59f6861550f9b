package logging

import (
	"fmt"
	"os"
	"strings"
)

// ErrorType represents different types of startup errors
type ErrorType string

const (
	// ErrorTypeConfigParsing represents configuration parsing failures
	ErrorTypeConfigParsing ErrorType = "config_parsing_failed"
	// ErrorTypeLogFileOpen represents log file opening failures
	ErrorTypeLogFileOpen ErrorType = "log_file_open_failed"
	// ErrorTypeDictionaryLoad represents dictionary loading failures
	ErrorTypeDictionaryLoad ErrorType = "dictionary_load_failed"
	// ErrorTypeInputRead represents phone number input failures
	ErrorTypeInputRead ErrorType = "input_read_failed"
	// ErrorTypeRequiredArgumentMissing represents missing required argument errors
	ErrorTypeRequiredArgumentMissing ErrorType = "required_argument_missing"
	// ErrorTypeSystemError represents system errors
	ErrorTypeSystemError ErrorType = "system_error"
)

// StartupError represents an error that occurs before the encoding run starts,
// typically while the logging system itself may not be fully configured.
type StartupError struct {
	Type      ErrorType
	Message   string
	Component string
	RunID     string
	Err       error // Wrapped error for better error context preservation
}

// Error implements the error interface
func (e *StartupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v (component: %s, run_id: %s)", e.Type, e.Message, e.Err, e.Component, e.RunID)
	}
	return fmt.Sprintf("%s: %s (component: %s, run_id: %s)", e.Type, e.Message, e.Component, e.RunID)
}

// Unwrap implements error wrapping for errors.Unwrap
func (e *StartupError) Unwrap() error {
	return e.Err
}

// HandleStartupError reports a startup error on stderr in a fixed format.
// It does not rely on slog being configured, since the failure may have
// happened while setting up the logging system.
func HandleStartupError(errorType ErrorType, errorMsg, component, runID string) {
	// Build output atomically to prevent interleaved lines
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", errorType)
	if component != "" {
		fmt.Fprintf(&b, "  Component: %s\n", component)
	}
	fmt.Fprintf(&b, "  Details: %s\n", errorMsg)
	if runID != "" {
		fmt.Fprintf(&b, "  Run ID: %s\n", runID)
	}
	fmt.Fprint(os.Stderr, b.String())
}
