// Package cmdcommon provides common functionality for the phoneword
// command-line tools.
package cmdcommon

import "os"

// Environment variable names shared by the command-line tools.
const (
	// EnvDictionaryPath overrides the dictionary file location
	EnvDictionaryPath = "PHONEWORD_DICTIONARY"

	// EnvNumbersPath overrides the phone number list location
	EnvNumbersPath = "PHONEWORD_NUMBERS"

	// EnvLogDir overrides the per-run log directory
	EnvLogDir = "PHONEWORD_LOG_DIR"
)

// Build-time variables (set via ldflags)
var (
	// Version is the release version of the binary
	Version = "dev"
)

// ResolvePath picks the effective path for a resource: command line flags
// take precedence over environment variables, which take precedence over
// the configured value.
func ResolvePath(flagValue, envVar, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(envVar); env != "" {
		return env
	}
	return configValue
}
