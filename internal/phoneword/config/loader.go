package config

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/isseis/go-phoneword/internal/common"
)

// ErrNonPositiveLimit is returned for zero or negative size limits
var ErrNonPositiveLimit = errors.New("limit must be positive")

// Default limits applied when the config file leaves them unset.
const (
	DefaultMaxWords        = 75000
	DefaultMaxWordLength   = 50
	DefaultMaxNumberLength = 50
)

// Loader handles loading and validating configurations
type Loader struct {
	fs common.FileSystem
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return NewLoaderWithFS(common.NewDefaultFileSystem())
}

// NewLoaderWithFS creates a new config loader with a custom FileSystem
func NewLoaderWithFS(fs common.FileSystem) *Loader {
	return &Loader{
		fs: fs,
	}
}

// Default returns the configuration used when no config file is given.
// The dictionary path is deliberately left empty; it must come from the
// config file, a command line flag, or the environment.
func Default() *Spec {
	return &Spec{
		Dictionary: DictionarySpec{
			MaxWords:      DefaultMaxWords,
			MaxWordLength: DefaultMaxWordLength,
		},
		Input: InputSpec{
			MaxNumberLength: DefaultMaxNumberLength,
		},
		Output: OutputSpec{
			Color: ColorModeAuto,
		},
		Log: LogSpec{
			Level: LogLevelInfo,
		},
	}
}

// LoadConfig loads configuration from a file path, fills defaults for
// unset limits, and validates the result.
func (l *Loader) LoadConfig(configPath string) (*Spec, error) {
	content, err := l.fs.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return l.Parse(content)
}

// Parse decodes configuration from TOML content, fills defaults for unset
// limits, and validates the result.
func (l *Loader) Parse(content []byte) (*Spec, error) {
	var spec Spec
	if err := toml.Unmarshal(content, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyDefaults(&spec)
	if err := Validate(&spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// applyDefaults fills unset fields with their default values.
func applyDefaults(spec *Spec) {
	if spec.Dictionary.MaxWords == 0 {
		spec.Dictionary.MaxWords = DefaultMaxWords
	}
	if spec.Dictionary.MaxWordLength == 0 {
		spec.Dictionary.MaxWordLength = DefaultMaxWordLength
	}
	if spec.Input.MaxNumberLength == 0 {
		spec.Input.MaxNumberLength = DefaultMaxNumberLength
	}
	if spec.Output.Color == "" {
		spec.Output.Color = ColorModeAuto
	}
	if spec.Log.Level == "" {
		spec.Log.Level = LogLevelInfo
	}
}

// Validate checks the configuration for internally inconsistent values.
// The dictionary path is not checked here; callers may still override it
// from flags or the environment.
func Validate(spec *Spec) error {
	if spec.Dictionary.MaxWords <= 0 {
		return fmt.Errorf("%w: dictionary.max_words = %d", ErrNonPositiveLimit, spec.Dictionary.MaxWords)
	}
	if spec.Dictionary.MaxWordLength <= 0 {
		return fmt.Errorf("%w: dictionary.max_word_length = %d", ErrNonPositiveLimit, spec.Dictionary.MaxWordLength)
	}
	if spec.Input.MaxNumberLength <= 0 {
		return fmt.Errorf("%w: input.max_number_length = %d", ErrNonPositiveLimit, spec.Input.MaxNumberLength)
	}
	return nil
}
