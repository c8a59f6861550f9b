package dictionary

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/isseis/go-phoneword/internal/common"
)

// Error definitions for the dictionary loader
var (
	// ErrTooManyWords is returned when the word list exceeds the configured size
	ErrTooManyWords = errors.New("dictionary exceeds maximum word count")

	// ErrWordTooLong is returned when a word exceeds the configured letter count
	ErrWordTooLong = errors.New("dictionary word exceeds maximum length")

	// ErrInvalidCharacter is returned for characters outside letters, '-' and '"'
	ErrInvalidCharacter = errors.New("dictionary word contains invalid character")

	// ErrLeadingNonLetter is returned when a word does not start with a letter
	ErrLeadingNonLetter = errors.New("dictionary word must start with a letter")
)

// Default limits, matching the classic problem parameters.
const (
	DefaultMaxWords      = 75000
	DefaultMaxWordLength = 50
)

// LineError reports a validation failure with its position in the word list.
type LineError struct {
	Line int
	Word string
	Err  error
}

// Error implements the error interface
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Word, e.Err)
}

// Unwrap implements error wrapping for errors.Unwrap
func (e *LineError) Unwrap() error {
	return e.Err
}

// Loader reads word-list files into a Dictionary. A word list holds one
// word per line; words consist of letters plus optional '-' and '"'
// characters and never start with a non-letter. Blank lines are skipped.
type Loader struct {
	fs            common.FileSystem
	maxWords      int
	maxWordLength int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithMaxWords overrides the maximum word count.
func WithMaxWords(n int) LoaderOption {
	return func(l *Loader) {
		l.maxWords = n
	}
}

// WithMaxWordLength overrides the maximum letter count per word.
func WithMaxWordLength(n int) LoaderOption {
	return func(l *Loader) {
		l.maxWordLength = n
	}
}

// NewLoader creates a loader backed by the real file system.
func NewLoader(opts ...LoaderOption) *Loader {
	return NewLoaderWithFS(common.NewDefaultFileSystem(), opts...)
}

// NewLoaderWithFS creates a loader with a custom FileSystem.
func NewLoaderWithFS(fs common.FileSystem, opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:            fs,
		maxWords:      DefaultMaxWords,
		maxWordLength: DefaultMaxWordLength,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile reads and indexes the word list at path.
func (l *Loader) LoadFile(path string) (*Dictionary, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}
	dict, err := l.Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid dictionary file %s: %w", path, err)
	}
	return dict, nil
}

// Load reads and indexes a word list from r.
func (l *Loader) Load(r io.Reader) (*Dictionary, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	line := 0
	for scanner.Scan() {
		line++
		word := strings.TrimRight(scanner.Text(), "\r")
		if word == "" {
			continue
		}
		if err := l.validateWord(word); err != nil {
			return nil, &LineError{Line: line, Word: word, Err: err}
		}
		words = append(words, word)
		if len(words) > l.maxWords {
			return nil, fmt.Errorf("%w: more than %d words", ErrTooManyWords, l.maxWords)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return New(words), nil
}

// validateWord enforces the word-list character and length rules.
func (l *Loader) validateWord(word string) error {
	letters := 0
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			letters++
		case c == '-' || c == '"':
			if i == 0 {
				return ErrLeadingNonLetter
			}
		default:
			return fmt.Errorf("%w: %q", ErrInvalidCharacter, c)
		}
	}
	if letters > l.maxWordLength {
		return fmt.Errorf("%w: %d letters (max %d)", ErrWordTooLong, letters, l.maxWordLength)
	}
	return nil
}
