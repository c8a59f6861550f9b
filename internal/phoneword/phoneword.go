// Package phoneword wires the dictionary, the encoding engine, and the
// input/output collaborators into a batch encoding run.
package phoneword

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/isseis/go-phoneword/internal/phoneword/dictionary"
	"github.com/isseis/go-phoneword/internal/phoneword/encoding"
	"github.com/isseis/go-phoneword/internal/phoneword/output"
)

// Error definitions
var (
	ErrNilDictionary = errors.New("dictionary must not be nil")
	ErrNilWriter     = errors.New("output writer must not be nil")
)

// Options configures a Runner.
type Options struct {
	// MaxNumberLength bounds the digit count of a single number;
	// zero selects the engine default.
	MaxNumberLength int
}

// Stats summarizes one encoding run.
type Stats struct {
	Numbers   int           // numbers encoded
	Encodings int           // encodings emitted
	Skipped   int           // numbers rejected (for example, too many digits)
	Elapsed   time.Duration // wall clock time of the run
}

// Runner drives the encoding of a phone number list against one dictionary.
type Runner struct {
	encoder *encoding.Encoder
	writer  output.Writer
}

// NewRunner creates a Runner over the given dictionary and output writer.
func NewRunner(dict *dictionary.Dictionary, writer output.Writer, opts Options) (*Runner, error) {
	if dict == nil {
		return nil, ErrNilDictionary
	}
	if writer == nil {
		return nil, ErrNilWriter
	}

	encOpts := []encoding.Option{}
	if opts.MaxNumberLength > 0 {
		encOpts = append(encOpts, encoding.WithMaxDigits(opts.MaxNumberLength))
	}
	encoder, err := encoding.New(dict, encOpts...)
	if err != nil {
		return nil, err
	}

	return &Runner{
		encoder: encoder,
		writer:  writer,
	}, nil
}

// Run encodes every number in order and reports each accepted encoding to
// the output writer. Encoding itself is synchronous; the context is only
// checked between numbers. A number the engine rejects is logged and
// skipped; writer failures abort the run.
func (r *Runner) Run(ctx context.Context, numbers []string) (Stats, error) {
	start := time.Now()
	var stats Stats

	for _, number := range numbers {
		select {
		case <-ctx.Done():
			stats.Elapsed = time.Since(start)
			return stats, ctx.Err()
		default:
		}

		encodings, err := r.encoder.Encode(number)
		if err != nil {
			slog.Warn("Skipping number", "number", number, "error", err)
			stats.Skipped++
			continue
		}
		for _, enc := range encodings {
			if err := r.writer.WriteEncoding(enc); err != nil {
				stats.Elapsed = time.Since(start)
				return stats, err
			}
		}
		stats.Numbers++
		stats.Encodings += len(encodings)
	}

	stats.Elapsed = time.Since(start)
	slog.Info("Encoding run complete",
		"numbers", stats.Numbers,
		"encodings", stats.Encodings,
		"skipped", stats.Skipped,
		"duration_ms", stats.Elapsed.Milliseconds(),
	)
	return stats, nil
}
