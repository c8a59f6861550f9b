// Package output delivers accepted encodings to a reporting sink, one line
// per encoding.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/isseis/go-phoneword/internal/color"
	"github.com/isseis/go-phoneword/internal/phoneword/encoding"
)

// Error definitions
var (
	ErrNilWriter = errors.New("output writer must not be nil")
)

// Writer is the sink the encoder's results are reported to.
type Writer interface {
	// WriteEncoding emits one accepted encoding
	WriteEncoding(enc encoding.Encoded) error

	// Close flushes buffered output
	Close() error
}

// ConsoleWriter writes "<number>: <encoding>" lines to an io.Writer.
// When colorize is set, the number prefix is highlighted for interactive
// terminals; the line content is otherwise byte-identical.
type ConsoleWriter struct {
	w        *bufio.Writer
	colorize bool
}

// NewConsoleWriter creates a ConsoleWriter over w.
func NewConsoleWriter(w io.Writer, colorize bool) (*ConsoleWriter, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &ConsoleWriter{
		w:        bufio.NewWriter(w),
		colorize: colorize,
	}, nil
}

// WriteEncoding emits one accepted encoding
func (c *ConsoleWriter) WriteEncoding(enc encoding.Encoded) error {
	var line string
	if c.colorize {
		line = color.Cyan(enc.Number) + ": " + enc.Text
	} else {
		line = enc.String()
	}
	if _, err := fmt.Fprintln(c.w, line); err != nil {
		return fmt.Errorf("failed to write encoding: %w", err)
	}
	return nil
}

// Close flushes buffered output
func (c *ConsoleWriter) Close() error {
	return c.w.Flush()
}

// CollectWriter accumulates encodings in memory. It backs tests and the
// validation mode of the CLI.
type CollectWriter struct {
	Encodings []encoding.Encoded
}

// WriteEncoding records one accepted encoding
func (c *CollectWriter) WriteEncoding(enc encoding.Encoded) error {
	c.Encodings = append(c.Encodings, enc)
	return nil
}

// Close implements Writer; there is nothing to flush.
func (c *CollectWriter) Close() error {
	return nil
}
