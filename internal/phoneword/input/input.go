// Package input reads phone number lists for the encoder, one number per
// line. Numbers keep their separators ('-', '/', spaces); only the digit
// characters matter to the encoding engine.
package input

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/isseis/go-phoneword/internal/common"
)

// FromReader collects phone numbers from r. Blank lines are skipped;
// surrounding whitespace is trimmed.
func FromReader(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var numbers []string
	for scanner.Scan() {
		number := strings.TrimSpace(scanner.Text())
		if number == "" {
			continue
		}
		numbers = append(numbers, number)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read number list: %w", err)
	}
	return numbers, nil
}

// FromFile collects phone numbers from the file at path.
func FromFile(fs common.FileSystem, path string) ([]string, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read number file: %w", err)
	}
	return FromReader(bytes.NewReader(data))
}
