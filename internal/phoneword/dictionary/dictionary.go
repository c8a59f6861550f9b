// Package dictionary builds and serves the digit-indexed word list the
// encoding engine draws its mnemonics from.
package dictionary

import (
	"sort"

	"github.com/isseis/go-phoneword/internal/phoneword/encoding"
)

// Dictionary is an immutable index from digit strings to the dictionary
// words whose letters encode them. It implements encoding.Lookup.
type Dictionary struct {
	byDigits map[string][]string
	size     int
}

// New builds a Dictionary from the given words. Duplicate words are kept
// once; words without any letter are ignored. Each index bucket is sorted
// so lookups are deterministic regardless of input order.
func New(words []string) *Dictionary {
	byDigits := make(map[string][]string)
	seen := make(map[string]struct{}, len(words))
	size := 0
	for _, word := range words {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		digits := encoding.DigitString(word)
		if digits == "" {
			continue
		}
		byDigits[digits] = append(byDigits[digits], word)
		size++
	}
	for _, bucket := range byDigits {
		sort.Strings(bucket)
	}
	return &Dictionary{
		byDigits: byDigits,
		size:     size,
	}
}

// WordsFor returns the words whose digit encoding is exactly digits,
// sorted by word. The returned slice is shared and must not be modified;
// it is empty when no word matches.
func (d *Dictionary) WordsFor(digits string) []string {
	return d.byDigits[digits]
}

// Len returns the number of indexed words.
func (d *Dictionary) Len() int {
	return d.size
}

// Encodings returns the number of distinct digit strings in the index.
func (d *Dictionary) Encodings() int {
	return len(d.byDigits)
}

// Words returns all indexed words in sorted order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, d.size)
	for _, bucket := range d.byDigits {
		words = append(words, bucket...)
	}
	sort.Strings(words)
	return words
}
