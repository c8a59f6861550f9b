package encoding

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Error definitions
var (
	ErrNilLookup     = errors.New("dictionary lookup must not be nil")
	ErrNumberTooLong = errors.New("phone number exceeds maximum digit length")
)

const (
	// DefaultMaxDigits bounds the digit count of a single phone number and
	// with it the recursion depth of the search.
	DefaultMaxDigits = 50

	// probeCacheSize bounds the memoization cache for lookahead probes.
	probeCacheSize = 4096
)

// Lookup answers exact-match dictionary queries: WordsFor returns every
// dictionary word whose letters encode precisely the given digit string,
// with original casing and punctuation preserved. Implementations must
// return a deterministic order (sorted by word) and an empty slice, never
// an error value, when no word matches.
type Lookup interface {
	WordsFor(digits string) []string
}

// Encoder expands phone numbers into mnemonic encodings against a fixed
// Lookup. It is stateless apart from a memoization cache for lookahead
// probes, which is sound because the lookup is immutable for the encoder's
// lifetime.
type Encoder struct {
	lookup     Lookup
	maxDigits  int
	probeCache *lru.Cache[string, bool]
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithMaxDigits overrides the maximum digit count accepted by Encode.
func WithMaxDigits(n int) Option {
	return func(e *Encoder) {
		e.maxDigits = n
	}
}

// New creates an Encoder over the given lookup.
func New(lookup Lookup, opts ...Option) (*Encoder, error) {
	if lookup == nil {
		return nil, ErrNilLookup
	}
	cache, err := lru.New[string, bool](probeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create probe cache: %w", err)
	}
	e := &Encoder{
		lookup:     lookup,
		maxDigits:  DefaultMaxDigits,
		probeCache: cache,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Encode returns every valid encoding of number as a sequence of
// space-separated tokens. Characters other than ASCII digits are ignored
// for encoding but preserved in the Number field of each result. A number
// with no digits, or no valid encoding, yields an empty result and no
// error.
//
// An encoding is built word by word from left to right. A single digit may
// stand for itself only if the previous token is not itself a lone digit
// and no dictionary word placed at the digit's position still permits the
// rest of the number to be encoded. Two lone digits never appear adjacent.
func (e *Encoder) Encode(number string) ([]Encoded, error) {
	digits := stripNonDigits(number)
	if digits == "" {
		return nil, nil
	}
	if len(digits) > e.maxDigits {
		return nil, fmt.Errorf("%w: %d digits (max %d)", ErrNumberTooLong, len(digits), e.maxDigits)
	}

	results := e.partition(digits, 0, false)

	encoded := make([]Encoded, 0, len(results))
	for _, text := range results {
		// The recursion only builds exact covers; the length check is a
		// backstop for the invariant, not a working filter.
		if tokenLength(text) != len(digits) {
			continue
		}
		encoded = append(encoded, Encoded{Number: number, Text: text})
	}
	return encoded, nil
}

// partition enumerates every encoding of digits[start:]. prevFree records
// whether the token immediately before start was a lone digit. Candidate
// segments are scanned in increasing length; a dictionary match at one
// length does not stop longer segments from being tried.
func (e *Encoder) partition(digits string, start int, prevFree bool) []string {
	var results []string
	last := len(digits) - 1
	for end := start; end < len(digits); end++ {
		segment := digits[start : end+1]
		words := e.lookup.WordsFor(segment)
		single := end == start

		if end != last {
			if len(words) > 0 {
				rest := e.partition(digits, end+1, false)
				for _, word := range words {
					for _, suffix := range rest {
						results = append(results, word+" "+suffix)
					}
				}
				continue
			}
			if single && !prevFree && !e.existsWordPath(digits, start) {
				rest := e.partition(digits, end+1, true)
				for _, suffix := range rest {
					results = append(results, segment+" "+suffix)
				}
			}
			continue
		}

		// Last segment: either a word covering it entirely, or a lone
		// digit when no word matches and the previous token was a word.
		if len(words) > 0 {
			results = append(results, words...)
		} else if single && !prevFree {
			results = append(results, segment)
		}
	}
	return results
}

// existsWordPath reports whether any dictionary word can be placed at
// digits[start:] such that the remainder still has at least one full
// encoding. Prefixes are probed from longest to shortest. The result
// depends only on the digit suffix, so it is memoized across calls.
func (e *Encoder) existsWordPath(digits string, start int) bool {
	suffix := digits[start:]
	if found, ok := e.probeCache.Get(suffix); ok {
		return found
	}

	found := false
	for end := len(digits); end > start; end-- {
		if len(e.lookup.WordsFor(digits[start:end])) == 0 {
			continue
		}
		if end == len(digits) || e.hasEncoding(digits, end, false) {
			found = true
			break
		}
	}

	e.probeCache.Add(suffix, found)
	return found
}

// hasEncoding is the existence-only form of partition: it reports whether
// digits[start:] has at least one full encoding without enumerating them.
func (e *Encoder) hasEncoding(digits string, start int, prevFree bool) bool {
	last := len(digits) - 1
	for end := start; end < len(digits); end++ {
		words := e.lookup.WordsFor(digits[start : end+1])
		single := end == start

		if end != last {
			if len(words) > 0 {
				if e.hasEncoding(digits, end+1, false) {
					return true
				}
				continue
			}
			if single && !prevFree && !e.existsWordPath(digits, start) && e.hasEncoding(digits, end+1, true) {
				return true
			}
			continue
		}

		if len(words) > 0 || (single && !prevFree) {
			return true
		}
	}
	return false
}

// stripNonDigits removes every character that is not an ASCII digit.
func stripNonDigits(number string) string {
	buf := make([]byte, 0, len(number))
	for i := 0; i < len(number); i++ {
		if number[i] >= '0' && number[i] <= '9' {
			buf = append(buf, number[i])
		}
	}
	return string(buf)
}

// tokenLength counts the letters and digits of an encoding string,
// ignoring spaces and any punctuation inside words.
func tokenLength(text string) int {
	n := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
			n++
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			n++
		}
	}
	return n
}
