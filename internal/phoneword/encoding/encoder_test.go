package encoding

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapLookup is a minimal Lookup backed by a word list, indexed at
// construction in sorted order.
type mapLookup map[string][]string

func newMapLookup(words ...string) mapLookup {
	m := make(mapLookup)
	for _, w := range words {
		d := DigitString(w)
		m[d] = append(m[d], w)
	}
	for _, bucket := range m {
		sort.Strings(bucket)
	}
	return m
}

func (m mapLookup) WordsFor(digits string) []string {
	return m[digits]
}

// sampleLookup covers the worked examples from the reference behavior.
func sampleLookup() mapLookup {
	return newMapLookup(
		"any", "w", "ed", `d"ug`, "duo",
		"aid", "fib", `f"it`, "mild", "m", "ilk",
	)
}

func encodeTexts(t *testing.T, e *Encoder, number string) []string {
	t.Helper()
	results, err := e.Encode(number)
	require.NoError(t, err)
	texts := make([]string, 0, len(results))
	for _, enc := range results {
		assert.Equal(t, number, enc.Number)
		texts = append(texts, enc.Text)
	}
	return texts
}

func TestEncodeSampleNumbers(t *testing.T) {
	e, err := New(sampleLookup())
	require.NoError(t, err)

	tests := []struct {
		number string
		want   []string
	}{
		{
			number: "059-4-5-3336",
			want:   []string{`any w ed d"ug`, "any w ed duo"},
		},
		{
			number: "08-3-7-1823",
			want:   []string{"aid 7 fib 3", `aid 7 f"it 3`, "aid 7 mild", "aid 7 m ilk"},
		},
		{number: "6146795", want: nil},
		{number: "33548-7572", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, encodeTexts(t, e, tt.number))
		})
	}
}

func TestEncodeReportingLine(t *testing.T) {
	e, err := New(sampleLookup())
	require.NoError(t, err)

	results, err := e.Encode("059-4-5-3336")
	require.NoError(t, err)
	require.Len(t, results, 2)

	lines := []string{results[0].String(), results[1].String()}
	assert.ElementsMatch(t, []string{
		`059-4-5-3336: any w ed d"ug`,
		"059-4-5-3336: any w ed duo",
	}, lines)
	for _, line := range lines {
		assert.Equal(t, strings.TrimRight(line, " \t"), line, "no trailing whitespace")
	}
}

func TestEncodeLengthInvariant(t *testing.T) {
	e, err := New(sampleLookup())
	require.NoError(t, err)

	for _, number := range []string{"059-4-5-3336", "08-3-7-1823", "1823", "7"} {
		digits := stripNonDigits(number)
		for _, text := range encodeTexts(t, e, number) {
			assert.Equal(t, len(digits), tokenLength(text), "number %s encoding %q", number, text)
		}
	}
}

func TestEncodeNoAdjacentFreeDigits(t *testing.T) {
	e, err := New(sampleLookup())
	require.NoError(t, err)

	isFreeDigit := func(token string) bool {
		return len(token) == 1 && token[0] >= '0' && token[0] <= '9'
	}
	for _, number := range []string{"059-4-5-3336", "08-3-7-1823", "6146795"} {
		for _, text := range encodeTexts(t, e, number) {
			tokens := strings.Split(text, " ")
			for i := 1; i < len(tokens); i++ {
				assert.False(t, isFreeDigit(tokens[i-1]) && isFreeDigit(tokens[i]),
					"adjacent free digits in %q", text)
			}
		}
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	e, err := New(sampleLookup())
	require.NoError(t, err)

	for _, number := range []string{"", "---", "abc", " / "} {
		results, err := e.Encode(number)
		require.NoError(t, err, "number %q", number)
		assert.Empty(t, results, "number %q", number)
	}
}

func TestEncodeSingleDigit(t *testing.T) {
	e, err := New(sampleLookup())
	require.NoError(t, err)

	// No one-letter word encodes to 7, so the digit stands for itself.
	assert.Equal(t, []string{"7"}, encodeTexts(t, e, "7"))

	// "m" encodes to 1, so the word wins and the free digit is not offered.
	assert.Equal(t, []string{"m"}, encodeTexts(t, e, "1"))
}

func TestEncodeFreeDigitLookahead(t *testing.T) {
	// With only "ilk" (823): position 0 of 1823 has no reachable word, so
	// the leading 1 is a free digit.
	e, err := New(newMapLookup("ilk"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1 ilk"}, encodeTexts(t, e, "1823"))

	// Adding "m" (1) makes a word reachable at position 0, which forbids
	// the free digit there.
	e, err = New(newMapLookup("ilk", "m"))
	require.NoError(t, err)
	assert.Equal(t, []string{"m ilk"}, encodeTexts(t, e, "1823"))
}

func TestEncodeFreeDigitBlockedByWord(t *testing.T) {
	// "u" covers the 3, so "3 5" must not appear.
	e, err := New(newMapLookup("u"))
	require.NoError(t, err)
	assert.Equal(t, []string{"u 5"}, encodeTexts(t, e, "35"))
}

func TestEncodeNoEncodingForBlockedPair(t *testing.T) {
	// No words at all: a second digit after a free digit is not allowed,
	// so two digits yield nothing.
	e, err := New(newMapLookup())
	require.NoError(t, err)
	assert.Empty(t, encodeTexts(t, e, "66"))

	// A single digit still encodes as itself.
	assert.Equal(t, []string{"6"}, encodeTexts(t, e, "6"))
}

func TestEncodeDeterministic(t *testing.T) {
	e, err := New(sampleLookup())
	require.NoError(t, err)

	first := encodeTexts(t, e, "08-3-7-1823")
	second := encodeTexts(t, e, "08-3-7-1823")
	assert.Equal(t, first, second)
}

func TestEncodeNumberTooLong(t *testing.T) {
	e, err := New(sampleLookup())
	require.NoError(t, err)

	_, err = e.Encode(strings.Repeat("5", DefaultMaxDigits+1))
	assert.ErrorIs(t, err, ErrNumberTooLong)

	// A number at the limit is accepted.
	_, err = e.Encode(strings.Repeat("5", DefaultMaxDigits))
	assert.NoError(t, err)
}

func TestEncodeWithMaxDigits(t *testing.T) {
	e, err := New(sampleLookup(), WithMaxDigits(4))
	require.NoError(t, err)

	_, err = e.Encode("12345")
	assert.ErrorIs(t, err, ErrNumberTooLong)

	_, err = e.Encode("1-2-3-4")
	assert.NoError(t, err)
}

func TestNewNilLookup(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilLookup)
}

func TestEncodedString(t *testing.T) {
	enc := Encoded{Number: "08-3-7-1823", Text: "aid 7 mild"}
	assert.Equal(t, "08-3-7-1823: aid 7 mild", enc.String())
}

func TestTokenLength(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"aid 7 mild", 8},
		{`any w ed d"ug`, 9},
		{"7", 1},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tokenLength(tt.text), "text %q", tt.text)
	}
}

func TestStripNonDigits(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"059-4-5-3336", "059453336"},
		{"08-3-7-1823", "08371823"},
		{"abc", ""},
		{"", ""},
		{"0721/608-4067", "07216084067"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripNonDigits(tt.number), "number %q", tt.number)
	}
}
