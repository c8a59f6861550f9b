// Package encoding implements the fixed digit-to-letter table and the
// recursive backtracking search that expands a phone number into every
// mnemonic spelling a dictionary permits.
package encoding

// digitLetters assigns each digit its uppercase letter set:
//
//	a v | f m x | b l t | d k u | c j w | e n | g o r | h p | i q | s y z
//	 0  |   1   |   2   |   3   |   4   |  5  |   6   |  7  |  8  |   9
//
// The table is fixed and exhaustive: every letter A-Z belongs to exactly
// one digit. It is never recomputed after process start.
var digitLetters = [10]string{
	"AV",  // 0
	"FMX", // 1
	"BLT", // 2
	"DKU", // 3
	"CJW", // 4
	"EN",  // 5
	"GOR", // 6
	"HP",  // 7
	"IQ",  // 8
	"SYZ", // 9
}

// letterDigits is the inverse index, built once at package init.
var letterDigits ['Z' - 'A' + 1]byte

func init() {
	for digit, letters := range digitLetters {
		for i := 0; i < len(letters); i++ {
			letterDigits[letters[i]-'A'] = byte('0' + digit)
		}
	}
}

// LettersFor returns the uppercase letters assigned to the ASCII digit b.
// The second return value is false when b is not an ASCII digit.
func LettersFor(b byte) (string, bool) {
	if b < '0' || b > '9' {
		return "", false
	}
	return digitLetters[b-'0'], true
}

// DigitFor returns the ASCII digit encoding the letter b. Lookup is
// case-insensitive. The second return value is false when b is not an
// ASCII letter.
func DigitFor(b byte) (byte, bool) {
	switch {
	case b >= 'A' && b <= 'Z':
		return letterDigits[b-'A'], true
	case b >= 'a' && b <= 'z':
		return letterDigits[b-'a'], true
	default:
		return 0, false
	}
}

// DigitString translates a dictionary word into its digit encoding.
// Characters that are not ASCII letters (hyphens, quotation marks)
// contribute nothing to the encoding.
func DigitString(word string) string {
	buf := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		if d, ok := DigitFor(word[i]); ok {
			buf = append(buf, d)
		}
	}
	return string(buf)
}
