package encoding

// Encoded pairs a phone number, exactly as the caller supplied it, with one
// accepted mnemonic spelling of its digits. The spelling is a sequence of
// tokens separated by single spaces; a token is either a dictionary word's
// literal text or a single digit that no word could cover.
type Encoded struct {
	Number string
	Text   string
}

// String renders the reporting line format: the original number, a colon,
// a single space, and the encoding. No trailing whitespace.
func (e Encoded) String() string {
	return e.Number + ": " + e.Text
}
