// Package main provides the dictcheck command for go-phoneword.
// It validates a word-list file against the dictionary rules and reports
// index statistics.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/isseis/go-phoneword/internal/cmdcommon"
	"github.com/isseis/go-phoneword/internal/color"
	"github.com/isseis/go-phoneword/internal/phoneword/dictionary"
	"github.com/isseis/go-phoneword/internal/phoneword/encoding"
	"github.com/isseis/go-phoneword/internal/terminal"
)

var (
	dictionaryPath = flag.String("dictionary", "", "path to word list file")
	maxWords       = flag.Int("max-words", dictionary.DefaultMaxWords, "maximum number of words")
	maxWordLength  = flag.Int("max-word-length", dictionary.DefaultMaxWordLength, "maximum letters per word")
	showWords      = flag.Bool("words", false, "list every word with its digit encoding")
)

func main() {
	flag.Parse()

	path := cmdcommon.ResolvePath(*dictionaryPath, cmdcommon.EnvDictionaryPath, "")
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: -dictionary is required")
		flag.Usage()
		os.Exit(1)
	}

	loader := dictionary.NewLoader(
		dictionary.WithMaxWords(*maxWords),
		dictionary.WithMaxWordLength(*maxWordLength),
	)
	dict, err := loader.LoadFile(path)
	if err != nil {
		var lineErr *dictionary.LineError
		if errors.As(err, &lineErr) {
			fmt.Fprintf(os.Stderr, "Invalid dictionary: %v\n", lineErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if *showWords {
		for _, word := range dict.Words() {
			fmt.Printf("%s\t%s\n", encoding.DigitString(word), word)
		}
	}

	ok := "OK"
	detector := terminal.NewInteractiveDetector(terminal.DetectorOptions{})
	if detector.IsInteractive() {
		ok = color.Green(ok)
	}
	fmt.Printf("%s: %s (%d words, %d distinct encodings)\n", ok, path, dict.Len(), dict.Encodings())
}
