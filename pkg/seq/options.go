// 6 Apr 2020

package seq

import (
	"errors"
	"fmt"
	"strings"
)

// Defaults. The alphabet is the twenty canonical amino acids.
const (
	DefaultGaps     = "-."
	DefaultAlphabet = "ACDEFGHIKLMNPQRSTVWY"
	DefaultTie      = 'X'
)

// Options says which characters are gaps, which letters go into the
// frequency matrix and what to write when a column is tied.
type Options struct {
	GapChars       string // ignored when counting a column
	Alphabet       string // letters of the frequency matrix, in order
	TieChar        byte   // consensus character for a tied column
	StrictAlphabet bool   // only count alphabet letters in a column's total
}

// DefaultOptions returns a fresh set of default options.
func DefaultOptions() *Options {
	return &Options{
		GapChars: DefaultGaps,
		Alphabet: DefaultAlphabet,
		TieChar:  DefaultTie,
	}
}

// Check looks for settings which cannot give sensible results.
func (opts *Options) Check() error {
	if opts.Alphabet == "" {
		return errors.New("empty alphabet")
	}
	var seen [256]bool
	for i := 0; i < len(opts.Alphabet); i++ {
		c := opts.Alphabet[i]
		if seen[c] {
			return fmt.Errorf("letter %c twice in alphabet \"%s\"", c, opts.Alphabet)
		}
		seen[c] = true
		if strings.IndexByte(opts.GapChars, c) != -1 {
			return fmt.Errorf("letter %c is in alphabet and gap characters", c)
		}
	}
	if opts.TieChar == 0 {
		return errors.New("no tie character")
	}
	if seen[opts.TieChar] || strings.IndexByte(opts.GapChars, opts.TieChar) != -1 {
		return fmt.Errorf("tie character %c is also a letter or gap", opts.TieChar)
	}
	return nil
}

// gapTable turns the gap characters into a lookup table.
func (opts *Options) gapTable() *[256]bool {
	var t [256]bool
	for i := 0; i < len(opts.GapChars); i++ {
		t[opts.GapChars[i]] = true
	}
	return &t
}

// letterTable maps a character to its row in the frequency matrix,
// or to noLetter.
func (opts *Options) letterTable() *[256]int {
	var t [256]int
	for i := range t {
		t[i] = noLetter
	}
	for i := len(opts.Alphabet) - 1; i >= 0; i-- {
		t[opts.Alphabet[i]] = i
	}
	return &t
}

const noLetter = -1
