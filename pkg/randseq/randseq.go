// 31 July 2020

// Package randseq makes random peptide alignments. They are for tests
// and benchmarks, so the content matters less than the shape: gaps,
// ragged ends, conserved columns and untidy white space.
package randseq

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/andrew-torda/motifer/pkg/seq"
	"github.com/andrew-torda/motifer/pkg/seq/common"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
)

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed     int64     // random number seed
	Wrtr      io.Writer // where we write to
	Cmmt      string    // Comment for the sequences
	Nseq      int       // number of sequences
	Len       int       // Length of the alignment
	GapProb   float64   // chance of a gap at any site
	Conserved float64   // fraction of columns that mostly carry one residue
	Ragged    bool      // Sequences may stop before the end of the alignment
	Messy     bool      // Sprinkle white space through the output
}

var letters = []byte(seq.DefaultAlphabet)

// RandAln returns Nseq aligned sequences. Conserved columns get their
// residue in about nine of ten sequences.
func RandAln(args *RandSeqArgs) []string {
	rnd := rand.New(rand.NewSource(args.Iseed))
	l := len(letters)
	colRes := make([]byte, args.Len) // zero means not conserved
	for i := range colRes {
		if rnd.Float64() < args.Conserved {
			colRes[i] = letters[rnd.Intn(l)]
		}
	}
	ret := make([]string, args.Nseq)
	for iseq := range ret {
		n := args.Len
		if args.Ragged && n > 0 {
			n = 1 + rnd.Intn(n)
		}
		s := make([]byte, n)
		for i := range s {
			switch {
			case rnd.Float64() < args.GapProb:
				s[i] = common.GapChar
			case colRes[i] != 0 && rnd.Float64() < 0.9:
				s[i] = colRes[i]
			default:
				s[i] = letters[rnd.Intn(l)]
			}
		}
		ret[iseq] = string(s)
	}
	return ret
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, rnd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := rnd.Intn(len(s))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. We flip a coin. Heads we don't add a newline. Tails we
// make about 1/9 of the additions newlines.
func addspace(s []byte, rnd *rand.Rand) []byte {
	toAdd := len(s) / nPadWhite
	nNL := 0
	if rnd.Intn(2) == 0 {
		nNL = toAdd / 9
	}
	s = addInner(s, toAdd-nNL, ' ', rnd)
	return addInner(s, nNL, '\n', rnd)
}

// RandSeqMain writes random aligned sequences in fasta format.
func RandSeqMain(args *RandSeqArgs) error {
	width := len(fmt.Sprintf("%d", args.Nseq))
	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	for i, s := range RandAln(args) {
		b := []byte(s)
		if args.Messy {
			b = addspace(b, spacernd)
		}
		cmmt := fmt.Sprintf(" %s %[2]*d", args.Cmmt, width, i+1)
		if err := seq.WriteRec(args.Wrtr, cmmt, b, 0); err != nil {
			return err
		}
	}
	return nil
}
