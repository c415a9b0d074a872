// 26 April 2020
// Read up a multiple sequence alignment and calculate the consensus
// and conserved core.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/motifer/pkg/consensus"
	"github.com/andrew-torda/motifer/pkg/seq"
	. "github.com/andrew-torda/motifer/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[infile [outfile]]")
	long := `Given no arguments, read and write from stdin / stdout.
Given one argument, read from the given file name, but write to stdout.
Given two arguments, read from the first one, write to the second.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags consensus.CmdFlag
	var infile, outfile string

	flag.StringVar(&flags.Alphabet, "a", seq.DefaultAlphabet, "letters of the frequency matrix")
	flag.StringVar(&flags.GapChars, "g", seq.DefaultGaps, "gap characters")
	flag.StringVar(&flags.MatFile, "m", "", "file for the frequency matrix (csv)")
	flag.BoolVar(&flags.Strict, "s", false, "only count alphabet letters in totals")
	flag.Float64Var(&flags.Threshold, "t", seq.DefaultThreshold, "conservation threshold for the core")
	flag.StringVar(&flags.TieChar, "x", string(seq.DefaultTie), "tie character")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := consensus.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
