// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/andrew-torda/motifer/pkg/randseq"
	. "github.com/andrew-torda/motifer/pkg/seq/common"
)

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs

	f.Float64Var(&args.Conserved, "c", 0.3, "fraction of conserved columns")
	f.Float64Var(&args.GapProb, "g", 0.1, "probability of a gap")
	f.BoolVar(&args.Ragged, "j", false, "sequences may end early")
	f.BoolVar(&args.Messy, "m", false, "scatter white space in sequences")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nrandseq [..] file nseq length")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	if args.GapProb < 0 || args.GapProb >= 1 || args.Conserved < 0 || args.Conserved > 1 {
		fmt.Fprintln(os.Stderr, "gap probability must be in [0,1) and conserved fraction in [0,1]")
		os.Exit(ExitUsageError)
	}

	const emsg = "Failed converting %s to positive integer\n"
	for i, dst := range []*int{&args.Nseq, &args.Len} {
		s := f.Arg(i + 1)
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil || n == 0 {
			fmt.Fprintf(os.Stderr, emsg, s)
			os.Exit(ExitUsageError)
		}
		*dst = int(n)
	}

	fname := f.Arg(0)
	args.Cmmt = "random"
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		ft, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		}
		defer ft.Close()
		args.Wrtr = ft
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
}
