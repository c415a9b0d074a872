// 27 april 2020

// Package consensus takes one alignment to its consensus, frequency
// matrix and conserved core, and writes the results.
package consensus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/andrew-torda/motifer/pkg/seq"
	"github.com/andrew-torda/motifer/pkg/seq/common"
)

// Result is everything we calculate for one alignment.
type Result struct {
	NSeq      int
	Consensus string
	FreqMat   *seq.FreqMat
	Core      seq.Core
	Threshold float64
}

// Analyse does the calculations. The consensus and frequency matrix do
// not depend on each other, the core needs both.
func Analyse(seqgrp *seq.SeqGrp, opts *seq.Options, theta float64) (*Result, error) {
	res := &Result{
		NSeq:      seqgrp.GetNSeq(),
		Consensus: seqgrp.Consensus(opts),
		FreqMat:   seqgrp.FreqMat(opts),
		Threshold: theta,
	}
	var err error
	if res.Core, err = seq.ExtractCore(res.Consensus, res.FreqMat, theta); err != nil {
		return nil, err
	}
	return res, nil
}

// posList writes positions as 1,5,7
func posList(pos []int) string {
	s := make([]string, len(pos))
	for i, p := range pos {
		s[i] = strconv.Itoa(p)
	}
	return strings.Join(s, ",")
}

// WriteReport writes a result as tab separated key and value lines.
// name goes in the first line and can be empty.
func (res *Result) WriteReport(w io.Writer, name string) error {
	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintln(bw, "# consensus and core for", name)
	}
	fmt.Fprintf(bw, "nseq\t%d\n", res.NSeq)
	fmt.Fprintf(bw, "length\t%d\n", len(res.Consensus))
	fmt.Fprintf(bw, "threshold\t%g\n", res.Threshold)
	fmt.Fprintf(bw, "consensus\t%s\n", res.Consensus)
	fmt.Fprintf(bw, "positions\t%s\n", posList(res.Core.Positions))
	fmt.Fprintf(bw, "core\t%s\n", res.Core.Seq)
	return bw.Flush()
}

// WriteFasta writes the consensus and the core as two fasta records,
// >consensus_<label> and >core_<label>.
func (res *Result) WriteFasta(w io.Writer, label string) error {
	if err := seq.WriteRec(w, "consensus_"+label, []byte(res.Consensus), 0); err != nil {
		return err
	}
	return seq.WriteRec(w, "core_"+label, []byte(res.Core.Seq), 0)
}

// WriteFile creates fname and lets wrt fill it.
func WriteFile(fname string, wrt func(io.Writer) error) error {
	fp, err := os.Create(fname)
	if err != nil {
		return &common.IOError{Path: fname, Err: err}
	}
	if err = wrt(fp); err != nil {
		fp.Close()
		return &common.IOError{Path: fname, Err: err}
	}
	if err = fp.Close(); err != nil {
		return &common.IOError{Path: fname, Err: err}
	}
	return nil
}

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Threshold float64 // conservation needed for the core
	GapChars  string  // characters ignored when counting
	Alphabet  string  // letters in the frequency matrix
	TieChar   string  // consensus character for ties
	Strict    bool    // non-alphabet residues do not count in totals
	MatFile   string  // write the frequency matrix here
}

// Options turns the flags into sequence options.
func (flags *CmdFlag) Options() (*seq.Options, error) {
	if len(flags.TieChar) != 1 {
		return nil, fmt.Errorf("tie character \"%s\" must be one character", flags.TieChar)
	}
	opts := &seq.Options{
		GapChars:       flags.GapChars,
		Alphabet:       flags.Alphabet,
		TieChar:        flags.TieChar[0],
		StrictAlphabet: flags.Strict,
	}
	return opts, opts.Check()
}

// Mymain reads one alignment and writes its report. If there is no
// input name, read standard input. If there is no output name or it is
// "-", write to standard output.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	opts, err := flags.Options()
	if err != nil {
		return err
	}
	seqgrp, err := seq.Readfile(infile)
	if err != nil {
		return fmt.Errorf("Fail reading sequences: %w", err)
	}
	res, err := Analyse(seqgrp, opts, flags.Threshold)
	if err != nil {
		return err
	}
	if flags.MatFile != "" {
		if err = WriteFile(flags.MatFile, res.FreqMat.WriteCSV); err != nil {
			return err
		}
	}
	report := func(w io.Writer) error { return res.WriteReport(w, infile) }
	if outfile == "" || outfile == "-" {
		return report(os.Stdout)
	}
	return WriteFile(outfile, report)
}
