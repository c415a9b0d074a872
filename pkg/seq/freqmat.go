// 6 Apr 2020

package seq

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/andrew-torda/matrix"
)

// FreqMat is the frequency matrix of an alignment. For every column it
// has the number of non-gap observations (total) and how often each
// letter of the alphabet was seen. Counts are kept, not fractions, so
// frequencies are always count / total, done in float64.
// counts.Mat looks like [number_of_letters][length_of_alignment], as
// the counts in the sequence group always have.
type FreqMat struct {
	alphabet string
	total    []int
	counts   *matrix.FMatrix2d
}

// Row is one position of the frequency matrix. Pos counts from 1 and
// Freqs are in the order of the alphabet.
type Row struct {
	Pos   int
	Total int
	Freqs []float64
}

// FreqMat tabulates each column of the alignment. Gap characters are
// not counted. Other characters which are not in the alphabet go into
// the total, unless opts.StrictAlphabet is set, so without the strict
// option a row may add up to less than one.
func (seqgrp *SeqGrp) FreqMat(opts *Options) *FreqMat {
	ncol := seqgrp.GetLen()
	nrow := len(opts.Alphabet)
	fm := &FreqMat{
		alphabet: opts.Alphabet,
		total:    make([]int, ncol),
		counts:   matrix.NewFMatrix2d(nrow, ncol),
	}
	gaps := opts.gapTable()
	letters := opts.letterTable()
	for _, ss := range seqgrp.seqs {
		for icol, c := range ss.seq {
			if gaps[c] {
				continue
			}
			irow := letters[c]
			if irow == noLetter {
				if !opts.StrictAlphabet {
					fm.total[icol]++
				}
				continue
			}
			fm.counts.Mat[irow][icol]++
			fm.total[icol]++
		}
	}
	return fm
}

// NPos is the number of positions (rows) in the matrix.
func (fm *FreqMat) NPos() int { return len(fm.total) }

// Alphabet returns the letters, in column order.
func (fm *FreqMat) Alphabet() string { return fm.alphabet }

// Total returns the number of observations at position pos, counting
// from 1.
func (fm *FreqMat) Total(pos int) int { return fm.total[pos-1] }

// freq is the frequency of letter number irow in column icol.
func (fm *FreqMat) freq(irow, icol int) float64 {
	total := fm.total[icol]
	if total == 0 {
		return 0
	}
	return float64(fm.counts.Mat[irow][icol]) / float64(total)
}

// Freq returns the frequency of letter c at position pos (from 1). A
// character outside the alphabet has frequency zero.
func (fm *FreqMat) Freq(pos int, c byte) float64 {
	for irow := 0; irow < len(fm.alphabet); irow++ {
		if fm.alphabet[irow] == c {
			return fm.freq(irow, pos-1)
		}
	}
	return 0
}

// MaxFreq returns the highest letter frequency at position pos.
func (fm *FreqMat) MaxFreq(pos int) float64 {
	var best float64
	for irow := 0; irow < len(fm.alphabet); irow++ {
		if f := fm.freq(irow, pos-1); f > best {
			best = f
		}
	}
	return best
}

// Row returns position pos (from 1) of the matrix.
func (fm *FreqMat) Row(pos int) Row {
	r := Row{Pos: pos, Total: fm.total[pos-1], Freqs: make([]float64, len(fm.alphabet))}
	for irow := range r.Freqs {
		r.Freqs[irow] = fm.freq(irow, pos-1)
	}
	return r
}

// Rows returns every row, in order of position.
func (fm *FreqMat) Rows() []Row {
	rows := make([]Row, fm.NPos())
	for i := range rows {
		rows[i] = fm.Row(i + 1)
	}
	return rows
}

// fmtFreq writes a frequency with as few digits as will read back
// exactly.
func fmtFreq(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// WriteCSV writes the matrix with a header line: pos, total and then
// one column per letter.
func (fm *FreqMat) WriteCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "pos,total")
	for i := 0; i < len(fm.alphabet); i++ {
		fmt.Fprintf(bw, ",%c", fm.alphabet[i])
	}
	fmt.Fprintln(bw)
	for icol := range fm.total {
		fmt.Fprintf(bw, "%d,%d", icol+1, fm.total[icol])
		for irow := 0; irow < len(fm.alphabet); irow++ {
			fmt.Fprint(bw, ",", fmtFreq(fm.freq(irow, icol)))
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}
