// 6 Apr 2020
// Column by column calculations on an alignment.

package seq

import (
	"github.com/andrew-torda/motifer/pkg/seq/common"
)

// colCounts fills counts with the number of times each character is
// seen in column icol, skipping gaps and sequences too short to reach
// the column. It returns how many characters were counted.
func (seqgrp *SeqGrp) colCounts(icol int, gaps *[256]bool, counts *[256]int32) int {
	*counts = [256]int32{}
	n := 0
	for _, s := range seqgrp.seqs {
		if icol >= len(s.seq) {
			continue
		}
		c := s.seq[icol]
		if gaps[c] {
			continue
		}
		counts[c]++
		n++
	}
	return n
}

// topTwo returns the most common character and the two highest counts
// over distinct characters. Characters are visited in byte order, so
// the first of several equally common characters wins.
func topTwo(counts *[256]int32) (best byte, c1, c2 int32) {
	for i, n := range counts {
		switch {
		case n > c1:
			c2 = c1
			c1 = n
			best = byte(i)
		case n > c2:
			c2 = n
		}
	}
	return best, c1, c2
}

// Consensus returns the majority character of each column. A column
// with nothing but gaps gives a gap. If the two highest counts in a
// column are the same, the column gets opts.TieChar. Only the top two
// counts are compared, so a three way split is a tie, but so is any
// column where the leader has company.
// The result always has the length of the alignment.
func (seqgrp *SeqGrp) Consensus(opts *Options) string {
	ncol := seqgrp.GetLen()
	gaps := opts.gapTable()
	var counts [256]int32
	cons := make([]byte, ncol)
	for icol := range cons {
		if seqgrp.colCounts(icol, gaps, &counts) == 0 {
			cons[icol] = common.GapChar
			continue
		}
		best, c1, c2 := topTwo(&counts)
		if c1 == c2 { // c2 is only non-zero with two distinct residues
			cons[icol] = opts.TieChar
		} else {
			cons[icol] = best
		}
	}
	return string(cons)
}
