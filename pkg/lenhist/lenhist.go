// 15 Nov 2024

// Package lenhist counts peptide lengths in fixed width bins and draws
// the histogram.
package lenhist

import (
	"bufio"
	"fmt"
	"io"
)

// Hist is a histogram of lengths. Interval i is (Edges[i], Edges[i+1]],
// except the first, which also takes Edges[0].
type Hist struct {
	Edges  []int
	Counts []int
}

// Compute makes a histogram with binSize wide intervals from zero up to
// the first multiple of binSize at or above the longest length.
func Compute(lengths []int, binSize int) (*Hist, error) {
	if binSize < 1 {
		return nil, fmt.Errorf("histogram bin size %d", binSize)
	}
	maxLen := 0
	for _, l := range lengths {
		if l < 0 {
			return nil, fmt.Errorf("negative length %d", l)
		}
		if l > maxLen {
			maxLen = l
		}
	}
	nbin := (maxLen + binSize - 1) / binSize
	h := &Hist{Edges: make([]int, nbin+1), Counts: make([]int, nbin)}
	for i := range h.Edges {
		h.Edges[i] = i * binSize
	}
	if nbin == 0 {
		return h, nil
	}
	for _, l := range lengths {
		i := 0
		if l > 0 {
			i = (l - 1) / binSize
		}
		h.Counts[i]++
	}
	return h, nil
}

// Labels names the intervals "0-3", "3-6", ...
func (h *Hist) Labels() []string {
	r := make([]string, len(h.Counts))
	for i := range r {
		r[i] = fmt.Sprintf("%d-%d", h.Edges[i], h.Edges[i+1])
	}
	return r
}

// WriteText writes one line per interval, label and count separated
// by a tab.
func (h *Hist) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, lbl := range h.Labels() {
		fmt.Fprintf(bw, "%s\t%d\n", lbl, h.Counts[i])
	}
	return bw.Flush()
}
