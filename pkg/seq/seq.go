// 20 Dec 2017

// Package seq holds a multiple sequence alignment of peptides and
// does the column-wise calculations on it: consensus, frequency
// matrix and the conserved core.
//
// Sequences in a group are not padded. The alignment length is the
// length of the longest sequence and shorter sequences simply have no
// observation in the columns beyond their end.
// Nothing here does any logging or changes a group after it has been
// read, so groups can be handed to different goroutines.
package seq

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/motifer/pkg/white"
)

// Constants
const cmmtChar byte = '>' // and this introduces comments in fasta format

// seq is one aligned sequence and the comment that came with it.
type seq struct {
	cmmt string
	seq  []byte
}

// GetSeq returns the sequence as the original byte slice
func (s seq) GetSeq() []byte { return s.seq }

// GetCmmt returns the comment, without the leading ">"
func (s seq) GetCmmt() string { return s.cmmt }

// Len
func (s seq) Len() int { return len(s.seq) }

// String returns a sequence, with its comment at the start as
// a single string
func (s seq) String() string {
	return fmt.Sprintf("%c%s\n%s", cmmtChar, s.cmmt, s.seq)
}

// SeqGrp is an ordered set of aligned sequences. Order is the order in
// the file.
type SeqGrp struct {
	seqs   []seq
	maxLen int
}

// add puts a sequence at the end of the group.
func (seqgrp *SeqGrp) add(cmmt string, s []byte) {
	seqgrp.seqs = append(seqgrp.seqs, seq{cmmt: cmmt, seq: s})
	if len(s) > seqgrp.maxLen {
		seqgrp.maxLen = len(s)
	}
}

// GetNSeq returns the number of sequences
func (seqgrp *SeqGrp) GetNSeq() int { return len(seqgrp.seqs) }

// GetLen returns the alignment length, the length of the longest
// sequence. It is zero for an empty group.
func (seqgrp *SeqGrp) GetLen() int { return seqgrp.maxLen }

// GetSeqSlc return the slice of sequences. Callers must not change them.
func (seqgrp *SeqGrp) GetSeqSlc() []seq { return seqgrp.seqs }

// Strings returns a copy of the sequences as strings, in file order.
func (seqgrp *SeqGrp) Strings() []string {
	r := make([]string, len(seqgrp.seqs))
	for i, s := range seqgrp.seqs {
		r[i] = string(s.seq)
	}
	return r
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	base := "s"
	if prefix != nil {
		base = prefix[0]
	}
	seqgrp := new(SeqGrp)
	for i, s := range sIn {
		seqgrp.add(fmt.Sprint(base, i), []byte(s))
	}
	return seqgrp
}

// WriteRec writes one record in fasta format, with at most lineLen
// characters per line. A lineLen of zero or less puts the whole
// sequence on one line.
func WriteRec(w io.Writer, cmmt string, s []byte, lineLen int) error {
	if _, err := fmt.Fprintf(w, "%c%s\n", cmmtChar, cmmt); err != nil {
		return err
	}
	if lineLen > 0 {
		for ; len(s) > lineLen; s = s[lineLen:] {
			if _, err := fmt.Fprintf(w, "%s\n", s[:lineLen]); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", s)
	return err
}

// Write writes the group in fasta format.
func (seqgrp *SeqGrp) Write(w io.Writer, lineLen int) error {
	bw := bufio.NewWriter(w)
	for _, s := range seqgrp.seqs {
		if err := WriteRec(bw, s.cmmt, s.seq, lineLen); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// cleanCmmt removes the marker and surrounding white space from a
// header line.
func cleanCmmt(line []byte) string {
	line = line[1:]
	return strings.TrimSpace(string(line))
}

// hasMarker says if a line, after leading white space, starts a record.
func hasMarker(line []byte) ([]byte, bool) {
	for i, c := range line {
		if white.IsWhite(c) {
			continue
		}
		return line[i:], c == cmmtChar
	}
	return nil, false
}
