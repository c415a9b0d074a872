// Reader for aligned sequences in fasta format.

package seq

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/motifer/pkg/seq/common"
	"github.com/andrew-torda/motifer/pkg/white"
)

// ReadAln reads aligned sequences. A line starting with ">" starts a
// record and the following lines are glued together until the next
// ">" or the end of input. Blank lines are skipped, white space is
// removed and anything before the first ">" is thrown away.
// A record with no sequence is dropped. The input is not checked any
// further, so the only errors are read errors.
func ReadAln(rdr io.Reader) (*SeqGrp, error) {
	seqgrp := new(SeqGrp)
	br := bufio.NewReader(rdr)
	var cmmt string
	var cur []byte
	inRec := false
	flush := func() {
		if inRec && len(cur) > 0 {
			seqgrp.add(cmmt, cur)
		}
		cur = nil
	}
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			if t, isCmmt := hasMarker(line); isCmmt {
				flush()
				cmmt = cleanCmmt(t)
				inRec = true
			} else if inRec {
				white.Remove(&line)
				cur = append(cur, line...)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &common.IOError{Err: err}
		}
	}
	flush()
	return seqgrp, nil
}

// Readfile takes a filename and reads sequences from it. An empty name
// means standard input. Files are mapped into memory rather than read.
func Readfile(fname string) (*SeqGrp, error) {
	if fname == "" {
		return ReadAln(os.Stdin)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, &common.IOError{Path: fname, Err: err}
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, &common.IOError{Path: fname, Err: err}
	}
	if fi.Size() == 0 { // cannot map an empty file
		return new(SeqGrp), nil
	}
	if !fi.Mode().IsRegular() { // pipes and devices cannot be mapped either
		seqgrp, err := ReadAln(fp)
		return seqgrp, withPath(err, fname)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, &common.IOError{Path: fname, Err: err}
	}
	defer mm.Unmap()
	seqgrp, err := ReadAln(bytes.NewReader(mm))
	return seqgrp, withPath(err, fname)
}

// withPath fills in the file name of an IOError from ReadAln.
func withPath(err error, fname string) error {
	if e, ok := err.(*common.IOError); ok {
		e.Path = fname
	}
	return err
}
