package extern

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/andrew-torda/motifer/pkg/seq/common"
)

// ValidResidues are the letters the motif finder accepts in a protein
// sequence. Anything else becomes Placeholder.
const (
	ValidResidues = "ACDEFGHIKLMNPQRSTVWYBXZJUO"
	Placeholder   = 'X'
)

var validTable = func() (t [256]bool) {
	for i := 0; i < len(ValidResidues); i++ {
		t[ValidResidues[i]] = true
	}
	return t
}()

// Clean copies fasta from r to w for the motif finder. Header lines go
// through untouched, blank lines are dropped and sequence lines are
// trimmed, upper cased and stripped of anything that is not a valid
// residue. It returns how many sequence lines it saw and how many it
// had to change.
func Clean(r io.Reader, w io.Writer) (total, cleaned int, err error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	for {
		line, rerr := br.ReadBytes('\n')
		line = bytes.TrimRight(line, "\r\n")
		switch {
		case len(line) > 0 && line[0] == '>':
			bw.Write(line)
			bw.WriteByte('\n')
		case len(bytes.TrimSpace(line)) == 0:
		default:
			total++
			s := bytes.ToUpper(bytes.TrimSpace(line))
			changed := false
			for i, c := range s {
				if !validTable[c] {
					s[i] = Placeholder
					changed = true
				}
			}
			if changed {
				cleaned++
			}
			bw.Write(s)
			bw.WriteByte('\n')
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return total, cleaned, rerr
		}
	}
	return total, cleaned, bw.Flush()
}

// CleanFasta is Clean from one file to another.
func CleanFasta(in, out string) (total, cleaned int, err error) {
	fin, err := os.Open(in)
	if err != nil {
		return 0, 0, &common.IOError{Path: in, Err: err}
	}
	defer fin.Close()
	fout, err := os.Create(out)
	if err != nil {
		return 0, 0, &common.IOError{Path: out, Err: err}
	}
	if total, cleaned, err = Clean(fin, fout); err != nil {
		fout.Close()
		return total, cleaned, &common.IOError{Path: in, Err: err}
	}
	if err = fout.Close(); err != nil {
		return total, cleaned, &common.IOError{Path: out, Err: err}
	}
	return total, cleaned, nil
}
