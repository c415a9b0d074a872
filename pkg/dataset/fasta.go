package dataset

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andrew-torda/motifer/pkg/seq"
)

// CSVToFasta reads a binned table and writes its peptides, normalised,
// as fasta. The header of each record is the idColumn cell when there
// is one, otherwise "seq<n>_len<length>" where n counts data lines
// from one. It returns the number of sequences written.
func CSVToFasta(csvPath, fastaPath, seqColumn, idColumn string) (int, error) {
	header, rows, icol, err := readCSV(csvPath, seqColumn)
	if err != nil {
		return 0, err
	}
	iid := -1
	if idColumn != "" {
		iid = colIndex(header, idColumn)
	}
	n := 0
	err = writeFile(fastaPath, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for i, cells := range rows {
			raw := cell(cells, icol)
			if raw == "" {
				continue
			}
			s := seq.Normalize(raw)
			name := cell(cells, iid)
			if name == "" {
				name = fmt.Sprintf("seq%d_len%d", i+1, len(s))
			}
			if err := seq.WriteRec(bw, name, []byte(s), 0); err != nil {
				return err
			}
			n++
		}
		return bw.Flush()
	})
	return n, err
}
