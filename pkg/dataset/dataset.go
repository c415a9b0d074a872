// 14 Nov 2024

// Package dataset gets the peptide table, splits it into length bins
// and writes the fasta files the aligner wants. The table is plain csv
// with a header line.
package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/andrew-torda/motifer/pkg/config"
	"github.com/andrew-torda/motifer/pkg/seq/common"
)

// lengthCol is the column we add to binned tables.
const lengthCol = "length"

// Record is one peptide. Row counts data lines from zero, including
// lines that were dropped.
type Record struct {
	Row    int
	Cells  []string
	Seq    string
	Length int
}

// Table is the peptide table with empty sequences removed.
type Table struct {
	Path    string
	Header  []string
	SeqCol  int
	Records []Record
}

// colIndex returns the position of a column or -1.
func colIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// cell is forgiving about short lines.
func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}

// readCSV reads a whole csv file and checks it has seqColumn.
func readCSV(path, seqColumn string) (header []string, rows [][]string, icol int, err error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, nil, -1, &common.IOError{Path: path, Err: err}
	}
	defer fp.Close()
	rdr := csv.NewReader(fp)
	rdr.FieldsPerRecord = -1
	header, err = rdr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, -1, &common.SchemaError{Path: path, Column: seqColumn}
	}
	if err != nil {
		return nil, nil, -1, &common.IOError{Path: path, Err: err}
	}
	if icol = colIndex(header, seqColumn); icol == -1 {
		return nil, nil, -1, &common.SchemaError{Path: path, Column: seqColumn}
	}
	if rows, err = rdr.ReadAll(); err != nil {
		return nil, nil, -1, &common.IOError{Path: path, Err: err}
	}
	return header, rows, icol, nil
}

// LoadCSV reads the peptide table. seqColumn must be in the header.
// Lines with an empty sequence are dropped. Lengths are of the
// sequence as written, before any normalising.
func LoadCSV(path, seqColumn string) (*Table, error) {
	header, rows, icol, err := readCSV(path, seqColumn)
	if err != nil {
		return nil, err
	}
	t := &Table{Path: path, Header: header, SeqCol: icol}
	for i, cells := range rows {
		s := cell(cells, icol)
		if s == "" {
			continue
		}
		t.Records = append(t.Records, Record{Row: i, Cells: cells, Seq: s, Length: utf8.RuneCountInString(s)})
	}
	return t, nil
}

// Lengths returns the length of every peptide.
func (t *Table) Lengths() []int {
	r := make([]int, len(t.Records))
	for i, rec := range t.Records {
		r[i] = rec.Length
	}
	return r
}

// Select returns the peptides whose length is in the bin.
func (t *Table) Select(b config.Bin) []Record {
	var r []Record
	for _, rec := range t.Records {
		if b.Contains(rec.Length) {
			r = append(r, rec)
		}
	}
	return r
}

// WriteBin writes records as csv with the table's header and a length
// column. If the table already has a length column, it is overwritten.
func (t *Table) WriteBin(w io.Writer, recs []Record) error {
	header := t.Header
	ilen := colIndex(header, lengthCol)
	if ilen == -1 {
		header = append(append([]string(nil), header...), lengthCol)
		ilen = len(header) - 1
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	line := make([]string, len(header))
	for _, rec := range recs {
		for i := range line {
			line[i] = cell(rec.Cells, i)
		}
		line[ilen] = strconv.Itoa(rec.Length)
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportBins writes one csv file per bin and returns how many peptides
// went into each.
func ExportBins(t *Table, cfg *config.Config) ([]int, error) {
	counts := make([]int, len(cfg.Bins))
	for i, b := range cfg.Bins {
		recs := t.Select(b)
		counts[i] = len(recs)
		if err := writeFile(cfg.BinCSV(b), func(w io.Writer) error { return t.WriteBin(w, recs) }); err != nil {
			return counts, err
		}
	}
	return counts, nil
}

// writeFile creates path, hands it to wrt and reports failures as
// IOErrors.
func writeFile(path string, wrt func(io.Writer) error) error {
	fp, err := os.Create(path)
	if err != nil {
		return &common.IOError{Path: path, Err: err}
	}
	if err = wrt(fp); err != nil {
		fp.Close()
		return &common.IOError{Path: path, Err: err}
	}
	if err = fp.Close(); err != nil {
		return &common.IOError{Path: path, Err: err}
	}
	return nil
}
