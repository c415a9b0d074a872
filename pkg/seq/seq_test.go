package seq_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/motifer/brokenio"
	. "github.com/andrew-torda/motifer/pkg/seq"
	"github.com/andrew-torda/motifer/pkg/seq/common"
)

// TestReadAln goes through the rules of the block format
func TestReadAln(t *testing.T) {
	s := `junk before the first record
more junk
>s1 first
MKV-
  IT

>s2
MKVLIT
>empty record

> s3
MKV
-VT
>last`
	seqgrp, err := ReadAln(strings.NewReader(s))
	if err != nil {
		t.Fatal("bust reading simple seqs", err)
	}
	want := []string{"MKV-IT", "MKVLIT", "MKV-VT"}
	if diff := cmp.Diff(want, seqgrp.Strings()); diff != "" {
		t.Fatal("sequences differ (-want +got)\n", diff)
	}
	cmmts := []string{"s1 first", "s2", "s3"}
	for i, ss := range seqgrp.GetSeqSlc() {
		if ss.GetCmmt() != cmmts[i] {
			t.Fatalf("comment %d wanted \"%s\" got \"%s\"", i, cmmts[i], ss.GetCmmt())
		}
	}
	if seqgrp.GetLen() != 6 {
		t.Fatal("alignment length wanted 6 got", seqgrp.GetLen())
	}
}

// TestFinalRecord has no newline at the end of input
func TestFinalRecord(t *testing.T) {
	for _, s := range []string{">a\nAAA", ">a\nAAA\n", ">a\r\nAAA\r\n"} {
		seqgrp, err := ReadAln(strings.NewReader(s))
		if err != nil {
			t.Fatal(err)
		}
		if seqgrp.GetNSeq() != 1 || seqgrp.Strings()[0] != "AAA" {
			t.Fatalf("from %q got %v", s, seqgrp.Strings())
		}
	}
}

// TestReadNothing covers empty and header-free input
func TestReadNothing(t *testing.T) {
	for _, s := range []string{"", "\n\n", "MKVLIT\nMKV\n"} {
		seqgrp, err := ReadAln(strings.NewReader(s))
		if err != nil {
			t.Fatal(err)
		}
		if seqgrp.GetNSeq() != 0 || seqgrp.GetLen() != 0 {
			t.Fatalf("from %q wanted no sequences, got %d", s, seqgrp.GetNSeq())
		}
	}
}

// TestLongLine is bigger than any read buffer
func TestLongLine(t *testing.T) {
	ll := []int{10000, 70000}
	s := ">\n" + strings.Repeat("A", ll[0]) + "\n> s2\n" + strings.Repeat("C", ll[1])
	seqgrp, err := ReadAln(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	for i, ss := range seqgrp.GetSeqSlc() {
		if ss.Len() != ll[i] {
			t.Fatalf("long seq wanted %d got %d", ll[i], ss.Len())
		}
	}
	if seqgrp.GetLen() != ll[1] {
		t.Fatal("alignment length", seqgrp.GetLen())
	}
}

// TestReadBroken makes sure a failing reader is an IOError and not
// a short alignment.
func TestReadBroken(t *testing.T) {
	s := ">s1\nMKVLIT\n>s2\nMKVLIT\n"
	rdr := brokenio.NewReader(strings.NewReader(s), 12)
	_, err := ReadAln(rdr)
	var ioErr *common.IOError
	if !errors.As(err, &ioErr) {
		t.Fatal("wanted IOError, got", err)
	}
	if !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("IOError lost the cause", err)
	}
}

func TestReadfile(t *testing.T) {
	fname, err := common.WrtTemp(">s1\nMKV-IT\n>s2\nMKVLIT\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	seqgrp, err := Readfile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if seqgrp.GetNSeq() != 2 || seqgrp.Strings()[1] != "MKVLIT" {
		t.Fatal("Readfile got", seqgrp.Strings())
	}

	empty, err := common.WrtTemp("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(empty)
	if seqgrp, err = Readfile(empty); err != nil || seqgrp.GetNSeq() != 0 {
		t.Fatal("empty file gave", err)
	}
}

func TestReadfileMissing(t *testing.T) {
	_, err := Readfile("/no/such/dir/aln.fasta")
	var ioErr *common.IOError
	if !errors.As(err, &ioErr) {
		t.Fatal("wanted IOError, got", err)
	}
	if ioErr.Path != "/no/such/dir/aln.fasta" || !errors.Is(err, os.ErrNotExist) {
		t.Fatal("IOError does not say what happened:", err)
	}
}

// TestWrite goes out and back in again
func TestWrite(t *testing.T) {
	in := []string{strings.Repeat("ACDEFGHIKL", 13), "MKV-IT"}
	var sb strings.Builder
	if err := Str2SeqGrp(in).Write(&sb, 60); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(sb.String(), "\n"); n != 6 {
		t.Fatalf("wanted 6 lines, got %d\n%s", n, sb.String())
	}
	seqgrp, err := ReadAln(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, seqgrp.Strings()); diff != "" {
		t.Fatal(diff)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"mkvlit", "MKVLIT"},
		{" gl fu o \t\n", "GLFCK"},
		{"AUOa", "ACKA"},
		{"ACD-EF", "ACD-EF"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Fatalf("Normalize(%q) got %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestOptionsCheck(t *testing.T) {
	if err := DefaultOptions().Check(); err != nil {
		t.Fatal("default options fail check", err)
	}
	bad := []Options{
		{Alphabet: "", TieChar: 'X'},
		{Alphabet: "ACA", TieChar: 'X'},
		{Alphabet: "AC-", GapChars: "-", TieChar: 'X'},
		{Alphabet: "ACX", TieChar: 'X'},
		{Alphabet: "AC", GapChars: "-", TieChar: '-'},
		{Alphabet: "AC"},
	}
	for i, opts := range bad {
		if opts.Check() == nil {
			t.Fatalf("bad options %d %+v passed", i, opts)
		}
	}
}
