// 31 July 2020

package randseq_test

import (
	"strings"
	"testing"

	"github.com/andrew-torda/motifer/pkg/randseq"
	"github.com/andrew-torda/motifer/pkg/seq"
)

func TestSimple(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{
		Wrtr:    &sb,
		Cmmt:    "testing seq",
		Nseq:    500,
		Len:     40,
		GapProb: 0.1,
		Messy:   true,
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(sb.String(), ">"); n != args.Nseq {
		t.Fatal("count >, got ", n, "expected", args.Nseq)
	}
	seqgrp, err := seq.ReadAln(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if seqgrp.GetNSeq() != args.Nseq || seqgrp.GetLen() != args.Len {
		t.Fatalf("read back %d seqs of length %d", seqgrp.GetNSeq(), seqgrp.GetLen())
	}
	want := randseq.RandAln(&args)
	for i, s := range seqgrp.Strings() {
		if s != want[i] {
			t.Fatalf("seq %d messy write/read got %s want %s", i, s, want[i])
		}
	}
}

func TestReproducible(t *testing.T) {
	args := randseq.RandSeqArgs{Iseed: 99, Nseq: 20, Len: 15, Ragged: true, Conserved: 0.5}
	a, b := randseq.RandAln(&args), randseq.RandAln(&args)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed, different sequences at", i)
		}
		if len(a[i]) < 1 || len(a[i]) > args.Len {
			t.Fatal("ragged sequence has length", len(a[i]))
		}
	}
}
