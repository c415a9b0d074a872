package seq_test

import (
	"fmt"
	"log"
	"os"
	"strings"

	. "github.com/andrew-torda/motifer/pkg/seq"
)

var aln1 = `>pep1
MKV-IT
>pep2
MKVLIT
>pep3
MKV-VT`

func ExampleExtractCore() {
	seqgrp, err := ReadAln(strings.NewReader(aln1))
	if err != nil {
		log.Fatal(err)
	}
	opts := DefaultOptions()
	cons := seqgrp.Consensus(opts)
	fm := seqgrp.FreqMat(opts)
	core, err := ExtractCore(cons, fm, 0.7)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cons)
	fmt.Println(core.Positions, core.Seq)
	// Output:
	// MKVLIT
	// [1 2 3 4 6] MKVLT
}

func ExampleFreqMat_WriteCSV() {
	opts := &Options{GapChars: "-.", Alphabet: "IKLMTV", TieChar: 'X'}
	seqgrp, _ := ReadAln(strings.NewReader(aln1))
	seqgrp.FreqMat(opts).WriteCSV(os.Stdout)
	// Output:
	// pos,total,I,K,L,M,T,V
	// 1,3,0,0,0,1,0,0
	// 2,3,0,1,0,0,0,0
	// 3,3,0,0,0,0,0,1
	// 4,1,0,0,1,0,0,0
	// 5,3,0.6666666666666666,0,0,0,0,0.3333333333333333
	// 6,3,0,0,0,0,1,0
}
