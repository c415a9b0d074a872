// 31 July 2020

/*
Randseq makes random aligned peptides for testing and benchmarking.
Usage:

	randseq [options] fname nseq length

will write nseq sequences of alignment length length to fname in fasta
format. A file name of "-" means standard output.

Flags:

	-c fraction
		fraction of columns which are conserved. A conserved column
		carries one residue in about nine of ten sequences
	-g probability
		chance of a gap at any site, default 0.1
	-j
		jagged. Sequences may stop before the end of the alignment
	-m
		messy. Scatter spaces and line breaks through the sequences
	-r seed
		random number seed

The content is not meant to look like real peptides. The shape is what
matters: gaps, conserved columns, ragged ends and untidy white space,
which are what the readers and consensus code have to cope with.
*/
package main
