// 27 april 2020

/*
Consensus reads a multiple sequence alignment of peptides and writes
its consensus sequence and its conserved core.

Given no explicit input path, it reads from standard input.
Given no output filename, it writes to standard output.
Gap characters are ignored when counting. If the two most common
residues in a column are equally common, the consensus gets the tie
character. A position is in the core if its most common residue makes
up at least the threshold fraction of the non-gap characters there.

The output is a few lines of tab separated keys and values: the number
of sequences, the alignment length, the threshold, the consensus, the
core positions (counting from 1) and the core sequence.

Usage:

	consensus [flags] [input [output]]

The flags are:

	-a alphabet
		Letters of the frequency matrix, default the 20 amino acids
	-g gaps
		Gap characters, default "-."
	-m file
		Write the frequency matrix as csv to this file
	-s
		Strict. Residues outside the alphabet do not count in column totals
	-t threshold
		Conservation needed for the core, default 0.5
	-x char
		Tie character, default X
*/
package main
