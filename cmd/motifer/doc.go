// 16 Nov 2024

/*
Motifer finds the conserved cores of antimicrobial peptides.

It reads a csv table of peptides, sorts them into length bins, writes
each bin as fasta, aligns it with mafft and takes the consensus and
conserved core of each alignment. Optionally it downloads the table
first and runs streme on each bin afterwards.

Usage:

	motifer [flags]

The flags are:

	-c file
		yaml configuration. Without it, defaults are used and the
		table is general_amps.csv in the current directory
	-d dir
		base directory, overrides the configuration
	-init
		write the default configuration to standard output and stop
	-stages list
		comma separated stages from download, load, hist, bins, fasta,
		align, consensus, streme. "all" is every stage, "default" is
		all but download and streme
	-t threshold
		conservation needed for the core, overrides the configuration
	-v
		verbose, log at debug level

Each bin lo-hi leaves <lo>_<hi>aa_peptides.csv, ..._normalized.fasta,
..._mafft.fasta, <lo>_<hi>aa_freq.csv and <lo>_<hi>aa_core.txt in the
base directory. consensus_core.fasta collects the consensus and core
of every bin. A bin which fails is reported and the others carry on.
The exit status is non-zero if anything failed.
*/
package main
