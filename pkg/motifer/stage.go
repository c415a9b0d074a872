package motifer

import (
	"fmt"
	"strings"
)

// Stage is one step of a run.
type Stage string

const (
	Download  Stage = "download"
	Load      Stage = "load"
	Hist      Stage = "hist"
	Bins      Stage = "bins"
	Fasta     Stage = "fasta"
	Align     Stage = "align"
	Consensus Stage = "consensus"
	Streme    Stage = "streme"
)

// AllStages is every stage in the order they run.
var AllStages = []Stage{Download, Load, Hist, Bins, Fasta, Align, Consensus, Streme}

// DefaultStages needs neither the network nor the MEME suite.
var DefaultStages = []Stage{Load, Hist, Bins, Fasta, Align, Consensus}

// ParseStages reads a comma separated list like "fasta,align". The
// words "all" and "default" stand for the two predefined lists. Order
// in the list does not matter, stages always run in the order of
// AllStages.
func ParseStages(s string) ([]Stage, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "default":
		return DefaultStages, nil
	case "all":
		return AllStages, nil
	}
	var stages []Stage
	seen := make(map[Stage]bool)
	for _, word := range strings.Split(s, ",") {
		st := Stage(strings.ToLower(strings.TrimSpace(word)))
		if !known(st) {
			return nil, fmt.Errorf("unknown stage \"%s\"", word)
		}
		if !seen[st] {
			stages = append(stages, st)
			seen[st] = true
		}
	}
	return stages, nil
}

func known(st Stage) bool {
	for _, s := range AllStages {
		if s == st {
			return true
		}
	}
	return false
}

type stageSet map[Stage]bool

func newStageSet(stages []Stage) stageSet {
	set := make(stageSet, len(stages))
	for _, s := range stages {
		set[s] = true
	}
	return set
}

// perBin says if any of the stages which work bin by bin are wanted
func (set stageSet) perBin() bool { return set[Fasta] || set[Align] || set[Consensus] }
