package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Bin is a range of peptide lengths, inclusive at both ends.
type Bin struct {
	Lo, Hi int
}

// Label names the bin in file names and fasta headers, "9_15".
func (b Bin) Label() string { return fmt.Sprintf("%d_%d", b.Lo, b.Hi) }

func (b Bin) String() string { return fmt.Sprintf("%d-%d", b.Lo, b.Hi) }

// Contains says if a peptide of length n belongs in the bin.
func (b Bin) Contains(n int) bool { return n >= b.Lo && n <= b.Hi }

// UnmarshalYAML reads a bin written as a pair, [9, 15].
func (b *Bin) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: length bin needs two numbers, got %d", value.Line, len(pair))
	}
	b.Lo, b.Hi = pair[0], pair[1]
	return nil
}

// MarshalYAML writes a bin as a pair.
func (b Bin) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{b.Lo, b.Hi} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}
	return n, nil
}
