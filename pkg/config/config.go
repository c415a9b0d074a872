// 14 Nov 2024
//
// Package config holds everything a run of the pipeline needs to know:
// where files live, the length bins, the alphabets and the settings of
// the external programs. There are no package level defaults in use
// elsewhere. A Config is built once and passed to whoever needs it.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andrew-torda/motifer/pkg/seq"
)

// Dataset says where the peptide table comes from.
type Dataset struct {
	URL       string `yaml:"url,omitempty"` // empty means never download
	File      string `yaml:"file"`          // relative to BaseDir
	SeqColumn string `yaml:"seq_column"`
	IDColumn  string `yaml:"id_column,omitempty"`
}

// Histogram controls the length distribution plot.
type Histogram struct {
	BinSize int    `yaml:"bin_size"`
	File    string `yaml:"file"`
}

// Tool is an external program and how hard we try to run it.
type Tool struct {
	Cmd     string        `yaml:"cmd"`
	Args    []string      `yaml:"args,omitempty"`
	Timeout time.Duration `yaml:"timeout"` // per attempt, zero for none
	Retries int           `yaml:"retries"` // extra attempts after a failure
}

// Streme has the motif discovery settings.
type Streme struct {
	Tool    `yaml:",inline"`
	MinW    int     `yaml:"minw"`
	MaxW    int     `yaml:"maxw"`
	EValue  float64 `yaml:"evalue"`
	NMotifs int     `yaml:"nmotifs"`
	Seed    int64   `yaml:"seed"`
}

// Config is the run configuration.
type Config struct {
	BaseDir        string    `yaml:"base_dir"`
	Bins           []Bin     `yaml:"bins"`
	GapChars       string    `yaml:"gap_chars"`
	Alphabet       string    `yaml:"alphabet"`
	TieChar        string    `yaml:"tie_char"`
	StrictAlphabet bool      `yaml:"strict_alphabet"`
	Threshold      float64   `yaml:"threshold"`
	Workers        int       `yaml:"workers"`
	LogLevel       string    `yaml:"log_level"`
	Dataset        Dataset   `yaml:"dataset"`
	Histogram      Histogram `yaml:"histogram"`
	Aligner        Tool      `yaml:"aligner"`
	Streme         Streme    `yaml:"streme"`
}

// DefaultBins are the length ranges used for antimicrobial peptides.
// They overlap on purpose.
var DefaultBins = []Bin{{9, 15}, {12, 18}, {15, 25}, {20, 35}, {25, 40}}

// Default returns a configuration which works in the current directory.
func Default() *Config {
	return &Config{
		BaseDir:   ".",
		Bins:      append([]Bin(nil), DefaultBins...),
		GapChars:  seq.DefaultGaps,
		Alphabet:  seq.DefaultAlphabet,
		TieChar:   string(seq.DefaultTie),
		Threshold: seq.DefaultThreshold,
		Workers:   2,
		LogLevel:  "info",
		Dataset: Dataset{
			File:      "general_amps.csv",
			SeqColumn: "Sequence",
		},
		Histogram: Histogram{BinSize: 3, File: "length_hist.png"},
		Aligner: Tool{
			Cmd:     "mafft",
			Args:    []string{"--auto"},
			Timeout: 10 * time.Minute,
		},
		Streme: Streme{
			Tool:    Tool{Cmd: "streme", Timeout: 30 * time.Minute},
			MinW:    3,
			MaxW:    8,
			EValue:  1e-3,
			NMotifs: 5,
			Seed:    42,
		},
	}
}

// Load reads a yaml file over the defaults. Keys the file does not
// mention keep their default values and unknown keys are an error.
// An empty path just gives the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Write puts the configuration out as yaml, so a user has something to
// start editing.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate looks for settings that cannot work.
func (c *Config) Validate() error {
	if len(c.TieChar) != 1 {
		return fmt.Errorf("tie_char \"%s\" must be one character", c.TieChar)
	}
	if err := c.SeqOptions().Check(); err != nil {
		return err
	}
	if math.IsNaN(c.Threshold) || c.Threshold <= 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold %g not in (0,1]", c.Threshold)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d, need at least 1", c.Workers)
	}
	if len(c.Bins) == 0 {
		return errors.New("no length bins")
	}
	for _, b := range c.Bins {
		if b.Lo < 1 || b.Lo > b.Hi {
			return fmt.Errorf("bad length bin %v", b)
		}
	}
	if c.Dataset.SeqColumn == "" {
		return errors.New("dataset.seq_column is empty")
	}
	if c.Histogram.BinSize < 1 {
		return fmt.Errorf("histogram.bin_size %d, need at least 1", c.Histogram.BinSize)
	}
	for _, t := range []*Tool{&c.Aligner, &c.Streme.Tool} {
		if t.Cmd == "" {
			return errors.New("empty command for an external tool")
		}
		if t.Retries < 0 || t.Timeout < 0 {
			return fmt.Errorf("%s: negative retries or timeout", t.Cmd)
		}
	}
	if s := c.Streme; s.MinW < 1 || s.MinW > s.MaxW || s.NMotifs < 1 || s.EValue <= 0 {
		return fmt.Errorf("streme settings minw %d maxw %d nmotifs %d evalue %g", s.MinW, s.MaxW, s.NMotifs, s.EValue)
	}
	return nil
}

// SeqOptions gives the alignment options for the sequence code.
func (c *Config) SeqOptions() *seq.Options {
	opts := &seq.Options{
		GapChars:       c.GapChars,
		Alphabet:       c.Alphabet,
		StrictAlphabet: c.StrictAlphabet,
	}
	if len(c.TieChar) > 0 {
		opts.TieChar = c.TieChar[0]
	}
	return opts
}

// inBase puts a file name in the base directory
func (c *Config) inBase(name string) string { return filepath.Join(c.BaseDir, name) }

// DatasetPath is where the peptide table lives.
func (c *Config) DatasetPath() string { return c.inBase(c.Dataset.File) }

// HistPath is where the histogram goes.
func (c *Config) HistPath() string { return c.inBase(c.Histogram.File) }

// ConsensusPath is the fasta file with consensus and core of every bin.
func (c *Config) ConsensusPath() string { return c.inBase("consensus_core.fasta") }

// BinCSV is the table of peptides in a bin.
func (c *Config) BinCSV(b Bin) string { return c.inBase(b.Label() + "aa_peptides.csv") }

// NormFasta holds the normalised, unaligned peptides of a bin.
func (c *Config) NormFasta(b Bin) string {
	return c.inBase(b.Label() + "aa_peptides_normalized.fasta")
}

// AlnFasta is the aligner's output for a bin.
func (c *Config) AlnFasta(b Bin) string { return c.inBase(b.Label() + "aa_peptides_mafft.fasta") }

// FreqCSV is the frequency matrix of a bin.
func (c *Config) FreqCSV(b Bin) string { return c.inBase(b.Label() + "aa_freq.csv") }

// CoreTxt is the plain text core report of a bin.
func (c *Config) CoreTxt(b Bin) string { return c.inBase(b.Label() + "aa_core.txt") }

// StremeFasta is the cleaned input for the motif finder.
func (c *Config) StremeFasta(b Bin) string {
	return c.inBase(b.Label() + "aa_peptides_streme.fasta")
}

// StremeDir is the motif finder's output directory.
func (c *Config) StremeDir(b Bin) string { return c.inBase("streme_" + b.Label() + "_out") }
