package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/motifer/pkg/config"
)

func wrtCfg(t *testing.T, s string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "motifer.yaml")
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal("defaults do not validate", err)
	}
	if cfg.Threshold != 0.5 || cfg.TieChar != "X" || cfg.GapChars != "-." {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if diff := cmp.Diff(DefaultBins, cfg.Bins); diff != "" {
		t.Fatal(diff)
	}
	cfg.Bins[0].Lo = 1
	if DefaultBins[0].Lo != 9 {
		t.Fatal("changing a config changed the default bins")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := wrtCfg(t, `base_dir: /data/amp
bins:
  - [5, 10]
  - [11, 20]
threshold: 0.8
strict_alphabet: true
aligner:
  cmd: mafft
  args: [--auto, --quiet]
  timeout: 2m
  retries: 1
streme:
  maxw: 12
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []Bin{{5, 10}, {11, 20}}
	if diff := cmp.Diff(want, cfg.Bins); diff != "" {
		t.Fatal(diff)
	}
	if cfg.Threshold != 0.8 || !cfg.StrictAlphabet || cfg.Aligner.Timeout != 2*time.Minute {
		t.Fatalf("overrides lost %+v", cfg)
	}
	if cfg.Streme.MaxW != 12 || cfg.Streme.MinW != 3 || cfg.Streme.Cmd != "streme" {
		t.Fatalf("partial streme section %+v", cfg.Streme)
	}
	if got := cfg.AlnFasta(want[0]); got != "/data/amp/5_10aa_peptides_mafft.fasta" {
		t.Fatal("aligned file name", got)
	}
	if !cfg.SeqOptions().StrictAlphabet {
		t.Fatal("strict flag not passed on")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	if _, err := Load(wrtCfg(t, "")); err != nil {
		t.Fatal("empty file", err)
	}
}

func TestLoadBad(t *testing.T) {
	bad := []string{
		"threshold: 0\n",
		"threshold: 1.5\n",
		"tie_char: XY\n",
		"tie_char: A\n",
		"alphabet: ACCA\n",
		"bins: [[15, 9]]\n",
		"bins: [[9, 15, 20]]\n",
		"bins: []\n",
		"workers: 0\n",
		"no_such_key: 1\n",
		"streme:\n  minw: 9\n",
		"aligner:\n  cmd: \"\"\n",
		"threshold: [\n",
	}
	for _, s := range bad {
		if _, err := Load(wrtCfg(t, s)); err == nil {
			t.Fatalf("config %q was accepted", s)
		}
	}
	if _, err := Load("/no/such/file.yaml"); err == nil {
		t.Fatal("missing file accepted")
	}
}

// TestWriteRoundTrip writes the defaults and reads them back
func TestWriteRoundTrip(t *testing.T) {
	var sb strings.Builder
	if err := Default().Write(&sb); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "- [9, 15]") {
		t.Fatal("bins not written as pairs\n", sb.String())
	}
	cfg, err := Load(wrtCfg(t, sb.String()))
	if err != nil {
		t.Fatal(err, "\n", sb.String())
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatal(diff)
	}
}

func TestBin(t *testing.T) {
	b := Bin{9, 15}
	if b.Label() != "9_15" || !b.Contains(9) || !b.Contains(15) || b.Contains(16) || b.Contains(8) {
		t.Fatal("bin boundaries wrong")
	}
}
