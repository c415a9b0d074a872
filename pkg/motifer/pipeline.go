// 16 Nov 2024

// Package motifer runs the whole job. Starting from a table of
// peptides, it bins them by length, aligns each bin, finds the
// consensus and conserved core of each alignment and optionally hands
// the bins to a motif finder. Bins are independent. They run
// concurrently and one failing bin does not stop the others.
package motifer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/motifer/pkg/config"
	"github.com/andrew-torda/motifer/pkg/consensus"
	"github.com/andrew-torda/motifer/pkg/dataset"
	"github.com/andrew-torda/motifer/pkg/extern"
	"github.com/andrew-torda/motifer/pkg/lenhist"
	"github.com/andrew-torda/motifer/pkg/seq"
	"github.com/andrew-torda/motifer/pkg/seq/common"
)

// BinResult is what happened to one length bin.
type BinResult struct {
	Bin    config.Bin
	NPep   int               // peptides written to the bin's fasta file, -1 if not known
	Result *consensus.Result // nil unless the consensus stage worked
	Motifs bool              // the motif finder ran successfully
	Err    error
}

// Pipeline holds a configuration and the collaborators. Aligner and
// Finder may be set before Run, otherwise they are built from the
// configuration when first needed.
type Pipeline struct {
	Cfg     *config.Config
	Logger  *log.Logger
	Aligner extern.Aligner
	Finder  extern.MotifFinder
	Client  *http.Client
	table   *dataset.Table
}

// New makes a pipeline. A nil logger means the charm default.
func New(cfg *config.Config, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{Cfg: cfg, Logger: logger}
}

// Run does the stages asked for. An error in a stage which is not per
// bin stops everything. Errors from bins are collected and returned
// together after every bin has had its chance.
func (p *Pipeline) Run(ctx context.Context, stages []Stage) ([]BinResult, error) {
	todo := newStageSet(stages)
	cfg := p.Cfg
	if err := os.MkdirAll(cfg.BaseDir, 0o755); err != nil {
		return nil, &common.IOError{Path: cfg.BaseDir, Err: err}
	}
	if todo[Download] {
		if err := p.download(ctx); err != nil {
			return nil, err
		}
	}
	if todo[Load] || todo[Hist] || todo[Bins] {
		if err := p.load(); err != nil {
			return nil, err
		}
	}
	if todo[Hist] {
		if err := p.hist(); err != nil {
			return nil, err
		}
	}
	if todo[Bins] {
		if err := p.bins(); err != nil {
			return nil, err
		}
	}

	results := make([]BinResult, len(cfg.Bins))
	for i, b := range cfg.Bins {
		results[i] = BinResult{Bin: b, NPep: -1}
	}
	if todo.perBin() {
		if err := p.runBins(ctx, todo, results); err != nil {
			return results, err
		}
		if todo[Consensus] {
			err := consensus.WriteFile(cfg.ConsensusPath(), func(w io.Writer) error {
				return ExportConsensus(w, results)
			})
			if err != nil {
				return results, err
			}
			p.Logger.Info("wrote consensus and cores", "path", cfg.ConsensusPath())
		}
	}
	if todo[Streme] {
		if err := p.motifs(ctx, results); err != nil {
			return results, err
		}
	}
	return results, binErrors(results)
}

// binErrors joins the errors of failed bins, nil if there are none.
func binErrors(results []BinResult) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

func (p *Pipeline) download(ctx context.Context) error {
	url := p.Cfg.Dataset.URL
	path := p.Cfg.DatasetPath()
	if url == "" {
		p.Logger.Warn("no dataset url, not downloading", "path", path)
		return nil
	}
	got, err := dataset.Download(ctx, p.Client, url, path)
	if err != nil {
		return err
	}
	if got {
		p.Logger.Info("downloaded dataset", "url", url, "path", path)
	} else {
		p.Logger.Info("dataset already present", "path", path)
	}
	return nil
}

func (p *Pipeline) load() error {
	if p.table != nil {
		return nil
	}
	t, err := dataset.LoadCSV(p.Cfg.DatasetPath(), p.Cfg.Dataset.SeqColumn)
	if err != nil {
		return err
	}
	p.table = t
	p.Logger.Info("loaded dataset", "path", t.Path, "peptides", len(t.Records))
	return nil
}

func (p *Pipeline) hist() error {
	h, err := lenhist.Compute(p.table.Lengths(), p.Cfg.Histogram.BinSize)
	if err != nil {
		return err
	}
	path := p.Cfg.HistPath()
	fp, err := os.Create(path)
	if err != nil {
		return &common.IOError{Path: path, Err: err}
	}
	if err = h.WritePNG(fp); err != nil {
		fp.Close()
		return &common.IOError{Path: path, Err: err}
	}
	if err = fp.Close(); err != nil {
		return &common.IOError{Path: path, Err: err}
	}
	p.Logger.Info("wrote length histogram", "path", path, "intervals", len(h.Counts))
	return nil
}

func (p *Pipeline) bins() error {
	counts, err := dataset.ExportBins(p.table, p.Cfg)
	if err != nil {
		return err
	}
	for i, b := range p.Cfg.Bins {
		p.Logger.Info("length bin", "bin", b.Label(), "peptides", counts[i], "path", p.Cfg.BinCSV(b))
	}
	return nil
}

// runBins does fasta, align and consensus for each bin, at most
// Cfg.Workers bins at a time. The only error returned is a missing
// aligner, which would fail every bin the same way.
func (p *Pipeline) runBins(ctx context.Context, todo stageSet, results []BinResult) error {
	if todo[Align] && p.Aligner == nil {
		m, err := extern.NewMafft(p.Cfg.Aligner, p.Logger)
		if err != nil {
			return err
		}
		p.Aligner = m
	}
	var g errgroup.Group
	g.SetLimit(p.Cfg.Workers)
	for i := range results {
		r := &results[i]
		g.Go(func() error {
			if err := p.runBin(ctx, todo, r); err != nil {
				r.Err = fmt.Errorf("bin %s: %w", r.Bin.Label(), err)
				p.Logger.Error("bin failed", "bin", r.Bin.Label(), "err", err)
			}
			return nil
		})
	}
	return g.Wait()
}

// runBin does the per bin stages in order and stops at the first error.
func (p *Pipeline) runBin(ctx context.Context, todo stageSet, r *BinResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cfg := p.Cfg
	b := r.Bin
	lg := p.Logger.With("bin", b.Label())
	if todo[Fasta] {
		n, err := dataset.CSVToFasta(cfg.BinCSV(b), cfg.NormFasta(b), cfg.Dataset.SeqColumn, cfg.Dataset.IDColumn)
		if err != nil {
			return err
		}
		r.NPep = n
		lg.Info("wrote fasta", "peptides", n, "path", cfg.NormFasta(b))
	}
	if todo[Align] {
		if err := p.align(ctx, lg, b); err != nil {
			return err
		}
	}
	if todo[Consensus] {
		res, err := p.coreOf(b)
		if err != nil {
			return err
		}
		r.Result = res
		lg.Info("core", "nseq", res.NSeq, "length", len(res.Consensus),
			"positions", len(res.Core.Positions), "core", res.Core.Seq)
	}
	return nil
}

// align runs the aligner, except on an empty file. The aligner would
// complain, so the alignment is just left empty too.
func (p *Pipeline) align(ctx context.Context, lg *log.Logger, b config.Bin) error {
	in, out := p.Cfg.NormFasta(b), p.Cfg.AlnFasta(b)
	fi, err := os.Stat(in)
	if err != nil {
		return &common.IOError{Path: in, Err: err}
	}
	if fi.Size() == 0 {
		lg.Warn("no peptides, empty alignment", "path", out)
		if err := os.WriteFile(out, nil, 0o644); err != nil {
			return &common.IOError{Path: out, Err: err}
		}
		return nil
	}
	start := time.Now()
	if err := p.Aligner.Align(ctx, in, out); err != nil {
		return err
	}
	lg.Info("aligned", "path", out, "ms", time.Since(start).Milliseconds())
	return nil
}

// coreOf reads a bin's alignment, calculates and writes the
// frequency matrix and core report.
func (p *Pipeline) coreOf(b config.Bin) (*consensus.Result, error) {
	cfg := p.Cfg
	seqgrp, err := seq.Readfile(cfg.AlnFasta(b))
	if err != nil {
		return nil, err
	}
	res, err := consensus.Analyse(seqgrp, cfg.SeqOptions(), cfg.Threshold)
	if err != nil {
		return nil, err
	}
	if err = consensus.WriteFile(cfg.FreqCSV(b), res.FreqMat.WriteCSV); err != nil {
		return nil, err
	}
	err = consensus.WriteFile(cfg.CoreTxt(b), func(w io.Writer) error {
		return res.WriteReport(w, b.Label())
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ExportConsensus writes the consensus and core of each bin that has
// them, in bin order. Bins with no sequences are left out.
func ExportConsensus(w io.Writer, results []BinResult) error {
	for _, r := range results {
		if r.Result == nil || r.Result.NSeq == 0 {
			continue
		}
		if err := r.Result.WriteFasta(w, r.Bin.Label()); err != nil {
			return err
		}
	}
	return nil
}

// motifs cleans each bin's fasta file and runs the motif finder on it.
// Bins which already failed are left alone. The finder must exist
// before any bin starts.
func (p *Pipeline) motifs(ctx context.Context, results []BinResult) error {
	if p.Finder == nil {
		s, err := extern.NewStreme(p.Cfg.Streme, p.Logger)
		if err != nil {
			return err
		}
		p.Finder = s
	}
	cfg := p.Cfg
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			continue
		}
		g.Go(func() error {
			b := r.Bin
			total, cleaned, err := extern.CleanFasta(cfg.NormFasta(b), cfg.StremeFasta(b))
			if err == nil {
				p.Logger.Info("cleaned fasta", "bin", b.Label(), "path", cfg.StremeFasta(b), "total", total, "cleaned", cleaned)
				err = p.Finder.Find(ctx, cfg.StremeFasta(b), cfg.StremeDir(b))
			}
			if err != nil {
				r.Err = fmt.Errorf("bin %s: %w", b.Label(), err)
				p.Logger.Error("motif finder failed", "bin", b.Label(), "err", err)
				return nil
			}
			r.Motifs = true
			p.Logger.Info("motifs", "bin", b.Label(), "dir", cfg.StremeDir(b))
			return nil
		})
	}
	return g.Wait()
}
