// 16 Nov 2024

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/andrew-torda/motifer/pkg/config"
	"github.com/andrew-torda/motifer/pkg/motifer"
	. "github.com/andrew-torda/motifer/pkg/seq/common"
)

// newLogger writes to stderr with timestamps. -v wins over the
// configured level.
func newLogger(verbose bool, level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "motifer",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return logger
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		logger.Warn("unknown log_level, using info", "provided", level)
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}

func main() {
	var cfgFile, baseDir, stageList string
	var threshold float64
	var verbose, initCfg bool
	flag.StringVar(&cfgFile, "c", "", "yaml configuration file")
	flag.StringVar(&baseDir, "d", "", "base directory (overrides configuration)")
	flag.BoolVar(&initCfg, "init", false, "write default configuration and exit")
	flag.StringVar(&stageList, "stages", "default", "comma separated stages, \"all\" or \"default\"")
	flag.Float64Var(&threshold, "t", 0, "core threshold (overrides configuration)")
	flag.BoolVar(&verbose, "v", false, "verbose")
	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "unexpected arguments:", flag.Args())
		flag.Usage()
		os.Exit(ExitUsageError)
	}

	if initCfg {
		if err := config.Default().Write(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitFailure)
		}
		os.Exit(ExitSuccess)
	}

	stages, err := motifer.ParseStages(stageList)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsageError)
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	if baseDir != "" {
		cfg.BaseDir = baseDir
	}
	if threshold != 0 {
		cfg.Threshold = threshold
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitUsageError)
		}
	}

	logger := newLogger(verbose, cfg.LogLevel)
	logger.Debug("configuration", "file", cfgFile, "base_dir", cfg.BaseDir, "bins", len(cfg.Bins),
		"threshold", cfg.Threshold, "workers", cfg.Workers, "stages", stages)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	start := time.Now()
	results, err := motifer.New(cfg, logger).Run(ctx, stages)
	if len(results) > 0 {
		fmt.Println(motifer.Summary(results))
	}
	if err != nil {
		logger.Error("run finished with errors", "err", err, "duration", time.Since(start).Round(time.Millisecond))
		stop()
		os.Exit(ExitFailure)
	}
	logger.Info("done", "duration", time.Since(start).Round(time.Millisecond))
}
