// 15 Nov 2024

// Package extern runs the programs we do not write ourselves: the
// multiple sequence aligner and the motif finder. The rest of the code
// only sees the Aligner and MotifFinder interfaces, files in and files
// out. Timeouts and retries belong to the Runner.
package extern

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"

	"github.com/andrew-torda/motifer/pkg/seq/common"
)

// Aligner turns an unaligned fasta file into an aligned one.
type Aligner interface {
	Align(ctx context.Context, in, out string) error
}

// MotifFinder looks for motifs in a fasta file and leaves its results
// in outDir.
type MotifFinder interface {
	Find(ctx context.Context, in, outDir string) error
}

// Runner runs a command with a time limit for each attempt and tries
// again after a failure, up to Retries more times.
type Runner struct {
	Timeout time.Duration // per attempt, zero for no limit
	Retries int
	Backoff time.Duration // wait before retry n is n * Backoff
	Logger  *log.Logger
}

// LookPath finds a tool or says it is missing.
func LookPath(tool string) (string, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", &common.PreconditionError{Tool: tool, Err: err}
	}
	return path, nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}

// Run runs path with args. If stdoutPath is not empty, standard output
// goes there, truncated for each attempt and removed if we give up.
func (r *Runner) Run(ctx context.Context, path string, args []string, stdoutPath string) error {
	var err error
	for attempt := 0; attempt <= r.Retries; attempt++ {
		if attempt > 0 {
			r.logger().Warn("retrying", "tool", path, "attempt", attempt+1, "err", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * r.Backoff):
			}
		}
		start := time.Now()
		err = r.once(ctx, path, args, stdoutPath)
		r.logger().Debug("ran", "tool", path, "args", args, "ms", time.Since(start).Milliseconds(), "ok", err == nil)
		if err == nil || ctx.Err() != nil {
			break
		}
		var ioErr *common.IOError
		if errors.As(err, &ioErr) { // our own file trouble, not worth repeating
			break
		}
	}
	if err != nil && stdoutPath != "" {
		os.Remove(stdoutPath)
	}
	return err
}

// waitDelay is how long we wait for a killed tool's children to let go
// of its output.
const waitDelay = time.Second

// once is a single attempt.
func (r *Runner) once(ctx context.Context, path string, args []string, stdoutPath string) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.WaitDelay = waitDelay
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	var fp *os.File
	if stdoutPath != "" {
		var err error
		if fp, err = os.Create(stdoutPath); err != nil {
			return &common.IOError{Path: stdoutPath, Err: err}
		}
		defer fp.Close()
		cmd.Stdout = fp
	} else {
		cmd.Stdout = io.Discard
	}
	if err := cmd.Run(); err != nil {
		perr := &common.ExternalProcessError{
			Tool: path, Args: args, ExitCode: -1,
			Stderr: common.TailStr(stderr.String()), Err: err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			perr.ExitCode = exitErr.ExitCode()
		}
		if ctx.Err() != nil {
			perr.Err = ctx.Err()
		}
		return perr
	}
	if fp != nil {
		if err := fp.Close(); err != nil {
			return &common.IOError{Path: stdoutPath, Err: err}
		}
	}
	return nil
}
