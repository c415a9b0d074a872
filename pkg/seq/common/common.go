// 29 Apr 2020
// Exit codes, the gap character and the error kinds shared by the
// sequence code and the pipeline around it.

package common

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

// IOError says a file could not be opened, read or written.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return "io: " + e.Err.Error()
	}
	return fmt.Sprintf("io %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// SchemaError is for tabular input without a column we need.
type SchemaError struct {
	Path   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: no column \"%s\"", e.Path, e.Column)
}

// PreconditionError means a required external program is not on the path.
type PreconditionError struct {
	Tool string
	Err  error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot find \"%s\" on the path: %v", e.Tool, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// ExternalProcessError is returned when a collaborator (aligner, motif
// finder) did not exit cleanly. Stderr holds the tail of what it said.
type ExternalProcessError struct {
	Tool     string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

// maxStderr is how much of a tool's complaints we keep.
const maxStderr = 400

func (e *ExternalProcessError) Error() string {
	msg := fmt.Sprintf("%s %s: exit %d: %v", e.Tool, strings.Join(e.Args, " "), e.ExitCode, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *ExternalProcessError) Unwrap() error { return e.Err }

// TailStr returns at most the last maxStderr bytes of s.
func TailStr(s string) string {
	if len(s) > maxStderr {
		return s[len(s)-maxStderr:]
	}
	return s
}
