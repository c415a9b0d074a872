package extern

import (
	"context"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/andrew-torda/motifer/pkg/config"
)

// Mafft is the aligner. It reads a fasta file and writes the
// alignment to standard output.
type Mafft struct {
	Path   string
	Args   []string
	Runner Runner
}

// NewMafft finds the aligner named in the configuration.
func NewMafft(tool config.Tool, logger *log.Logger) (*Mafft, error) {
	path, err := LookPath(tool.Cmd)
	if err != nil {
		return nil, err
	}
	return &Mafft{
		Path:   path,
		Args:   tool.Args,
		Runner: Runner{Timeout: tool.Timeout, Retries: tool.Retries, Logger: logger},
	}, nil
}

// Align runs "mafft <args> in > out".
func (m *Mafft) Align(ctx context.Context, in, out string) error {
	args := append(append([]string(nil), m.Args...), in)
	return m.Runner.Run(ctx, m.Path, args, out)
}

// Streme is the motif finder from the MEME suite.
type Streme struct {
	Path     string
	Settings config.Streme
	Runner   Runner
}

// NewStreme finds streme. It is an error if it is not installed.
func NewStreme(s config.Streme, logger *log.Logger) (*Streme, error) {
	path, err := LookPath(s.Cmd)
	if err != nil {
		return nil, err
	}
	return &Streme{
		Path:     path,
		Settings: s,
		Runner:   Runner{Timeout: s.Timeout, Retries: s.Retries, Logger: logger},
	}, nil
}

// Args builds the command line for one input file.
func (s *Streme) Args(in, outDir string) []string {
	st := s.Settings
	args := []string{
		"-p", in,
		"-oc", outDir,
		"-minw", strconv.Itoa(st.MinW),
		"-maxw", strconv.Itoa(st.MaxW),
		"--protein",
		"--evalue",
		"--thresh", strconv.FormatFloat(st.EValue, 'g', -1, 64),
		"--nmotifs", strconv.Itoa(st.NMotifs),
		"--seed", strconv.FormatInt(st.Seed, 10),
	}
	return append(args, st.Args...)
}

// Find runs streme on a cleaned fasta file.
func (s *Streme) Find(ctx context.Context, in, outDir string) error {
	return s.Runner.Run(ctx, s.Path, s.Args(in, outDir), "")
}
