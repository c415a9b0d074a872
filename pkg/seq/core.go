// 12 Nov 2024

package seq

import (
	"fmt"
	"math"
)

// DefaultThreshold is the conservation needed for a position to be in
// the core.
const DefaultThreshold = 0.5

// Core is the set of well conserved positions of an alignment.
// Positions count from 1 and are ascending. Seq has the consensus
// character at each of them.
type Core struct {
	Positions []int
	Seq       string
}

// ExtractCore picks the positions whose most common letter has a
// frequency of at least theta (0 < theta <= 1) and collects the
// consensus characters at those positions. An empty matrix gives an
// empty core. It is an error for the matrix to be longer than the
// consensus.
func ExtractCore(consensus string, fm *FreqMat, theta float64) (Core, error) {
	core := Core{Positions: []int{}}
	if math.IsNaN(theta) || theta <= 0 || theta > 1 {
		return core, fmt.Errorf("threshold %g not in (0,1]", theta)
	}
	if fm == nil || fm.NPos() == 0 {
		return core, nil
	}
	if n := fm.NPos(); n > len(consensus) {
		return core, fmt.Errorf("frequency matrix has %d positions, consensus only %d", n, len(consensus))
	}
	b := make([]byte, 0, fm.NPos())
	for pos := 1; pos <= fm.NPos(); pos++ {
		if fm.MaxFreq(pos) >= theta {
			core.Positions = append(core.Positions, pos)
			b = append(b, consensus[pos-1])
		}
	}
	core.Seq = string(b)
	return core, nil
}
