// 31 July 2020

package seq

import (
	"github.com/andrew-torda/motifer/pkg/white"
)

// substitute maps the non-standard residues to the standard ones we
// can count. Selenocysteine (U) is treated as cysteine and pyrrolysine
// (O) as lysine.
var substitute = [256]byte{
	'U': 'C',
	'O': 'K',
}

// Normalize returns the canonical form of a peptide: upper case, no
// white space anywhere and non-standard residues swapped for standard
// ones. It cannot fail. An empty string gives an empty string.
func Normalize(s string) string {
	b := []byte(s)
	white.Remove(&b)
	NormalizeBytes(b)
	return string(b)
}

// NormalizeBytes upper cases and substitutes in place. It does not
// touch white space.
func NormalizeBytes(b []byte) {
	const diff = 'a' - 'A'
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			c -= diff
		}
		if t := substitute[c]; t != 0 {
			c = t
		}
		b[i] = c
	}
}
