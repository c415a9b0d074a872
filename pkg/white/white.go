// Package white removes white space from byte slices, in place.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// IsWhite says if c is ascii white space.
func IsWhite(c byte) bool { return asciiSpace[c] }

// Remove acts on a byte slice, in place and removes all the white
// space. The length is adjusted, but the capacity is unchanged.
func Remove(sIn *[]byte) {
	s := *sIn
	n := 0
	for _, c := range s {
		if !asciiSpace[c] {
			s[n] = c
			n++
		}
	}
	*sIn = s[:n]
}

// Has returns true if there is any white space in s. Callers use it to
// avoid copying strings which are already clean.
func Has(s []byte) bool {
	for _, c := range s {
		if asciiSpace[c] {
			return true
		}
	}
	return false
}
