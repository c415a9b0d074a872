// brokenio is a wrapper around an io.Reader. It makes reads fail so we
// can check that read errors come back to the caller and are not
// mistaken for the end of an alignment.
// Typical use: wrap a strings.Reader holding a fasta file, say the read
// should break after n bytes, hand it to the reader under test.

package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrBroken is what a broken read returns.
var ErrBroken = errors.New("brokenio: artificial read failure")

// A Reader passes data through from the wrapped reader until it has
// delivered failAfter bytes. After that, or at random with probability
// probFail on any call, Read returns ErrBroken.
type Reader struct {
	rdr       io.Reader // Wrapped reader
	failAfter int       // fail once this many bytes are through, < 0 never
	probFail  float32
	rnd       *rand.Rand
	nCalled   int
	nByte     int
}

// NewReader returns a reader which breaks after failAfter bytes. Use a
// negative failAfter to only get random failures.
func NewReader(rIn io.Reader, failAfter int) *Reader {
	return &Reader{rdr: rIn, failAfter: failAfter, rnd: rand.New(rand.NewSource(1))}
}

// SetProbFail set the probability of a read failing.
// It must be between zero and 1. We do not check.
func (r *Reader) SetProbFail(prob float32) { r.probFail = prob }

// NCalled and NByte say how often we were called and how much went
// through.
func (r *Reader) NCalled() int { return r.nCalled }
func (r *Reader) NByte() int   { return r.nByte }

// Read delivers at most what is left before the break point.
func (r *Reader) Read(p []byte) (n int, err error) {
	r.nCalled++
	if len(p) == 0 {
		return 0, nil
	}
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, ErrBroken
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdr.Read(p)
	r.nByte += n
	return n, err
}
