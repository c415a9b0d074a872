package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/motifer/brokenio"
)

var longstring = "0123456789012345678901234567890123456789"

// TestBreakPoint checks we get exactly failAfter bytes and then an error
func TestBreakPoint(t *testing.T) {
	for _, n := range []int{0, 1, 7, 39} {
		rdr := brokenio.NewReader(strings.NewReader(longstring), n)
		got, err := io.ReadAll(rdr)
		if !errors.Is(err, brokenio.ErrBroken) {
			t.Fatalf("break at %d wanted ErrBroken, got %v", n, err)
		}
		if string(got) != longstring[:n] {
			t.Fatalf("break at %d got \"%s\"", n, got)
		}
	}
}

// TestNeverBreaks with a negative break point and no failure probability
func TestNeverBreaks(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring), -1)
	got, err := io.ReadAll(rdr)
	if err != nil {
		t.Fatal("unbroken reader gave", err)
	}
	if string(got) != longstring || rdr.NByte() != len(longstring) {
		t.Fatal("unbroken reader changed data")
	}
}

func TestAlwaysFails(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring), -1)
	rdr.SetProbFail(1)
	b := make([]byte, 10)
	if _, err := rdr.Read(b); !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("probability 1 did not fail")
	}
}
