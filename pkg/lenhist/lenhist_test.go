package lenhist_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/motifer/pkg/lenhist"
)

func TestCompute(t *testing.T) {
	h, err := Compute([]int{1, 3, 4, 6, 7, 10}, 3)
	if err != nil {
		t.Fatal(err)
	}
	// intervals [0,3] (3,6] (6,9] (9,12]
	if diff := cmp.Diff([]int{0, 3, 6, 9, 12}, h.Edges); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]int{2, 2, 1, 1}, h.Counts); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"0-3", "3-6", "6-9", "9-12"}, h.Labels()); diff != "" {
		t.Fatal(diff)
	}
}

func TestComputeEdges(t *testing.T) {
	h, err := Compute([]int{9}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(h.Counts) != 3 || h.Counts[2] != 1 {
		t.Fatal("length on an edge went to the wrong interval", h.Counts)
	}
	if h, err = Compute(nil, 3); err != nil || len(h.Counts) != 0 {
		t.Fatal("no lengths", h, err)
	}
	if _, err = Compute([]int{1}, 0); err == nil {
		t.Fatal("bin size 0 accepted")
	}
}

func TestWriteText(t *testing.T) {
	h, _ := Compute([]int{2, 5, 5}, 3)
	var sb strings.Builder
	if err := h.WriteText(&sb); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "0-3\t1\n3-6\t2\n" {
		t.Fatalf("got %q", sb.String())
	}
}

func TestWritePNG(t *testing.T) {
	lengths := make([]int, 0, 300)
	for i := 0; i < 300; i++ {
		lengths = append(lengths, 5+(i*7)%90)
	}
	h, err := Compute(lengths, 3)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := h.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal("not a png", err)
	}
	if img.Bounds().Dx() < len(h.Counts)*24 {
		t.Fatal("image too narrow", img.Bounds())
	}
}
