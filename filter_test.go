package lowpass

import (
	"bytes"
	"testing"
)

func TestChain_AppliesFiltersInOrder(t *testing.T) {
	src := rowImage(0, 0, 255, 0, 0)

	got := Repeat(Lowpass{}, 2).Apply(src)
	want := HorizontalLowpass(HorizontalLowpass(src))
	if !bytes.Equal(got.Pix, want.Pix) {
		t.Fatalf("got %v, want %v", redRow(got), redRow(want))
	}
	if got := redRow(src); !bytes.Equal(got, []uint8{0, 0, 255, 0, 0}) {
		t.Errorf("source modified: %v", got)
	}
}

func TestChain_EmptyReturnsCopy(t *testing.T) {
	src := patternImage(4, 3)
	dst := NewChain().Apply(src)
	if !bytes.Equal(dst.Pix, src.Pix) {
		t.Fatal("empty chain should return an identical image")
	}
	dst.Pix[0]++
	if dst.Pix[0] == src.Pix[0] {
		t.Error("empty chain returned the source buffer")
	}
}

func TestRepeat(t *testing.T) {
	if n := len(Repeat(Lowpass{}, 3).Filters); n != 3 {
		t.Errorf("got %d filters, want 3", n)
	}
	if n := len(Repeat(Lowpass{}, 0).Filters); n != 0 {
		t.Errorf("got %d filters, want 0", n)
	}
}
