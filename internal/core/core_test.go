package core

import (
	"slices"
	"testing"
)

func TestGridRowsShareBacking(t *testing.T) {
	g := NewGrid(4, 3)
	g.Row(1)[2] = 1
	if g.Cells()[g.Index(2, 1)] != 1 {
		t.Fatal("Row must alias the backing slice")
	}
	if !g.Alive(2, 1) {
		t.Fatal("Alive must reflect the written cell")
	}
}

func TestGridWrap(t *testing.T) {
	g := NewGrid(5, 4)
	cases := []struct{ x, y, wx, wy int }{
		{-1, 0, 4, 0},
		{5, 2, 0, 2},
		{3, -1, 3, 3},
		{3, 4, 3, 0},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	NewRNG(42).FillBinary(a)
	NewRNG(42).FillBinary(b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed must produce the same binary sequence")
	}
	for i, v := range a {
		if v > 1 {
			t.Fatalf("cell %d has non-binary value %d", i, v)
		}
	}

	NewRNG(43).FillBinary(b)
	if slices.Equal(a, b) {
		t.Fatal("different seeds should produce different sequences")
	}
}
