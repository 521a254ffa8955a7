// Package lattice simulates one-dimensional elementary cellular automata on
// a toroidal row: the leftmost and rightmost cells are neighbors.
package lattice

import (
	"fmt"
	"slices"

	"sundryautomata/internal/core"
	"sundryautomata/internal/rule"
)

// Simulate produces height generations of width cells each. Row 0 is seeded
// pseudorandomly from seed (same seed and width yield the same initial row);
// every later row follows deterministically from its predecessor via r.
func Simulate(r rule.Rule, seed int64, width, height int) (*core.Grid, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d must be positive", core.ErrConfig, width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d must be positive", core.ErrConfig, height)
	}

	g := core.NewGrid(width, height)
	core.NewRNG(seed).FillBinary(g.Row(0))

	for y := 1; y < height; y++ {
		prev := g.Row(y - 1)
		cur := g.Row(y)
		for x := 0; x < width; x++ {
			left := prev[(x-1+width)%width] == 1
			center := prev[x] == 1
			right := prev[(x+1)%width] == 1
			if r.Next(left, center, right) {
				cur[x] = 1
			}
		}
	}
	return g, nil
}

// Dull reports whether the automaton settled into a stable or sideways
// drifting pattern: some generation equals its predecessor, or its
// predecessor shifted by one cell. Callers picking rules at random use this
// to reroll visually boring results.
func Dull(g *core.Grid) bool {
	for y := 1; y < g.H; y++ {
		prev := g.Row(y - 1)
		cur := g.Row(y)
		if slices.Equal(cur, prev) {
			return true
		}
		if g.W > 1 && (slices.Equal(cur[1:], prev[:g.W-1]) || slices.Equal(cur[:g.W-1], prev[1:])) {
			return true
		}
	}
	return false
}
