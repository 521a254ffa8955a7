// Package rule implements Wolfram codes for elementary cellular automata.
package rule

import (
	"fmt"

	"sundryautomata/internal/core"
)

// Rule is an 8-bit Wolfram code. Bit n holds the successor state for the
// 3-cell neighborhood whose cells, read left to right, form the binary
// number n.
type Rule uint8

// Parse validates an integer rule number against the Wolfram range.
func Parse(n int) (Rule, error) {
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("%w: rule %d outside [0,255]", core.ErrConfig, n)
	}
	return Rule(n), nil
}

// Next returns the successor state for a cell given its neighborhood. The
// left neighbor is the most significant bit of the lookup index.
func (r Rule) Next(left, center, right bool) bool {
	var idx uint8
	if left {
		idx |= 4
	}
	if center {
		idx |= 2
	}
	if right {
		idx |= 1
	}
	return (uint8(r)>>idx)&1 == 1
}
