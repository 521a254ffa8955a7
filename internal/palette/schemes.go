package palette

import (
	"fmt"

	"sundryautomata/internal/core"
)

// schemes is a curated list of (living, dead) color pairs that are known to
// work well for automaton posters.
var schemes = [][2]string{
	{"#ffe183", "#ffa24b"},
	{"#bddba6", "#83b35e"},
	{"#000000", "#b84c8c"},
	{"#000000", "#8cb84c"},
	{"#ffb1b0", "#c24848"},
	{"#fc5e5d", "#8e0033"},
	{"#4b669b", "#c0d6ff"},
	{"#cbe638", "#98ad20"},
	{"#ffe5db", "#f2936d"},
	{"#fff9db", "#f2dc6e"},
	{"#1baaef", "#0d6ca5"},
	{"#e9c3fe", "#6f5b7e"},
	{"#dddddd", "#333333"},
	{"#fc766a", "#5b84b1"},
	{"#00203f", "#adefd1"},
	{"#97bc62", "#2c5f2d"},
	{"#fee715", "#101820"},
	{"#89abe3", "#fcf6f5"},
	{"#d4b996", "#a07855"},
	{"#990011", "#fcf6f5"},
	{"#edc2d8", "#8abad3"},
	{"#ccf381", "#4831d4"},
	{"#2f3c7e", "#fbeaeb"},
	{"#ec4d37", "#1d1b1b"},
}

// SchemeCount returns the number of curated color schemes.
func SchemeCount() int { return len(schemes) }

// Scheme returns the curated palette at index i.
func Scheme(i int) (Palette, error) {
	if i < 0 || i >= len(schemes) {
		return Palette{}, fmt.Errorf("%w: scheme index %d outside [0,%d]", core.ErrConfig, i, len(schemes)-1)
	}
	living, err := ParseHex(schemes[i][0])
	if err != nil {
		return Palette{}, err
	}
	dead, err := ParseHex(schemes[i][1])
	if err != nil {
		return Palette{}, err
	}
	return Palette{Living: living, Dead: dead}, nil
}

// RandomScheme picks one of the curated palettes.
func RandomScheme(rng *core.RNG) Palette {
	p, err := Scheme(rng.IntN(len(schemes)))
	if err != nil {
		panic(err) // curated entries always parse
	}
	return p
}
