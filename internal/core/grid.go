package core

// Grid stores successive automaton generations in row-major order. Row 0 is
// the initial condition; each cell is 0 (dead) or 1 (alive).
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a grid of height generations with width cells each.
// Dimensions must already be validated by the caller.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Row returns the cells of generation y as a mutable slice.
func (g *Grid) Row(y int) []uint8 {
	return g.data[y*g.W : (y+1)*g.W]
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Alive reports whether the cell at (x, y) is alive.
func (g *Grid) Alive(x, y int) bool { return g.data[y*g.W+x] != 0 }
