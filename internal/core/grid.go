package core

import "fmt"

// MaxGridSize is the largest supported width or height.
const MaxGridSize = 64

// Grid is the game board: a rectangular grid of palette color codes stored
// in row-major order (index = y*W + x). Dimensions are fixed for the life
// of the grid.
type Grid struct {
	W     int
	H     int
	Cells []Color
}

// NewGrid creates a grid of the given dimensions with every cell set to
// fill. Panics on dimensions outside [1, MaxGridSize] or an invalid fill
// color: sizes come from static level definitions, so a bad value is a
// programming error.
func NewGrid(w, h int, fill Color) *Grid {
	if w < 1 || w > MaxGridSize || h < 1 || h > MaxGridSize {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", w, h))
	}
	if !fill.Valid() {
		panic(fmt.Sprintf("core: invalid fill color %d", fill))
	}
	g := &Grid{W: w, H: h, Cells: make([]Color, w*h)}
	if fill != ColorBlack {
		for i := range g.Cells {
			g.Cells[i] = fill
		}
	}
	return g
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the color at the given coordinate.
// Returns ColorBlack if out of bounds; callers that care must check
// InBounds first.
func (g *Grid) Get(c Coord) Color {
	if !g.InBounds(c) {
		return ColorBlack
	}
	return g.Cells[g.index(c)]
}

// Set writes a color at the given coordinate. Out-of-bounds writes are
// silently ignored; writing an invalid color code panics.
func (g *Grid) Set(c Coord, color Color) {
	if !color.Valid() {
		panic(fmt.Sprintf("core: invalid color %d at %v", color, c))
	}
	if g.InBounds(c) {
		g.Cells[g.index(c)] = color
	}
}

// Neighbors4 returns the in-bounds orthogonal neighbors of c, in the fixed
// Directions order. Edge and corner cells get fewer than four; there is no
// wrap-around.
func (g *Grid) Neighbors4(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Directions {
		n := c.Step(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Color, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding the given color.
func (g *Grid) Count(color Color) int {
	n := 0
	for _, c := range g.Cells {
		if c == color {
			n++
		}
	}
	return n
}

// Uniform reports whether every cell holds the same color.
func (g *Grid) Uniform() bool {
	first := g.Cells[0]
	for _, c := range g.Cells[1:] {
		if c != first {
			return false
		}
	}
	return true
}

// AllCoords returns every coordinate in the grid, ordered by row then
// column.
func (g *Grid) AllCoords() []Coord {
	coords := make([]Coord, 0, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}
