package domain

import (
	"fmt"
	"strings"
)

// Grid is a square block of program cells, addressed as (x, y) with y
// selecting the row. A Grid is never mutated after construction; Transform
// always returns a fresh copy.
type Grid struct {
	size  int
	cells [][]rune
}

// NewGrid builds a Grid from rows of cells. Every row must have exactly
// len(rows) cells. The rows are copied.
func NewGrid(rows [][]rune) (*Grid, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("grid must have at least one row")
	}
	cells := make([][]rune, size)
	for y, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("grid row %d has %d cells, want %d", y, len(row), size)
		}
		cells[y] = append([]rune(nil), row...)
	}
	return &Grid{size: size, cells: cells}, nil
}

// MustGrid is like NewGrid but builds the rows from strings and panics on
// error. It is intended for tests and static programs.
func MustGrid(rows ...string) *Grid {
	rr := make([][]rune, len(rows))
	for i, r := range rows {
		rr[i] = []rune(r)
	}
	g, err := NewGrid(rr)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// Lookup returns the cell at local coordinates (x, y).
func (g *Grid) Lookup(x, y int) (rune, error) {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return 0, fmt.Errorf("%w: (%d,%d) in room of size %d", ErrOutOfRange, x, y, g.size)
	}
	return g.cells[y][x], nil
}

// At is Lookup for a Point.
func (g *Grid) At(p Point) (rune, error) {
	return g.Lookup(p.X, p.Y)
}

// Find scans the grid row by row, left to right, and returns the position of
// the first cell equal to r.
func (g *Grid) Find(r rune) (Point, bool) {
	for y, row := range g.cells {
		for x, c := range row {
			if c == r {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// Transform returns a new grid obtained by applying kind to g.
func (g *Grid) Transform(kind Transform) *Grid {
	n := g.size
	out := make([][]rune, n)
	for y := range out {
		out[y] = make([]rune, n)
	}

	switch kind {
	case TransformIdentity:
		for y := range g.cells {
			copy(out[y], g.cells[y])
		}
	case TransformRotate180:
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				out[n-1-y][n-1-x] = g.cells[y][x]
			}
		}
	case TransformCW:
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				out[y][x] = g.cells[n-1-x][y]
			}
		}
	case TransformCCW:
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				out[n-1-x][y] = g.cells[y][x]
			}
		}
	default:
		panic(fmt.Sprintf("domain: invalid transform %d", int(kind)))
	}

	return &Grid{size: n, cells: out}
}

// Rows returns a copy of the grid contents, one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	for y, row := range g.cells {
		rows[y] = string(row)
	}
	return rows
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.size != o.size {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != o.cells[y][x] {
				return false
			}
		}
	}
	return true
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
