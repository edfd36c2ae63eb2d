package compiler

import (
	"strings"

	"github.com/aretw0/nhohnhehr/pkg/domain"
)

// Parser is responsible for converting raw source text into a room Grid.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse splits data into lines and locates the single bordered room in it.
func (p *Parser) Parse(data []byte) (*domain.Grid, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return p.ParseLines(strings.Split(text, "\n"))
}

// ParseLines locates exactly one bordered square in lines and returns a Grid
// of its interior. It returns a *domain.ParseError when there is no valid
// room or when there is more than one.
func (p *Parser) ParseLines(lines []string) (*domain.Grid, error) {
	src := make([][]rune, len(lines))
	for i, l := range lines {
		src[i] = []rune(l)
	}

	var (
		found  bool
		corner domain.Point
		size   int
	)

	for _, c := range candidates(src) {
		n, ok := boxSize(src, c)
		if !ok {
			continue
		}
		if found {
			return nil, &domain.ParseError{Kind: domain.ErrMultipleRooms, First: corner, Second: c}
		}
		found = true
		corner = c
		size = n
	}

	if !found {
		return nil, &domain.ParseError{Kind: domain.ErrNoRoom}
	}

	// The interior starts one cell inside the border and is one cell
	// narrower than the distance between the corners.
	inner := size - 1
	rows := make([][]rune, inner)
	for y := 0; y < inner; y++ {
		line := src[corner.Y+1+y]
		rows[y] = line[corner.X+1 : corner.X+1+inner]
	}
	return domain.NewGrid(rows)
}

// candidates returns every '+' that has a '-' to its right and a '|' below it.
func candidates(src [][]rune) []domain.Point {
	var out []domain.Point
	for y, line := range src {
		for x, c := range line {
			if c != domain.BorderCorner {
				continue
			}
			right, ok1 := at(src, x+1, y)
			below, ok2 := at(src, x, y+1)
			if ok1 && ok2 && right == domain.BorderHoriz && below == domain.BorderVert {
				out = append(out, domain.Point{X: x, Y: y})
			}
		}
	}
	return out
}

// boxSize returns the corner-to-corner distance of the square whose top-left
// corner is c, or false if c does not start a well-formed square.
func boxSize(src [][]rune, c domain.Point) (int, bool) {
	line := src[c.Y]
	x2 := c.X + 1
	for x2 < len(line) && line[x2] != domain.BorderCorner {
		x2++
	}
	if x2 == len(line) {
		return 0, false
	}
	size := x2 - c.X

	// Bottom edge: '+', size-1 times '-', '+'.
	for i := 0; i <= size; i++ {
		want := domain.BorderHoriz
		if i == 0 || i == size {
			want = domain.BorderCorner
		}
		r, ok := at(src, c.X+i, c.Y+size)
		if !ok || r != want {
			return 0, false
		}
	}

	// Vertical edges.
	for y := c.Y + 1; y < c.Y+size; y++ {
		l, ok1 := at(src, c.X, y)
		r, ok2 := at(src, c.X+size, y)
		if !ok1 || !ok2 || l != domain.BorderVert || r != domain.BorderVert {
			return 0, false
		}
	}

	return size, true
}

func at(src [][]rune, x, y int) (rune, bool) {
	if y < 0 || y >= len(src) || x < 0 || x >= len(src[y]) {
		return 0, false
	}
	return src[y][x], true
}
