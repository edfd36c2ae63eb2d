package domain

import "fmt"

// Point is an integer coordinate pair. It is used both for absolute cell
// coordinates and for room coordinates in the lattice.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p * m.
func (p Point) Scale(m int) Point {
	return Point{X: p.X * m, Y: p.Y * m}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a unit vector along one of the four cardinal axes.
// The Y axis grows downwards, matching the row order of the source text.
type Direction Point

var (
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
)

// Vector returns the direction as a Point so it can be added to a position.
func (d Direction) Vector() Point {
	return Point(d)
}

// TurnCW rotates the direction using the clockwise table:
// right -> down -> left -> up -> right.
func (d Direction) TurnCW() Direction {
	return Direction{X: -d.Y, Y: d.X}
}

// TurnCCW rotates the direction using the counter-clockwise table:
// right -> up -> left -> down -> right.
func (d Direction) TurnCCW() Direction {
	return Direction{X: d.Y, Y: -d.X}
}

// Valid reports whether d is one of the four unit vectors.
func (d Direction) Valid() bool {
	return d == Left || d == Right || d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction%s", Point(d))
}

// Decompose splits an absolute cell coordinate into its room coordinate and
// the local coordinate inside that room, using floored division so that
// negative coordinates resolve consistently (x=-1, size=5 is room -1, local 4).
// It panics if size is not positive.
func Decompose(p Point, size int) (room, local Point) {
	if size <= 0 {
		panic("domain: room size must be positive")
	}
	room = Point{X: floorDiv(p.X, size), Y: floorDiv(p.Y, size)}
	local = Point{X: p.X - room.X*size, Y: p.Y - room.Y*size}
	return room, local
}

// RoomOf returns only the room coordinate of p.
func RoomOf(p Point, size int) Point {
	room, _ := Decompose(p, size)
	return room
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
