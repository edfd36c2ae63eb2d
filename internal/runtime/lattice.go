package runtime

import (
	"fmt"

	"github.com/aretw0/nhohnhehr/pkg/domain"
)

// Lattice is the sparse, unbounded collection of rooms addressed by integer
// room coordinates. It only ever grows; rooms are never replaced.
type Lattice struct {
	rooms    map[domain.Point]*domain.Grid
	roomSize int
}

// NewLattice creates a lattice whose room (0,0) is origin.
func NewLattice(origin *domain.Grid) *Lattice {
	return &Lattice{
		rooms:    map[domain.Point]*domain.Grid{{}: origin},
		roomSize: origin.Size(),
	}
}

// RoomSize returns the side length shared by every room.
func (l *Lattice) RoomSize() int {
	return l.roomSize
}

// Len returns the number of rooms grown so far, including the origin.
func (l *Lattice) Len() int {
	return len(l.rooms)
}

// Room returns the grid at a room coordinate.
func (l *Lattice) Room(room domain.Point) (*domain.Grid, bool) {
	g, ok := l.rooms[room]
	return g, ok
}

// Get returns the cell at an absolute coordinate. The containing room must
// already exist.
func (l *Lattice) Get(p domain.Point) (rune, error) {
	room, local := domain.Decompose(p, l.roomSize)
	g, ok := l.rooms[room]
	if !ok {
		return 0, fmt.Errorf("%w: %s (cell %s)", domain.ErrRoomNotFound, room, p)
	}
	return g.At(local)
}

// EnsureRoom grows room by applying kind to the grid at source. It is a no-op
// if room already exists. The returned flag reports whether a room was created.
func (l *Lattice) EnsureRoom(room, source domain.Point, kind domain.Transform) (bool, error) {
	if _, ok := l.rooms[room]; ok {
		return false, nil
	}
	src, ok := l.rooms[source]
	if !ok {
		return false, fmt.Errorf("%w: source %s", domain.ErrRoomNotFound, source)
	}
	l.rooms[room] = src.Transform(kind)
	return true, nil
}
