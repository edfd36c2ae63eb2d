package domain

import (
	"errors"
	"fmt"
)

// ErrNoRoom is returned when the source text contains no valid bordered square.
var ErrNoRoom = errors.New("cannot find a valid room")

// ErrMultipleRooms is returned when the source text contains more than one valid bordered square.
var ErrMultipleRooms = errors.New("multiple valid rooms")

// ErrMissingStartMarker is returned when the parsed room has no '$' cell.
var ErrMissingStartMarker = errors.New("no $ in room")

// ErrOutOfRange is returned when a grid lookup uses local coordinates outside the room.
// It indicates a defect in room/local decomposition.
var ErrOutOfRange = errors.New("value out of range")

// ErrRoomNotFound is returned when a lattice lookup addresses a room that was never grown.
var ErrRoomNotFound = errors.New("room not found")

// ErrEndOfInput is returned by an IOPort when no more input units are available.
var ErrEndOfInput = errors.New("end of input")

// ErrProgramNotFound is returned when a program cannot be found in a loader.
var ErrProgramNotFound = errors.New("program not found")

// ErrStepLimit is returned when a run exhausts its configured step budget.
var ErrStepLimit = errors.New("step limit reached")

// ParseError describes why a source text did not yield exactly one room.
// First and Second are the top-left border corners of the rooms involved
// (only First and Second are meaningful for ErrMultipleRooms).
type ParseError struct {
	Kind   error
	First  Point
	Second Point
}

func (e *ParseError) Error() string {
	if errors.Is(e.Kind, ErrMultipleRooms) {
		return fmt.Sprintf("%v in one file, first room found at: %s; second one at: %s", e.Kind, e.First, e.Second)
	}
	return fmt.Sprintf("%v in this file", e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
