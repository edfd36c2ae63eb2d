/*
Package domain contains the core domain models of the Nhohnhehr engine.

It defines the program space (Grid, Transform), the geometry used to move the
instruction pointer through an unbounded lattice of rooms (Point, Direction,
Decompose) and the execution State. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Grid: an immutable square block of program cells (a "room").
  - Transform: the operators applied to a Grid when a new room is grown.
  - EdgeMode: the policy applied when the IP leaves a room.
  - State: the runtime snapshot of a run (IP, Direction, EdgeMode, Halted).
  - Unit: one binary value exchanged with the I/O boundary.
*/
package domain
