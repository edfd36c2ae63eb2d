package domain

import "context"

// StepEvent is emitted after an instruction has been executed and the IP
// advanced. IP and Room locate the executed cell.
type StepEvent struct {
	Step uint64
	IP   Point
	Room Point
	Op   rune
	Diff *StateDiff
}

// RoomEvent is emitted when the lattice grows a new room.
type RoomEvent struct {
	Room      Point
	Source    Point
	Transform Transform
	Total     int
}

// UnitEvent is emitted for every unit read from or written to the IOPort.
// EOF is set when a read found no more input.
type UnitEvent struct {
	Step uint64
	Unit Unit
	EOF  bool
}

// HaltEvent is emitted once the engine halts.
type HaltEvent struct {
	Steps uint64
	IP    Point
	Rooms int
}

// LifecycleHooks defines callbacks for engine observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnStep        func(context.Context, *StepEvent)
	OnRoomCreated func(context.Context, *RoomEvent)
	OnInput       func(context.Context, *UnitEvent)
	OnOutput      func(context.Context, *UnitEvent)
	OnHalt        func(context.Context, *HaltEvent)
}
