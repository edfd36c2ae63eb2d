package domain

// StateDiff represents the changes an instruction made to a State.
// It is designed to be serialized to JSON for step traces.
type StateDiff struct {
	// IP is always present: every step moves the instruction pointer.
	IP Point `json:"ip"`

	Direction *Direction `json:"direction,omitempty"`
	EdgeMode  *EdgeMode  `json:"edge_mode,omitempty"`
	Halted    *bool      `json:"halted,omitempty"`
}

// Diff calculates the difference between oldState and newState.
// If oldState is nil, every field of newState is reported.
func Diff(oldState, newState *State) *StateDiff {
	if newState == nil {
		return nil
	}

	diff := &StateDiff{IP: newState.IP}

	if oldState == nil || oldState.Direction != newState.Direction {
		d := newState.Direction
		diff.Direction = &d
	}
	if oldState == nil || oldState.EdgeMode != newState.EdgeMode {
		m := newState.EdgeMode
		diff.EdgeMode = &m
	}
	if oldState == nil || oldState.Halted != newState.Halted {
		h := newState.Halted
		diff.Halted = &h
	}

	return diff
}

// Empty reports whether the diff carries nothing but the new IP.
func (d *StateDiff) Empty() bool {
	return d == nil || (d.Direction == nil && d.EdgeMode == nil && d.Halted == nil)
}
