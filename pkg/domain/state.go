package domain

// State represents the current snapshot of an execution.
type State struct {
	// IP is the absolute cell coordinate about to be executed.
	IP Point `json:"ip"`

	// Direction is the unit vector the IP moves along.
	Direction Direction `json:"direction"`

	// EdgeMode is applied when the IP leaves its current room.
	EdgeMode EdgeMode `json:"edge_mode"`

	// Halted is set once an '@' has been executed.
	Halted bool `json:"halted"`

	// Steps counts executed instructions.
	Steps uint64 `json:"steps"`
}

// NewState creates the initial state for a program whose start marker is at ip.
func NewState(ip Point) State {
	return State{
		IP:        ip,
		Direction: Right,
		EdgeMode:  EdgeWrap,
	}
}
