package domain

import "fmt"

// EdgeMode is the policy applied when the IP crosses from one room into a
// neighbouring one.
type EdgeMode int

const (
	// EdgeWrap keeps the IP inside the current room, re-entering from the
	// opposite edge.
	EdgeWrap EdgeMode = iota
	// EdgeCopy grows an identical copy of the current room.
	EdgeCopy
	EdgeRotateCW
	EdgeRotateCCW
	EdgeRotate180
)

func (m EdgeMode) String() string {
	switch m {
	case EdgeWrap:
		return "wrap"
	case EdgeCopy:
		return "copy"
	case EdgeRotateCW:
		return "rotate_cw"
	case EdgeRotateCCW:
		return "rotate_ccw"
	case EdgeRotate180:
		return "rotate_180"
	}
	return fmt.Sprintf("edgemode(%d)", int(m))
}

// Transform returns the grid transform used to grow a neighbour room.
// EdgeWrap never grows rooms and reports false.
func (m EdgeMode) Transform() (Transform, bool) {
	switch m {
	case EdgeCopy:
		return TransformIdentity, true
	case EdgeRotateCW:
		return TransformCW, true
	case EdgeRotateCCW:
		return TransformCCW, true
	case EdgeRotate180:
		return TransformRotate180, true
	}
	return 0, false
}

// MarshalText encodes the mode by name.
func (m EdgeMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name produced by MarshalText.
func (m *EdgeMode) UnmarshalText(text []byte) error {
	for mode := EdgeWrap; mode <= EdgeRotate180; mode++ {
		if mode.String() == string(text) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown edge mode %q", text)
}
