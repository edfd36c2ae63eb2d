package domain

import "fmt"

// Transform identifies an operator that maps a Grid onto a new Grid of the
// same size.
type Transform int

const (
	TransformIdentity Transform = iota
	TransformCW
	TransformCCW
	TransformRotate180
)

func (t Transform) String() string {
	switch t {
	case TransformIdentity:
		return "identity"
	case TransformCW:
		return "cw"
	case TransformCCW:
		return "ccw"
	case TransformRotate180:
		return "rotate180"
	}
	return fmt.Sprintf("transform(%d)", int(t))
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	switch t {
	case TransformCW:
		return TransformCCW
	case TransformCCW:
		return TransformCW
	}
	return t
}
