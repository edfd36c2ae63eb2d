package domain

import "fmt"

// Unit is one binary value exchanged with the I/O boundary.
type Unit uint8

const (
	Zero Unit = 0
	One  Unit = 1
)

// Valid reports whether u is 0 or 1.
func (u Unit) Valid() bool {
	return u <= One
}

func (u Unit) String() string {
	return fmt.Sprintf("%d", uint8(u))
}
