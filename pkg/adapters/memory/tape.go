package memory

import (
	"github.com/aretw0/nhohnhehr/pkg/domain"
)

// Tape implements ports.IOPort over in-memory unit slices.
// It is intended for tests and for embedding the engine.
type Tape struct {
	input  []domain.Unit
	output []domain.Unit
}

// NewTape creates a tape that will yield input in order.
func NewTape(input ...domain.Unit) *Tape {
	return &Tape{input: append([]domain.Unit(nil), input...)}
}

// NewTapeFromBits creates a tape from a string of '0' and '1' characters.
// Any other character is ignored.
func NewTapeFromBits(bits string) *Tape {
	t := &Tape{}
	for _, c := range bits {
		switch c {
		case '0':
			t.input = append(t.input, domain.Zero)
		case '1':
			t.input = append(t.input, domain.One)
		}
	}
	return t
}

// ReadUnit pops the next input unit.
func (t *Tape) ReadUnit() (domain.Unit, error) {
	if len(t.input) == 0 {
		return 0, domain.ErrEndOfInput
	}
	u := t.input[0]
	t.input = t.input[1:]
	return u, nil
}

// WriteUnit records an output unit.
func (t *Tape) WriteUnit(u domain.Unit) error {
	t.output = append(t.output, u)
	return nil
}

// Output returns a copy of the units written so far.
func (t *Tape) Output() []domain.Unit {
	return append([]domain.Unit(nil), t.output...)
}

// Bits renders the output as a string of '0' and '1'.
func (t *Tape) Bits() string {
	b := make([]byte, len(t.output))
	for i, u := range t.output {
		b[i] = '0' + byte(u)
	}
	return string(b)
}

// Remaining returns the number of unread input units.
func (t *Tape) Remaining() int {
	return len(t.input)
}
