package ports

import "github.com/aretw0/nhohnhehr/pkg/domain"

// IOPort is the engine's only window to the outside world.
type IOPort interface {
	// ReadUnit returns the next input unit (0 or 1).
	// It returns domain.ErrEndOfInput when no more data is available.
	ReadUnit() (domain.Unit, error)

	// WriteUnit emits one output unit. A returned error aborts the run.
	WriteUnit(u domain.Unit) error
}

// Flusher is implemented by ports that buffer output.
type Flusher interface {
	Flush() error
}
