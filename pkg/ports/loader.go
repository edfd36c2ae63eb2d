package ports

import "context"

// ProgramLoader defines how the engine retrieves program source text.
// This allows the storage layer (filesystem, memory, Redis) to be decoupled.
type ProgramLoader interface {
	// Load returns the raw source of the named program.
	// It returns domain.ErrProgramNotFound if the program does not exist.
	Load(ctx context.Context, name string) ([]byte, error)
}

// ProgramStore is a ProgramLoader that can also be written to.
type ProgramStore interface {
	ProgramLoader

	// Save stores (or replaces) the source of the named program.
	Save(ctx context.Context, name string, source []byte) error

	// Delete removes the named program. Deleting a missing program is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored programs in sorted order.
	List(ctx context.Context) ([]string, error)
}
