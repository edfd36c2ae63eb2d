package nhohnhehr

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/nhohnhehr/internal/compiler"
	"github.com/aretw0/nhohnhehr/internal/runtime"
	"github.com/aretw0/nhohnhehr/pkg/domain"
	"github.com/aretw0/nhohnhehr/pkg/ports"
)

// Engine is the high-level entry point for the library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime  *runtime.Engine
	grid     *domain.Grid
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	maxSteps uint64
	Name     string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxSteps bounds the number of executed instructions. Zero means no limit.
func WithMaxSteps(n uint64) Option {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// WithName labels the engine (used in logs).
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// Parse locates the single bordered room in source and returns its grid.
func Parse(source []byte) (*domain.Grid, error) {
	return compiler.NewParser().Parse(source)
}

// New parses source and prepares an engine that talks to port.
// Parse errors and a missing start marker abort before anything runs.
func New(source []byte, port ports.IOPort, opts ...Option) (*Engine, error) {
	grid, err := Parse(source)
	if err != nil {
		return nil, err
	}
	return NewFromGrid(grid, port, opts...)
}

// NewFromGrid prepares an engine for an already parsed room.
func NewFromGrid(grid *domain.Grid, port ports.IOPort, opts ...Option) (*Engine, error) {
	eng := &Engine{grid: grid}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime).
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("program", eng.Name)
	}

	rt, err := runtime.NewEngine(grid, port,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithMaxSteps(eng.maxSteps),
	)
	if err != nil {
		return nil, err
	}
	eng.runtime = rt
	return eng, nil
}

// Load fetches the named program from loader and prepares an engine for it.
func Load(ctx context.Context, loader ports.ProgramLoader, name string, port ports.IOPort, opts ...Option) (*Engine, error) {
	source, err := loader.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load program %s: %w", name, err)
	}
	opts = append([]Option{WithName(name)}, opts...)
	return New(source, port, opts...)
}

// Run executes until the program halts or ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Debug("Run started", "room_size", e.grid.Size(), "start", e.runtime.State().IP.String())
	err := e.runtime.Run(ctx)
	state := e.runtime.State()
	if err != nil {
		e.logger.Debug("Run stopped", "steps", state.Steps, "err", err)
		return err
	}
	e.logger.Debug("Run finished", "steps", state.Steps, "rooms", e.runtime.Lattice().Len())
	return nil
}

// Step executes a single instruction.
func (e *Engine) Step(ctx context.Context) error {
	return e.runtime.Step(ctx)
}

// State returns a snapshot of the execution state.
func (e *Engine) State() domain.State {
	return e.runtime.State()
}

// Rooms returns the number of rooms grown so far.
func (e *Engine) Rooms() int {
	return e.runtime.Lattice().Len()
}

// Room returns the grid at a room coordinate, if it has been grown.
func (e *Engine) Room(p domain.Point) (*domain.Grid, bool) {
	return e.runtime.Lattice().Room(p)
}

// Grid returns the parsed program room (room 0,0).
func (e *Engine) Grid() *domain.Grid {
	return e.grid
}
