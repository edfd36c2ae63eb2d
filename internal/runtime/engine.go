package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/nhohnhehr/pkg/domain"
	"github.com/aretw0/nhohnhehr/pkg/ports"
)

// Engine is the core Nhohnhehr state machine. It owns the lattice of rooms
// and the execution state of a single run and is not safe for concurrent use.
type Engine struct {
	lattice  *Lattice
	port     ports.IOPort
	state    domain.State
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	maxSteps uint64
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxSteps bounds the number of steps Run and Step will execute.
// Zero (the default) means no limit.
func WithMaxSteps(n uint64) EngineOption {
	return func(e *Engine) {
		e.maxSteps = n
	}
}

// NewEngine creates an engine for the program whose room (0,0) is origin.
// The IP starts on the first '$' found scanning row by row.
func NewEngine(origin *domain.Grid, port ports.IOPort, opts ...EngineOption) (*Engine, error) {
	start, ok := origin.Find(domain.OpStart)
	if !ok {
		return nil, domain.ErrMissingStartMarker
	}

	e := &Engine{
		lattice: NewLattice(origin),
		port:    port,
		state:   domain.NewState(start),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// State returns a snapshot of the execution state.
func (e *Engine) State() domain.State {
	return e.state
}

// Halted reports whether an '@' has been executed.
func (e *Engine) Halted() bool {
	return e.state.Halted
}

// Lattice exposes the rooms grown so far.
func (e *Engine) Lattice() *Lattice {
	return e.lattice
}

// Run steps the engine until it halts, the context is cancelled, the step
// budget is exhausted or an I/O error occurs. A program that never reaches
// '@' runs until the caller cancels ctx.
func (e *Engine) Run(ctx context.Context) error {
	for !e.state.Halted {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := e.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step executes the instruction under the IP and advances the IP.
// Stepping a halted engine does nothing.
func (e *Engine) Step(ctx context.Context) error {
	if e.state.Halted {
		return nil
	}
	if e.maxSteps > 0 && e.state.Steps >= e.maxSteps {
		return fmt.Errorf("%w: %d", domain.ErrStepLimit, e.maxSteps)
	}

	before := e.state
	ip := e.state.IP
	op, err := e.lattice.Get(ip)
	if err != nil {
		return fmt.Errorf("failed to read instruction at %s: %w", ip, err)
	}
	e.state.Steps++

	if err := e.execute(ctx, op); err != nil {
		return err
	}
	if err := e.advance(ctx); err != nil {
		return err
	}

	if e.hooks.OnStep != nil {
		e.hooks.OnStep(ctx, &domain.StepEvent{
			Step: e.state.Steps,
			IP:   ip,
			Room: domain.RoomOf(ip, e.lattice.RoomSize()),
			Op:   op,
			Diff: domain.Diff(&before, &e.state),
		})
	}

	if e.state.Halted {
		e.logger.Debug("Engine halted", "steps", e.state.Steps, "ip", ip.String(), "rooms", e.lattice.Len())
		if e.hooks.OnHalt != nil {
			e.hooks.OnHalt(ctx, &domain.HaltEvent{
				Steps: e.state.Steps,
				IP:    ip,
				Rooms: e.lattice.Len(),
			})
		}
	}
	return nil
}

func (e *Engine) execute(ctx context.Context, op rune) error {
	if mode, ok := domain.EdgeModeFor(op); ok {
		e.state.EdgeMode = mode
		return nil
	}

	switch op {
	case domain.OpTurnCCW:
		e.state.Direction = e.state.Direction.TurnCCW()
	case domain.OpTurnCW:
		e.state.Direction = e.state.Direction.TurnCW()
	case domain.OpSkip:
		return e.advance(ctx)
	case domain.OpRead:
		return e.read(ctx)
	case domain.OpWriteZero:
		return e.write(ctx, domain.Zero)
	case domain.OpWriteOne:
		return e.write(ctx, domain.One)
	case domain.OpHalt:
		e.state.Halted = true
	}
	return nil
}

func (e *Engine) read(ctx context.Context) error {
	u, err := e.port.ReadUnit()
	if errors.Is(err, domain.ErrEndOfInput) {
		// No more input: the direction is left unchanged.
		if e.hooks.OnInput != nil {
			e.hooks.OnInput(ctx, &domain.UnitEvent{Step: e.state.Steps, EOF: true})
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read input unit: %w", err)
	}

	if u != domain.Zero {
		e.state.Direction = e.state.Direction.TurnCW()
	} else {
		e.state.Direction = e.state.Direction.TurnCCW()
	}
	if e.hooks.OnInput != nil {
		e.hooks.OnInput(ctx, &domain.UnitEvent{Step: e.state.Steps, Unit: u})
	}
	return nil
}

func (e *Engine) write(ctx context.Context, u domain.Unit) error {
	if err := e.port.WriteUnit(u); err != nil {
		return fmt.Errorf("failed to write output unit: %w", err)
	}
	if e.hooks.OnOutput != nil {
		e.hooks.OnOutput(ctx, &domain.UnitEvent{Step: e.state.Steps, Unit: u})
	}
	return nil
}

// advance moves the IP one cell along the current direction. Leaving the
// current room either wraps around inside it (EdgeWrap) or grows the
// neighbouring room with the transform of the current edge mode.
func (e *Engine) advance(ctx context.Context) error {
	size := e.lattice.RoomSize()
	dir := e.state.Direction.Vector()
	cur := domain.RoomOf(e.state.IP, size)
	next := e.state.IP.Add(dir)
	nextRoom := domain.RoomOf(next, size)

	if nextRoom != cur {
		kind, grows := e.state.EdgeMode.Transform()
		if !grows {
			next = next.Sub(dir.Scale(size))
		} else {
			created, err := e.lattice.EnsureRoom(nextRoom, cur, kind)
			if err != nil {
				return fmt.Errorf("failed to grow room %s: %w", nextRoom, err)
			}
			if created {
				e.logger.Debug("Room created", "room", nextRoom.String(), "source", cur.String(), "transform", kind.String())
				if e.hooks.OnRoomCreated != nil {
					e.hooks.OnRoomCreated(ctx, &domain.RoomEvent{
						Room:      nextRoom,
						Source:    cur,
						Transform: kind,
						Total:     e.lattice.Len(),
					})
				}
			}
		}
	}

	e.state.IP = next
	return nil
}
