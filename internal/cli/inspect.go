package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/nhohnhehr"
	"github.com/aretw0/nhohnhehr/internal/presentation/graph"
	"github.com/aretw0/nhohnhehr/internal/presentation/tui"
	"github.com/aretw0/nhohnhehr/internal/validator"
	"github.com/aretw0/nhohnhehr/pkg/adapters/memory"
	"github.com/aretw0/nhohnhehr/pkg/domain"
)

// DefaultInspectSteps bounds the trial run of inspect.
const DefaultInspectSteps = 10_000

// ValidationResult describes a program that parsed into a runnable room.
type ValidationResult struct {
	Size     int
	Start    domain.Point
	Warnings []string
}

// Validate loads the program and checks it parses into a runnable room.
func Validate(ctx context.Context, opts RunOptions) (*ValidationResult, error) {
	store, closer, err := createStore(opts.Source, "", opts.Redis)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	source, err := store.Load(ctx, opts.Program)
	if err != nil {
		return nil, err
	}

	grid, start, err := checkSource(source)
	if err != nil {
		return nil, err
	}
	return &ValidationResult{
		Size:     grid.Size(),
		Start:    start,
		Warnings: validator.Lint(grid),
	}, nil
}

// checkSource parses source and locates its start marker.
func checkSource(source []byte) (*domain.Grid, domain.Point, error) {
	grid, err := nhohnhehr.Parse(source)
	if err != nil {
		return nil, domain.Point{}, err
	}
	start, ok := grid.Find(domain.OpStart)
	if !ok {
		return nil, domain.Point{}, domain.ErrMissingStartMarker
	}
	return grid, start, nil
}

// InspectOptions configures the inspect command.
type InspectOptions struct {
	RunOptions
	// Trace runs the program on Input for at most MaxSteps steps and adds the run to the report.
	Trace bool
	Input string
	// Raw disables terminal rendering.
	Raw bool
}

// Inspect writes a Markdown report of the program to w, rendered with glamour
// when w is a terminal.
func Inspect(ctx context.Context, opts InspectOptions, w io.Writer) error {
	store, closer, err := createStore(opts.Source, "", opts.Redis)
	if err != nil {
		return err
	}
	defer closer.Close()

	source, err := store.Load(ctx, opts.Program)
	if err != nil {
		return err
	}
	grid, err := nhohnhehr.Parse(source)
	if err != nil {
		return err
	}

	var trace *graph.Trace
	if opts.Trace {
		trace, err = traceRun(ctx, grid, opts)
		if err != nil {
			return err
		}
	}

	report := graph.Report(opts.Program, grid, trace)

	render := tui.NewRenderer(nil)
	if f, ok := w.(*os.File); ok && !opts.Raw {
		render = tui.NewRenderer(f)
	}
	out, err := render(report)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func traceRun(ctx context.Context, grid *domain.Grid, opts InspectOptions) (*graph.Trace, error) {
	maxSteps := opts.MaxSteps
	if maxSteps == 0 {
		maxSteps = DefaultInspectSteps
	}

	trace := &graph.Trace{}
	hooks := domain.LifecycleHooks{
		OnRoomCreated: func(_ context.Context, e *domain.RoomEvent) {
			trace.Rooms = append(trace.Rooms, *e)
		},
		OnOutput: func(_ context.Context, e *domain.UnitEvent) {
			trace.Output += e.Unit.String()
		},
	}

	eng, err := nhohnhehr.NewFromGrid(grid, memory.NewTapeFromBits(opts.Input),
		nhohnhehr.WithMaxSteps(maxSteps),
		nhohnhehr.WithLifecycleHooks(hooks),
	)
	if err != nil {
		return nil, err
	}

	trace.Err = eng.Run(ctx)
	trace.State = eng.State()
	return trace, nil
}
