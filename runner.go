package nhohnhehr

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aretw0/nhohnhehr/pkg/adapters/stream"
	"github.com/aretw0/nhohnhehr/pkg/domain"
)

// Result is the outcome of an in-memory run.
type Result struct {
	Output []byte       `json:"output"`
	State  domain.State `json:"state"`
	Rooms  int          `json:"rooms"`
	Halted bool         `json:"halted"`
}

// Execute runs source against an in-memory input using the given framing and
// collects everything written. When the run stops early (step limit,
// cancellation, I/O failure) the partial Result is returned together with the
// error. Load errors return a nil Result.
func Execute(ctx context.Context, source []byte, mode stream.Mode, input []byte, opts ...Option) (*Result, error) {
	var out bytes.Buffer
	port, err := stream.NewPort(mode, bytes.NewReader(input), &out)
	if err != nil {
		return nil, err
	}

	eng, err := New(source, port, opts...)
	if err != nil {
		return nil, err
	}

	runErr := eng.Run(ctx)
	if err := port.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to flush output: %w", err)
	}

	state := eng.State()
	res := &Result{
		Output: out.Bytes(),
		State:  state,
		Rooms:  eng.Rooms(),
		Halted: state.Halted,
	}
	return res, runErr
}
