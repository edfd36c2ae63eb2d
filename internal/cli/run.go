package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/nhohnhehr"
	"github.com/aretw0/nhohnhehr/internal/config"
	"github.com/aretw0/nhohnhehr/pkg/adapters/stream"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	// Program is a file path, or a program name when Source is redis.
	Program  string
	Mode     string
	Source   string
	MaxSteps uint64
	Debug    bool
	LogFile  string
	Redis    config.RedisConfig

	Stdin  io.Reader
	Stdout io.Writer
}

// RunProgram loads the program and runs it against Stdin/Stdout until it halts.
// Interruptions end the run without an error.
func RunProgram(ctx context.Context, opts RunOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	mode, err := stream.ParseMode(opts.Mode)
	if err != nil {
		return err
	}

	logger, logCloser, err := createLogger(opts.Debug, opts.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	store, storeCloser, err := createStore(opts.Source, "", opts.Redis)
	if err != nil {
		return err
	}
	defer storeCloser.Close()

	port, err := stream.NewPort(mode, opts.Stdin, opts.Stdout)
	if err != nil {
		return err
	}

	eng, err := nhohnhehr.Load(ctx, store, opts.Program, port, engineOptions(logger, opts.Debug, opts.MaxSteps)...)
	if err != nil {
		return err
	}

	runErr := eng.Run(ctx)
	if err := port.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to flush output: %w", err)
	}
	if mode == stream.ModeBits {
		fmt.Fprintln(opts.Stdout)
	}

	state := eng.State()
	logger.Info("Run ended", "program", opts.Program, "steps", state.Steps, "rooms", eng.Rooms(), "halted", state.Halted)
	return handleExecutionError(runErr)
}
