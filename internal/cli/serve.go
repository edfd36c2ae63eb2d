package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/nhohnhehr/internal/config"
	httpAdapter "github.com/aretw0/nhohnhehr/pkg/adapters/http"
	"github.com/aretw0/nhohnhehr/pkg/adapters/mcp"
)

// ServeOptions configures the serve and mcp commands.
type ServeOptions struct {
	// Dir holds the programs served by the file source.
	Dir      string
	Source   string
	Addr     string
	MaxSteps uint64
	Debug    bool
	LogFile  string
	Redis    config.RedisConfig
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, opts ServeOptions) error {
	logger, logCloser, err := createLogger(opts.Debug, opts.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	store, storeCloser, err := createStore(opts.Source, opts.Dir, opts.Redis)
	if err != nil {
		return err
	}
	defer storeCloser.Close()

	srv := &http.Server{
		Addr: opts.Addr,
		Handler: httpAdapter.NewHandler(store,
			httpAdapter.WithMaxSteps(opts.MaxSteps),
			httpAdapter.WithLogger(logger),
		),
	}

	serverErrors := make(chan error, 1)
	go func() {
		printSystemMessage(os.Stderr, "Serving programs from %s on %s", describeSource(opts), srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", 5*time.Second, err)
		}
		printSystemMessage(os.Stderr, "Server stopped gracefully")
		return nil
	}
}

// ServeMCP runs the MCP server over stdio or SSE.
func ServeMCP(ctx context.Context, opts ServeOptions, transport string, port int) error {
	// Stdout carries JSON-RPC under stdio; logs go to Stderr or the log file.
	logger, logCloser, err := createLogger(opts.Debug, opts.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	store, storeCloser, err := createStore(opts.Source, opts.Dir, opts.Redis)
	if err != nil {
		return err
	}
	defer storeCloser.Close()

	srv := mcp.NewServer(store, mcp.WithMaxSteps(opts.MaxSteps), mcp.WithLogger(logger))

	switch transport {
	case "", "stdio":
		logger.Info("Starting MCP Server (Stdio)")
		return srv.ServeStdio()
	case "sse":
		logger.Info("Starting MCP Server (SSE)", "port", port)
		if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
	return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
}

func describeSource(opts ServeOptions) string {
	if opts.Source == SourceRedis {
		return "redis " + opts.Redis.Addr
	}
	if opts.Dir == "" {
		return "."
	}
	return opts.Dir
}
