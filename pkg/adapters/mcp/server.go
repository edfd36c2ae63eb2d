package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/nhohnhehr"
	"github.com/aretw0/nhohnhehr/internal/validator"
	"github.com/aretw0/nhohnhehr/pkg/adapters/stream"
	"github.com/aretw0/nhohnhehr/pkg/domain"
	"github.com/aretw0/nhohnhehr/pkg/ports"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefaultMaxSteps bounds every run requested by a client.
const DefaultMaxSteps = 1_000_000

// ProgramsURI is the resource listing stored programs.
const ProgramsURI = "nhohnhehr://programs"

// RunArgs are the arguments of the run_program tool.
type RunArgs struct {
	Source  string `json:"source"`
	Program string `json:"program"`
	Mode    string `json:"mode"`
	Input   string `json:"input"`
}

// RunResult aligns with the HTTP run response.
type RunResult struct {
	RunID  string       `json:"run_id" jsonschema_description:"Identifier of this run"`
	Output string       `json:"output" jsonschema_description:"Everything the program wrote, framed by mode"`
	Halted bool         `json:"halted" jsonschema_description:"Whether the program reached @"`
	Rooms  int          `json:"rooms" jsonschema_description:"Number of rooms grown"`
	State  domain.State `json:"state" jsonschema_description:"Final execution state"`
	Error  string       `json:"error,omitempty" jsonschema_description:"Why the run stopped early"`
}

// ValidateArgs are the arguments of the validate_program tool.
type ValidateArgs struct {
	Source string `json:"source"`
}

// ValidateResult reports whether a source parses into a runnable room.
type ValidateResult struct {
	Valid    bool          `json:"valid"`
	Size     int           `json:"size,omitempty"`
	Start    *domain.Point `json:"start,omitempty"`
	Error    string        `json:"error,omitempty"`
	Warnings []string      `json:"warnings,omitempty"`
}

// Server exposes program execution as MCP tools.
type Server struct {
	store     ports.ProgramStore
	maxSteps  uint64
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	tools     []server.ServerTool
	mcpServer *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithMaxSteps sets the per-run step budget.
func WithMaxSteps(n uint64) Option {
	return func(s *Server) {
		s.maxSteps = n
	}
}

// WithLifecycleHooks observes every run.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// WithLogger sets the server logger. It must not write to Stdout under stdio.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP Server instance. store may be nil, in which case
// only inline sources can be run.
func NewServer(store ports.ProgramStore, opts ...Option) *Server {
	s := &Server{
		store:     store,
		maxSteps:  DefaultMaxSteps,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		mcpServer: server.NewMCPServer("nhohnhehr-mcp", strings.TrimSpace(nhohnhehr.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	s.tools = []server.ServerTool{
		{
			Tool: mcp.NewTool("run_program",
				mcp.WithDescription("Run a Nhohnhehr program until it halts or exhausts its step budget. Pass either an inline source or the name of a stored program."),
				mcp.WithString("source", mcp.Description("Program text containing exactly one bordered room")),
				mcp.WithString("program", mcp.Description("Name of a stored program (used when source is empty)")),
				mcp.WithString("mode", mcp.Description("I/O framing: 'bytes' (default) or 'bits'")),
				mcp.WithString("input", mcp.Description("Program input; a string of 0 and 1 in bits mode")),
				mcp.WithOutputSchema[RunResult](),
			),
			Handler: mcp.NewStructuredToolHandler(s.handleRun),
		},
		{
			Tool: mcp.NewTool("validate_program",
				mcp.WithDescription("Check that a source contains exactly one bordered room with a $ start marker."),
				mcp.WithString("source", mcp.Required(), mcp.Description("Program text")),
				mcp.WithOutputSchema[ValidateResult](),
			),
			Handler: mcp.NewStructuredToolHandler(s.handleValidate),
		},
		{
			Tool: mcp.NewTool("list_programs",
				mcp.WithDescription("List the names of stored programs."),
			),
			Handler: s.handleList,
		},
	}
	s.mcpServer.AddTools(s.tools...)
}

func (s *Server) handleRun(ctx context.Context, request mcp.CallToolRequest, args RunArgs) (RunResult, error) {
	mode, err := stream.ParseMode(args.Mode)
	if err != nil {
		return RunResult{}, err
	}

	source := []byte(args.Source)
	if args.Source == "" {
		if args.Program == "" {
			return RunResult{}, errors.New("either source or program is required")
		}
		if s.store == nil {
			return RunResult{}, errors.New("no program store configured")
		}
		source, err = s.store.Load(ctx, args.Program)
		if err != nil {
			return RunResult{}, err
		}
	}

	runID := uuid.NewString()
	opts := []nhohnhehr.Option{
		nhohnhehr.WithLogger(s.logger.With("run_id", runID)),
		nhohnhehr.WithMaxSteps(s.maxSteps),
		nhohnhehr.WithLifecycleHooks(s.hooks),
	}
	if args.Program != "" && args.Source == "" {
		opts = append(opts, nhohnhehr.WithName(args.Program))
	}

	res, err := nhohnhehr.Execute(ctx, source, mode, []byte(args.Input), opts...)
	if res == nil {
		return RunResult{}, err
	}

	result := RunResult{
		RunID:  runID,
		Output: string(res.Output),
		Halted: res.Halted,
		Rooms:  res.Rooms,
		State:  res.State,
	}
	if err != nil {
		s.logger.Warn("MCP Run: stopped early", "run_id", runID, "error", err)
		result.Error = err.Error()
	}
	return result, nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args ValidateArgs) (ValidateResult, error) {
	grid, err := nhohnhehr.Parse([]byte(args.Source))
	if err != nil {
		return ValidateResult{Error: err.Error()}, nil
	}
	start, ok := grid.Find(domain.OpStart)
	if !ok {
		return ValidateResult{Size: grid.Size(), Error: domain.ErrMissingStartMarker.Error()}, nil
	}
	return ValidateResult{Valid: true, Size: grid.Size(), Start: &start, Warnings: validator.Lint(grid)}, nil
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.listPrograms(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}
	jsonBytes, _ := json.Marshal(names)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) listPrograms(ctx context.Context) ([]string, error) {
	if s.store == nil {
		return []string{}, nil
	}
	return s.store.List(ctx)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(ProgramsURI, "Stored Programs",
		mcp.WithMIMEType("application/json"),
	), s.readPrograms)
}

func (s *Server) readPrograms(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	names, err := s.listPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	jsonBytes, _ := json.Marshal(names)

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ProgramsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
