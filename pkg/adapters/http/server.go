package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/nhohnhehr"
	"github.com/aretw0/nhohnhehr/internal/validator"
	"github.com/aretw0/nhohnhehr/pkg/adapters/stream"
	"github.com/aretw0/nhohnhehr/pkg/domain"
	"github.com/aretw0/nhohnhehr/pkg/observability"
	"github.com/aretw0/nhohnhehr/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMaxSteps bounds every run unless WithMaxSteps says otherwise.
const DefaultMaxSteps = 1_000_000

// MaxBodyBytes caps request bodies (programs and inputs).
const MaxBodyBytes = 1 << 20

// Server serves program runs over HTTP.
type Server struct {
	Store    ports.ProgramStore
	MaxSteps uint64
	Hooks    domain.LifecycleHooks
	Logger   *slog.Logger
	Registry *prometheus.Registry

	metrics *observability.Metrics
}

// Option configures a Server.
type Option func(*Server)

// WithMaxSteps sets the per-run step budget.
func WithMaxSteps(n uint64) Option {
	return func(s *Server) {
		s.MaxSteps = n
	}
}

// WithLifecycleHooks adds hooks that observe every run.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.Hooks = hooks
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithRegistry exposes metrics on an existing registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.Registry = reg
	}
}

// NewServer creates a Server backed by store.
func NewServer(store ports.ProgramStore, opts ...Option) *Server {
	s := &Server{
		Store:    store,
		MaxSteps: DefaultMaxSteps,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Registry == nil {
		s.Registry = prometheus.NewRegistry()
	}
	s.metrics = observability.NewMetrics(s.Registry)
	return s
}

// NewHandler creates a new HTTP handler for store.
func NewHandler(store ports.ProgramStore, opts ...Option) http.Handler {
	return NewServer(store, opts...).Routes()
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	hooks := observability.Combine(s.metrics.Hooks(), s.Hooks)

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{}))

	r.Post("/validate", s.Validate)
	r.Post("/run", func(w http.ResponseWriter, r *http.Request) { s.Run(w, r, hooks) })
	r.Post("/run/stream", func(w http.ResponseWriter, r *http.Request) { s.RunStream(w, r, hooks) })

	r.Route("/programs", func(r chi.Router) {
		r.Get("/", s.ListPrograms)
		r.Get("/{name}", s.GetProgram)
		r.Put("/{name}", s.PutProgram)
		r.Delete("/{name}", s.DeleteProgram)
		r.Post("/{name}/run", func(w http.ResponseWriter, r *http.Request) { s.RunStored(w, r, hooks) })
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RunRequest is the body of POST /run and POST /programs/{name}/run.
// Source is ignored for stored programs. In bits mode Input is a string of
// '0' and '1'; in bytes mode it is taken byte for byte.
type RunRequest struct {
	Source string `json:"source,omitempty"`
	Mode   string `json:"mode,omitempty"`
	Input  string `json:"input,omitempty"`
}

// RunResponse describes a finished or stopped run.
type RunResponse struct {
	RunID        string       `json:"run_id"`
	Program      string       `json:"program,omitempty"`
	Mode         string       `json:"mode"`
	Output       string       `json:"output"`
	OutputBase64 []byte       `json:"output_base64,omitempty"`
	Halted       bool         `json:"halted"`
	Rooms        int          `json:"rooms"`
	State        domain.State `json:"state"`
	Error        string       `json:"error,omitempty"`
}

// ValidateResponse reports whether a source parses into a runnable room.
type ValidateResponse struct {
	Valid bool          `json:"valid"`
	Size  int           `json:"size,omitempty"`
	Start *domain.Point `json:"start,omitempty"`
	Error string        `json:"error,omitempty"`

	// Warnings lists constructs that parse but rarely do what was meant.
	Warnings []string `json:"warnings,omitempty"`
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"app":       "nhohnhehr-http",
		"version":   strings.TrimSpace(nhohnhehr.Version),
		"max_steps": s.MaxSteps,
	})
}

// Validate handles the POST /validate request.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if !s.decode(w, r, &body) {
		return
	}

	resp := validate([]byte(body.Source))
	status := http.StatusOK
	if !resp.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

func validate(source []byte) ValidateResponse {
	grid, err := nhohnhehr.Parse(source)
	if err != nil {
		return ValidateResponse{Error: err.Error()}
	}
	start, ok := grid.Find(domain.OpStart)
	if !ok {
		return ValidateResponse{Size: grid.Size(), Error: domain.ErrMissingStartMarker.Error()}
	}
	return ValidateResponse{Valid: true, Size: grid.Size(), Start: &start, Warnings: validator.Lint(grid)}
}

// Run handles the POST /run request.
func (s *Server) Run(w http.ResponseWriter, r *http.Request, hooks domain.LifecycleHooks) {
	var body RunRequest
	if !s.decode(w, r, &body) {
		return
	}
	s.execute(w, r, "", []byte(body.Source), body, hooks)
}

// RunStored handles the POST /programs/{name}/run request.
func (s *Server) RunStored(w http.ResponseWriter, r *http.Request, hooks domain.LifecycleHooks) {
	name := chi.URLParam(r, "name")

	var body RunRequest
	if r.ContentLength != 0 && !s.decode(w, r, &body) {
		return
	}

	source, err := s.Store.Load(r.Context(), name)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.execute(w, r, name, source, body, hooks)
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request, name string, source []byte, body RunRequest, hooks domain.LifecycleHooks) {
	mode, err := stream.ParseMode(body.Mode)
	if err != nil {
		s.fail(w, err)
		return
	}

	runID := uuid.NewString()
	logger := s.Logger.With("run_id", runID)
	w.Header().Set("X-Run-ID", runID)

	res, err := nhohnhehr.Execute(r.Context(), source, mode, []byte(body.Input), s.engineOptions(logger, name, hooks)...)
	if res == nil {
		s.fail(w, err)
		return
	}

	resp := newRunResponse(runID, name, mode, res)
	if err != nil {
		if !isStopped(err) {
			logger.Error("Run failed", "error", err)
			resp.Error = err.Error()
			writeJSON(w, http.StatusInternalServerError, resp)
			return
		}
		resp.Error = err.Error()
	}

	logger.Info("Run finished", "program", name, "steps", res.State.Steps, "halted", res.Halted)
	writeJSON(w, http.StatusOK, resp)
}

// RunStream handles the POST /run/stream request (SSE).
// Each step is sent as a "step" event carrying its state diff; grown rooms
// as "room" events; the final RunResponse as a "result" event.
func (s *Server) RunStream(w http.ResponseWriter, r *http.Request, hooks domain.LifecycleHooks) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("RunStream: Streaming not supported")
		return
	}

	var body RunRequest
	if !s.decode(w, r, &body) {
		return
	}
	mode, err := stream.ParseMode(body.Mode)
	if err != nil {
		s.fail(w, err)
		return
	}
	if resp := validate([]byte(body.Source)); !resp.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	runID := uuid.NewString()
	w.Header().Set("X-Run-ID", runID)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	send := func(event string, payload any) {
		data, err := json.Marshal(payload)
		if err != nil {
			s.Logger.Error("RunStream: encode failed", "event", event, "error", err)
			return
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
	}

	trace := domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			send("step", traceStep{Step: e.Step, Room: e.Room, Op: string(e.Op), Diff: e.Diff})
		},
		OnRoomCreated: func(_ context.Context, e *domain.RoomEvent) {
			send("room", traceRoom{Room: e.Room, Source: e.Source, Transform: e.Transform.String(), Total: e.Total})
		},
	}

	logger := s.Logger.With("run_id", runID)
	res, err := nhohnhehr.Execute(r.Context(), []byte(body.Source), mode, []byte(body.Input),
		s.engineOptions(logger, "", observability.Combine(hooks, trace))...)
	if res == nil {
		send("error", map[string]string{"error": err.Error()})
		return
	}

	resp := newRunResponse(runID, "", mode, res)
	if err != nil {
		resp.Error = err.Error()
	}
	send("result", resp)
}

type traceStep struct {
	Step uint64            `json:"step"`
	Room domain.Point      `json:"room"`
	Op   string            `json:"op"`
	Diff *domain.StateDiff `json:"diff"`
}

type traceRoom struct {
	Room      domain.Point `json:"room"`
	Source    domain.Point `json:"source"`
	Transform string       `json:"transform"`
	Total     int          `json:"total"`
}

// ListPrograms handles the GET /programs request.
func (s *Server) ListPrograms(w http.ResponseWriter, r *http.Request) {
	names, err := s.Store.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"programs": names})
}

// GetProgram handles the GET /programs/{name} request.
func (s *Server) GetProgram(w http.ResponseWriter, r *http.Request) {
	source, err := s.Store.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(source)
}

// PutProgram handles the PUT /programs/{name} request. The body is the raw
// program source; it must validate before it is stored.
func (s *Server) PutProgram(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	source, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if resp := validate(source); !resp.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	if err := s.Store.Save(r.Context(), name, source); err != nil {
		s.fail(w, err)
		return
	}
	s.Logger.Info("Program stored", "program", name, "bytes", len(source))
	w.WriteHeader(http.StatusCreated)
}

// DeleteProgram handles the DELETE /programs/{name} request.
func (s *Server) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// -- Helpers --

func (s *Server) engineOptions(logger *slog.Logger, name string, hooks domain.LifecycleHooks) []nhohnhehr.Option {
	opts := []nhohnhehr.Option{
		nhohnhehr.WithLogger(logger),
		nhohnhehr.WithMaxSteps(s.MaxSteps),
		nhohnhehr.WithLifecycleHooks(hooks),
	}
	if name != "" {
		opts = append(opts, nhohnhehr.WithName(name))
	}
	return opts
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(v); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		return false
	}
	return true
}

// fail maps domain errors onto status codes.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var parseErr *domain.ParseError
	switch {
	case errors.Is(err, domain.ErrProgramNotFound):
		status = http.StatusNotFound
	case errors.Is(err, stream.ErrInvalidMode):
		status = http.StatusBadRequest
	case errors.As(err, &parseErr), errors.Is(err, domain.ErrMissingStartMarker):
		status = http.StatusUnprocessableEntity
	default:
		s.Logger.Error("Request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// isStopped reports errors that end a run early without a server fault.
func isStopped(err error) bool {
	return errors.Is(err, domain.ErrStepLimit) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func newRunResponse(runID, name string, mode stream.Mode, res *nhohnhehr.Result) RunResponse {
	resp := RunResponse{
		RunID:   runID,
		Program: name,
		Mode:    string(mode),
		Output:  string(res.Output),
		Halted:  res.Halted,
		Rooms:   res.Rooms,
		State:   res.State,
	}
	if mode == stream.ModeBytes {
		resp.OutputBase64 = res.Output
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}
