package observability

import (
	"context"
	"errors"

	"github.com/aretw0/nhohnhehr/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by engine hooks.
type Metrics struct {
	Steps        prometheus.Counter
	RoomsCreated *prometheus.CounterVec
	Units        *prometheus.CounterVec
	InputEOF     prometheus.Counter
	Halts        prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// Collectors already registered with reg are reused, so several servers
// can share one registry. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nhohnhehr_steps_total",
			Help: "Total number of executed instructions",
		}),
		RoomsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nhohnhehr_rooms_created_total",
				Help: "Total number of rooms grown, by transform",
			},
			[]string{"transform"},
		),
		Units: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nhohnhehr_units_total",
				Help: "Total number of units read or written",
			},
			[]string{"direction"},
		),
		InputEOF: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nhohnhehr_input_eof_total",
			Help: "Total number of reads that found no more input",
		}),
		Halts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nhohnhehr_halts_total",
			Help: "Total number of programs that reached @",
		}),
	}

	if reg != nil {
		m.Steps = register(reg, m.Steps)
		m.RoomsCreated = register(reg, m.RoomsCreated)
		m.Units = register(reg, m.Units)
		m.InputEOF = register(reg, m.InputEOF)
		m.Halts = register(reg, m.Halts)
	}
	return m
}

// register adds c to reg or returns the equivalent collector reg already holds.
// It panics on any other registration error, like MustRegister.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}
	panic(err)
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, _ *domain.StepEvent) {
			m.Steps.Inc()
		},
		OnRoomCreated: func(_ context.Context, e *domain.RoomEvent) {
			m.RoomsCreated.WithLabelValues(e.Transform.String()).Inc()
		},
		OnInput: func(_ context.Context, e *domain.UnitEvent) {
			if e.EOF {
				m.InputEOF.Inc()
				return
			}
			m.Units.WithLabelValues("in").Inc()
		},
		OnOutput: func(_ context.Context, _ *domain.UnitEvent) {
			m.Units.WithLabelValues("out").Inc()
		},
		OnHalt: func(_ context.Context, _ *domain.HaltEvent) {
			m.Halts.Inc()
		},
	}
}
