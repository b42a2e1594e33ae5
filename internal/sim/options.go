package sim

import (
	"io"
	"log/slog"

	"github.com/san-kum/ncgl/internal/integrators"
	"github.com/san-kum/ncgl/internal/noise"
)

type Option func(*Simulator)

// WithLogger sets the logger used for step corrections and numerical
// warnings. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// WithGenerator replaces the default power-law noise source.
func WithGenerator(g noise.Generator) Option {
	return func(s *Simulator) { s.gen = g }
}

func WithObserver(o Observer) Option {
	return func(s *Simulator) { s.observers = append(s.observers, o) }
}

func WithMetric(m Metric) Option {
	return func(s *Simulator) { s.metrics = append(s.metrics, m) }
}

type solveConfig struct {
	tolerance  float64
	maxRetries int
}

func defaultSolveConfig() solveConfig {
	return solveConfig{tolerance: integrators.DefaultTolerance, maxRetries: 1}
}

type SolveOption func(*solveConfig)

func WithTolerance(tol float64) SolveOption {
	return func(c *solveConfig) { c.tolerance = tol }
}

// WithMaxRetries bounds the step corrections per step. 1 is the default.
func WithMaxRetries(n int) SolveOption {
	return func(c *solveConfig) { c.maxRetries = n }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
