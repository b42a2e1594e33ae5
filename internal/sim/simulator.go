package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/san-kum/ncgl/internal/dynamo"
	"github.com/san-kum/ncgl/internal/integrators"
	"github.com/san-kum/ncgl/internal/noise"
	"github.com/san-kum/ncgl/internal/physics"
)

const perturbation = 1e-6

type Simulator struct {
	params    Params
	model     physics.Model
	rng       *rand.Rand
	gen       noise.Generator
	logger    *slog.Logger
	observers []Observer
	metrics   []Metric
}

// New validates p and returns a simulator. Unless replaced with
// WithGenerator, noise comes from a power-law generator seeded from p.Seed.
func New(p Params, opts ...Option) (*Simulator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{
		params: p,
		model:  physics.Model{C1: p.C1, C2: p.C2},
		rng:    rand.New(rand.NewSource(p.Seed)),
		gen:    noise.NewPowerLaw(p.Seed + 1),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }
func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }

func (s *Simulator) InitialCondition() (dynamo.Field, error) {
	return physics.InitialCondition(s.params.IC, s.params.MSize, s.params.A0, s.rng)
}

// SolveAdaptive integrates the field for ntimes RKF45 steps of nominal size
// dt. The returned trace holds the initial field and the field after every
// step whose index is in saveIndices. On failure the partial trace is
// returned together with the error.
func (s *Simulator) SolveAdaptive(ctx context.Context, dt float64, ntimes int, saveIndices []int, opts ...SolveOption) (*Trace, error) {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	frames, err := s.validateSolve(dt, ntimes, cfg)
	if err != nil {
		return nil, err
	}

	state, err := s.InitialCondition()
	if err != nil {
		return nil, err
	}
	args := s.params.NoiseArgs
	buf, err := noise.NewBuffer(s.gen, args.Beta, frames, s.params.MSize, args.Std)
	if err != nil {
		return nil, err
	}

	rhs := &physics.Assembler{
		Model:     s.model,
		Spectral:  physics.NewSpectral(s.params.MSize, s.params.H),
		Noise:     buf,
		NoiseType: s.params.NoiseType,
		SigmaR:    s.params.SigmaR,
		MaxTime:   float64(ntimes+2) * dt,
	}
	integ := &integrators.RKF45{Tolerance: cfg.tolerance, MaxRetries: cfg.maxRetries}

	save := make(map[int]struct{}, len(saveIndices))
	for _, i := range saveIndices {
		save[i] = struct{}{}
	}

	trace := &Trace{
		Snapshots: []dynamo.Field{state},
		Times:     []float64{0},
		StepTimes: make([]float64, 0, ntimes),
		Metrics:   make(map[string]float64),
	}
	for _, m := range s.metrics {
		m.Reset()
		m.Observe(state, 0)
	}

	s.logger.Debug("adaptive solve started",
		"msize", s.params.MSize, "ntimes", ntimes, "dt", dt, "frames", buf.Frames(), "noise", s.params.NoiseType)

	t := 0.0
	for i := 0; i < ntimes; i++ {
		select {
		case <-ctx.Done():
			s.finish(trace, rhs)
			return trace, &dynamo.SimulationError{Step: i, Time: t, Wrapped: fmt.Errorf("%w: %v", dynamo.ErrContextCanceled, ctx.Err())}
		default:
		}

		res := integ.Step(rhs, state, t, dt)
		if res.Retries > 0 {
			trace.Corrections++
			s.logger.Debug("step corrected", "step", i, "dt", res.Dt, "err", res.Err, "retries", res.Retries)
		}
		if rhs.Err != nil {
			s.finish(trace, rhs)
			return trace, &dynamo.SimulationError{Step: i, Time: t, Wrapped: rhs.Err}
		}
		if !res.State.IsValid() {
			s.finish(trace, rhs)
			return trace, &dynamo.SimulationError{Step: i, Time: t, Wrapped: dynamo.ErrUnstable}
		}

		state = res.State
		t += res.Dt
		trace.StepTimes = append(trace.StepTimes, t)

		if _, ok := save[i]; ok {
			trace.Snapshots = append(trace.Snapshots, state)
			trace.Times = append(trace.Times, t)
			for _, m := range s.metrics {
				m.Observe(state, t)
			}
		}

		for _, o := range s.observers {
			o.OnStep(i+1, ntimes, t)
		}
	}

	s.finish(trace, rhs)
	return trace, nil
}

func (s *Simulator) finish(trace *Trace, rhs *physics.Assembler) {
	trace.Clamps = rhs.Clamps
	if rhs.Clamps > 0 {
		s.logger.Warn("diffusive noise dropped where the laplacian vanishes", "cells", rhs.Clamps)
	}
	for _, m := range s.metrics {
		trace.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) validateSolve(dt float64, ntimes int, cfg solveConfig) (int, error) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0, dynamo.ConfigError("dt must be positive, got %v", dt)
	}
	if ntimes <= 0 {
		return 0, dynamo.ConfigError("ntimes must be positive, got %d", ntimes)
	}
	if !(cfg.tolerance > 0) {
		return 0, dynamo.ConfigError("tolerance must be positive, got %v", cfg.tolerance)
	}
	if cfg.maxRetries < 0 {
		return 0, dynamo.ConfigError("max retries must be non-negative, got %d", cfg.maxRetries)
	}
	frames := int(s.params.NoiseSpeed * float64(ntimes))
	if frames < 2 {
		return 0, dynamo.ConfigError("noise speed %v over %d steps gives %d frames, need at least 2",
			s.params.NoiseSpeed, ntimes, frames)
	}
	return frames, nil
}

// ChainedSingleReaction integrates the reaction term alone for a single
// amplitude. A nil a0 starts from A0 plus a perturbation of order 1e-6.
func (s *Simulator) ChainedSingleReaction(a0 *complex128, dt float64, nit int) ([]complex128, error) {
	at, err := s.startAmplitude(a0, dt, nit)
	if err != nil {
		return nil, err
	}
	rhs := func(a complex128, t, _ float64) complex128 {
		return s.model.Reaction(a, t)
	}
	return s.chain(rhs, at, dt, nit)
}

// NoisyChainedSingleReaction is ChainedSingleReaction with a fresh colored
// forcing of exponent beta added to every stage. For multiplicative noise the
// forcing is scaled by the stage amplitude.
func (s *Simulator) NoisyChainedSingleReaction(a0 *complex128, beta, dt float64, nit int) ([]complex128, error) {
	at, err := s.startAmplitude(a0, dt, nit)
	if err != nil {
		return nil, err
	}
	eta, err := noise.NewTrajectory(s.gen, beta, nit)
	if err != nil {
		return nil, err
	}

	sigma := complex(s.params.SigmaR, 0)
	multiplicative := s.params.NoiseType == dynamo.Multiplicative
	step := 0
	rhs := func(a complex128, t, offset float64) complex128 {
		f := sigma * eta.At(float64(step)+offset)
		if multiplicative {
			f *= a
		}
		return s.model.Reaction(a, t) + f
	}
	return s.chainWith(rhs, at, dt, nit, func(i int) { step = i })
}

func (s *Simulator) startAmplitude(a0 *complex128, dt float64, nit int) (complex128, error) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return 0, dynamo.ConfigError("dt must be positive, got %v", dt)
	}
	if nit <= 0 {
		return 0, dynamo.ConfigError("nit must be positive, got %d", nit)
	}
	delta := perturbation * (s.rng.Float64() - 0.5)
	if a0 == nil {
		return complex(s.params.A0+delta, 0), nil
	}
	return *a0, nil
}

func (s *Simulator) chain(rhs integrators.AmplitudeFunc, at complex128, dt float64, nit int) ([]complex128, error) {
	return s.chainWith(rhs, at, dt, nit, nil)
}

func (s *Simulator) chainWith(rhs integrators.AmplitudeFunc, at complex128, dt float64, nit int, onStep func(int)) ([]complex128, error) {
	integ := integrators.NewRK4()
	states := make([]complex128, 0, nit)
	for i := 0; i < nit; i++ {
		if cmplx.IsNaN(at) || cmplx.IsInf(at) {
			return states, &dynamo.SimulationError{Step: i, Time: float64(i) * dt, Wrapped: dynamo.ErrUnstable}
		}
		states = append(states, at)
		if onStep != nil {
			onStep(i)
		}
		at = integ.Step(rhs, at, float64(i)*dt, dt)
	}
	return states, nil
}
