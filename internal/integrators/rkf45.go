package integrators

import (
	"math"

	"github.com/san-kum/ncgl/internal/dynamo"
)

// Runge-Kutta-Fehlberg 4(5) coefficients
var (
	a2 = 1.0 / 4.0
	a3 = 3.0 / 8.0
	a4 = 12.0 / 13.0
	a5 = 1.0
	a6 = 1.0 / 2.0

	b2 = []float64{1.0 / 4.0}
	b3 = []float64{3.0 / 32.0, 9.0 / 32.0}
	b4 = []float64{1932.0 / 2197.0, -7200.0 / 2197.0, 7296.0 / 2197.0}
	b5 = []float64{439.0 / 216.0, -8.0, 3680.0 / 513.0, -845.0 / 4104.0}
	b6 = []float64{-8.0 / 27.0, 2.0, -3544.0 / 2565.0, 1859.0 / 4104.0, -11.0 / 40.0}

	// fourth order solution, k2 and k6 unused. k4 takes the textbook
	// 2197/4104; a 2197/4101 variant leaves the weights summing past one.
	c4 = []float64{25.0 / 216.0, 0, 1408.0 / 2565.0, 2197.0 / 4104.0, -1.0 / 5.0, 0}
	// fifth order solution, k2 unused
	c5 = []float64{16.0 / 135.0, 0, 6656.0 / 12825.0, 28561.0 / 56430.0, -9.0 / 50.0, 2.0 / 55.0}
)

const DefaultTolerance = 1e-4

// RKF45 advances a field with the embedded Fehlberg pair. When the local
// error exceeds Tolerance the step is shrunk and recomputed at most
// MaxRetries times; the last fourth order estimate is accepted either way.
type RKF45 struct {
	Tolerance  float64
	MaxRetries int
}

func NewRKF45(tol float64) *RKF45 {
	return &RKF45{Tolerance: tol, MaxRetries: 1}
}

// StepResult is an accepted step.
type StepResult struct {
	State   dynamo.Field
	Dt      float64 // step actually taken
	Err     float64 // max |approach4 - approach5| of the accepted step
	Retries int
}

func (r *RKF45) Step(sys dynamo.System, x dynamo.Field, t, dt float64) StepResult {
	approach4, approach5 := r.stages(sys, x, t, dt)
	errEst := approach4.MaxAbsDiff(approach5)

	step := dt
	retries := 0
	for errEst > r.Tolerance && retries < r.MaxRetries {
		step *= math.Pow(r.Tolerance/(2*errEst), 0.25)
		approach4, approach5 = r.stages(sys, x, t, step)
		errEst = approach4.MaxAbsDiff(approach5)
		retries++
	}

	return StepResult{State: approach4, Dt: step, Err: errEst, Retries: retries}
}

func (r *RKF45) stages(sys dynamo.System, x dynamo.Field, t, step float64) (dynamo.Field, dynamo.Field) {
	h := complex(step, 0)

	k1 := sys.Derive(x, t).Scale(h)
	k2 := sys.Derive(x.Combine(b2, k1), t+a2*step).Scale(h)
	k3 := sys.Derive(x.Combine(b3, k1, k2), t+a3*step).Scale(h)
	k4 := sys.Derive(x.Combine(b4, k1, k2, k3), t+a4*step).Scale(h)
	k5 := sys.Derive(x.Combine(b5, k1, k2, k3, k4), t+a5*step).Scale(h)
	k6 := sys.Derive(x.Combine(b6, k1, k2, k3, k4, k5), t+a6*step).Scale(h)

	return x.Combine(c4, k1, k2, k3, k4, k5, k6), x.Combine(c5, k1, k2, k3, k4, k5, k6)
}
