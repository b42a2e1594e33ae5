package integrators

// AmplitudeFunc is the right-hand side of a 0D run. offset is the position of
// the stage inside the step (0, 0.5 or 1) so that time-indexed forcing can be
// sampled at the matching fractional step.
type AmplitudeFunc func(a complex128, t, offset float64) complex128

// RK4 is the classic fixed-step fourth order scheme on a single amplitude.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(f AmplitudeFunc, a complex128, t, dt float64) complex128 {
	h := complex(dt, 0)
	half := complex(dt/2, 0)

	k1 := f(a, t, 0)
	k2 := f(a+half*k1, t+dt/2, 0.5)
	k3 := f(a+half*k2, t+dt/2, 0.5)
	k4 := f(a+h*k3, t+dt, 1)

	return a + h*(k1+2*k2+2*k3+k4)/6
}
