package integrators

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestRK4Accuracy(t *testing.T) {
	integ := NewRK4()
	f := func(a complex128, _, _ float64) complex128 { return complex(0, 1) * a }

	a := complex(1, 0)
	dt := 0.01
	steps := 100
	for i := 0; i < steps; i++ {
		a = integ.Step(f, a, float64(i)*dt, dt)
	}

	want := cmplx.Exp(complex(0, float64(steps)*dt))
	if cmplx.Abs(a-want) > 1e-8 {
		t.Errorf("got %v, expected %v", a, want)
	}
}

func TestRK4StageOffsets(t *testing.T) {
	integ := NewRK4()
	var offsets []float64
	var times []float64
	f := func(a complex128, tm, off float64) complex128 {
		offsets = append(offsets, off)
		times = append(times, tm)
		return 0
	}

	integ.Step(f, 1, 2, 0.5)

	wantOff := []float64{0, 0.5, 0.5, 1}
	wantT := []float64{2, 2.25, 2.25, 2.5}
	for i := range wantOff {
		if offsets[i] != wantOff[i] || times[i] != wantT[i] {
			t.Errorf("stage %d: offset %v t %v, want %v %v", i, offsets[i], times[i], wantOff[i], wantT[i])
		}
	}
}

func TestRK4ConstantForcing(t *testing.T) {
	integ := NewRK4()
	f := func(_ complex128, _, _ float64) complex128 { return complex(2, -1) }

	got := integ.Step(f, 0, 0, 0.25)
	want := complex(0.5, -0.25)
	if cmplx.Abs(got-want) > 1e-15 {
		t.Errorf("got %v, want %v", got, want)
	}
	if math.IsNaN(real(got)) {
		t.Error("NaN result")
	}
}
