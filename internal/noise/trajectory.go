package noise

import (
	"fmt"
	"math"

	"github.com/san-kum/ncgl/internal/dynamo"
)

// Trajectory is a complex, time-only forcing sampled at fractional steps.
type Trajectory []complex128

// NewTrajectory builds nit+2 samples from two independent unit-std colored
// sequences (real and imaginary part) and differentiates them once.
func NewTrajectory(gen Generator, beta float64, nit int) (Trajectory, error) {
	n := nit + 2
	re, err := gen.Generate(beta, []int{n}, 1)
	if err != nil {
		return nil, fmt.Errorf("generate real forcing: %w", err)
	}
	im, err := gen.Generate(beta, []int{n}, 1)
	if err != nil {
		return nil, fmt.Errorf("generate imaginary forcing: %w", err)
	}
	if re == nil || im == nil || len(re.Data) != n || len(im.Data) != n {
		return nil, fmt.Errorf("%w: forcing length mismatch, want %d", dynamo.ErrNoiseGenerator, n)
	}

	dre := gradient(re.Data, n, 1)
	dim := gradient(im.Data, n, 1)
	out := make(Trajectory, n)
	for i := range out {
		out[i] = complex(dre[i], dim[i])
	}
	return out, nil
}

// At samples the trajectory at fractional position x.
func (tr Trajectory) At(x float64) complex128 {
	return Interpolate1D(tr, x)
}

// Interpolate1D blends the two samples bracketing x.
func Interpolate1D(seq []complex128, x float64) complex128 {
	p1, p2 := int(math.Floor(x)), int(math.Ceil(x))
	if p1 == p2 {
		return seq[p1]
	}
	d := math.Abs(float64(p1 - p2))
	w1 := complex(math.Abs(x-float64(p1))/d, 0)
	w2 := complex(math.Abs(x-float64(p2))/d, 0)
	return seq[p1]*w1 + seq[p2]*w2
}
