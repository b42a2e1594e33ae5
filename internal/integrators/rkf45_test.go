package integrators

import (
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ncgl/internal/dynamo"
)

// linearField is dA/dt = lambda*A applied cellwise.
type linearField struct {
	lambda complex128
	calls  int
}

func (l *linearField) Derive(x dynamo.Field, t float64) dynamo.Field {
	l.calls++
	return x.Scale(l.lambda)
}

// kickField switches on a unit forcing right after t = 0, which no step
// size can resolve.
type kickField struct{}

func (kickField) Derive(x dynamo.Field, t float64) dynamo.Field {
	if t > 0 {
		return uniformField(x.Size, 1)
	}
	return dynamo.NewField(x.Size)
}

func uniformField(size int, v complex128) dynamo.Field {
	f := dynamo.NewField(size)
	for i := range f.Data {
		f.Data[i] = v
	}
	return f
}

var _ = Describe("RKF45", func() {
	It("matches the exact decay of a smooth linear system", func() {
		sys := &linearField{lambda: -1}
		integ := NewRKF45(DefaultTolerance)

		res := integ.Step(sys, uniformField(2, 1), 0, 0.1)

		Expect(res.Retries).To(Equal(0))
		Expect(res.Dt).To(Equal(0.1))
		Expect(res.Err).To(BeNumerically("<", DefaultTolerance))
		Expect(sys.calls).To(Equal(6))
		for _, v := range res.State.Data {
			Expect(real(v)).To(BeNumerically("~", math.Exp(-0.1), 1e-6))
			Expect(imag(v)).To(BeNumerically("~", 0, 1e-15))
		}
	})

	It("keeps the Fehlberg weights consistent", func() {
		sum4, sum5 := 0.0, 0.0
		for i := range c4 {
			sum4 += c4[i]
			sum5 += c5[i]
		}
		Expect(sum4).To(BeNumerically("~", 1, 1e-14))
		Expect(sum5).To(BeNumerically("~", 1, 1e-14))

		for row, b := range [][]float64{b2, b3, b4, b5, b6} {
			s := 0.0
			for _, w := range b {
				s += w
			}
			Expect(s).To(BeNumerically("~", []float64{a2, a3, a4, a5, a6}[row], 1e-14))
		}
	})

	It("shrinks a step once when the error is too large", func() {
		sys := &linearField{lambda: -1000}
		integ := NewRKF45(DefaultTolerance)

		res := integ.Step(sys, uniformField(2, 1), 0, 0.1)

		Expect(res.Retries).To(Equal(1))
		Expect(res.Dt).To(BeNumerically("<", 0.1))
		Expect(res.Dt).To(BeNumerically(">", 0))
		Expect(sys.calls).To(Equal(12))
	})

	It("rescales a rejected step by (tol/2err)^(1/4)", func() {
		sys := &linearField{lambda: -1000}
		integ := NewRKF45(DefaultTolerance)
		x := uniformField(2, 1)

		approach4, approach5 := integ.stages(sys, x, 0, 0.1)
		errEst := approach4.MaxAbsDiff(approach5)
		Expect(errEst).To(BeNumerically(">", DefaultTolerance))

		res := integ.Step(sys, x, 0, 0.1)

		Expect(res.Dt).To(Equal(0.1 * math.Pow(DefaultTolerance/(2*errEst), 0.25)))
		retried4, retried5 := integ.stages(sys, x, 0, res.Dt)
		Expect(res.Err).To(Equal(retried4.MaxAbsDiff(retried5)))
		Expect(res.State.Data).To(Equal(retried4.Data))
	})

	It("accepts the corrected step even when it still fails the tolerance", func() {
		integ := NewRKF45(1e-12)

		res := integ.Step(kickField{}, uniformField(2, 1), 0, 0.1)

		Expect(res.Retries).To(Equal(1))
		Expect(res.Err).To(BeNumerically(">", 1e-12))
	})

	It("honours a larger retry budget", func() {
		integ := &RKF45{Tolerance: 1e-12, MaxRetries: 3}

		res := integ.Step(kickField{}, uniformField(2, 1), 0, 0.1)

		Expect(res.Retries).To(BeNumerically(">", 1))
		Expect(res.Retries).To(BeNumerically("<=", 3))
	})

	It("never retries with a zero budget", func() {
		sys := &linearField{lambda: -1000}
		integ := &RKF45{Tolerance: DefaultTolerance, MaxRetries: 0}

		res := integ.Step(sys, uniformField(2, 1), 0, 0.1)

		Expect(res.Retries).To(Equal(0))
		Expect(res.Dt).To(Equal(0.1))
	})

	It("rotates a purely imaginary system", func() {
		sys := &linearField{lambda: complex(0, 1)}
		integ := NewRKF45(DefaultTolerance)

		x := uniformField(1, 1)
		t := 0.0
		for i := 0; i < 100; i++ {
			res := integ.Step(sys, x, t, 0.01)
			x, t = res.State, t+res.Dt
		}
		Expect(cmplx.Abs(x.Data[0] - cmplx.Exp(complex(0, t)))).To(BeNumerically("<", 1e-8))
	})
})
