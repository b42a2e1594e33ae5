package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/ncgl/internal/dynamo"
)

// Power averages the mean squared modulus <|A|²> over observed snapshots.
type Power struct {
	name    string
	samples int
	total   float64
}

func NewPower() *Power {
	return &Power{name: "mean_power"}
}

func (p *Power) Name() string { return p.name }

func (p *Power) Observe(x dynamo.Field, t float64) {
	mod := x.Modulus()
	if len(mod) == 0 {
		return
	}
	p.total += floats.Dot(mod, mod) / float64(len(mod))
	p.samples++
}

func (p *Power) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.total / float64(p.samples)
}

func (p *Power) Reset() {
	p.total = 0
	p.samples = 0
}

// MaxModulus is the largest |A| seen in any snapshot.
type MaxModulus struct {
	name string
	max  float64
}

func NewMaxModulus() *MaxModulus {
	return &MaxModulus{name: "max_modulus"}
}

func (m *MaxModulus) Name() string { return m.name }

func (m *MaxModulus) Observe(x dynamo.Field, t float64) {
	mod := x.Modulus()
	if len(mod) == 0 {
		return
	}
	m.max = math.Max(m.max, floats.Max(mod))
}

func (m *MaxModulus) Value() float64 { return m.max }

func (m *MaxModulus) Reset() { m.max = 0 }

// FinalMean reports the mean |A| of the last observed snapshot.
type FinalMean struct {
	name string
	last float64
}

func NewFinalMean() *FinalMean {
	return &FinalMean{name: "final_mean_modulus"}
}

func (f *FinalMean) Name() string { return f.name }

func (f *FinalMean) Observe(x dynamo.Field, t float64) {
	mod := x.Modulus()
	if len(mod) == 0 {
		return
	}
	f.last = stat.Mean(mod, nil)
}

func (f *FinalMean) Value() float64 { return f.last }

func (f *FinalMean) Reset() { f.last = 0 }
