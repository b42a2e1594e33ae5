package metrics

import (
	"math/cmplx"

	"github.com/san-kum/ncgl/internal/dynamo"
)

// Stability is the fraction of snapshots whose modulus stays below threshold
// everywhere.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(x dynamo.Field, t float64) {
	s.samples++
	for _, v := range x.Data {
		if cmplx.IsNaN(v) || cmplx.Abs(v) > s.threshold {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

// Defaults returns the metrics the CLI attaches to every spatial run.
func Defaults() []dynamo.Metric {
	return []dynamo.Metric{NewPower(), NewMaxModulus(), NewFinalMean(), NewStability(10)}
}
