package dynamo

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Field is a square complex grid stored row-major.
type Field struct {
	Size int
	Data []complex128
}

func NewField(size int) Field {
	return Field{Size: size, Data: make([]complex128, size*size)}
}

func (f Field) At(row, col int) complex128 {
	return f.Data[row*f.Size+col]
}

func (f Field) Set(row, col int, v complex128) {
	f.Data[row*f.Size+col] = v
}

func (f Field) Clone() Field {
	c := Field{Size: f.Size, Data: make([]complex128, len(f.Data))}
	copy(c.Data, f.Data)
	return c
}

func (f Field) IsValid() bool {
	for _, v := range f.Data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return false
		}
	}
	return true
}

// Scale returns f multiplied by s.
func (f Field) Scale(s complex128) Field {
	out := Field{Size: f.Size, Data: make([]complex128, len(f.Data))}
	for i, v := range f.Data {
		out.Data[i] = s * v
	}
	return out
}

// Combine returns f + sum(w[j]*terms[j]).
func (f Field) Combine(w []float64, terms ...Field) Field {
	out := f.Clone()
	for j, term := range terms {
		if w[j] == 0 {
			continue
		}
		c := complex(w[j], 0)
		for i, v := range term.Data {
			out.Data[i] += c * v
		}
	}
	return out
}

// MaxAbsDiff is the largest elementwise modulus of f - other.
func (f Field) MaxAbsDiff(other Field) float64 {
	m := 0.0
	for i, v := range f.Data {
		m = math.Max(m, cmplx.Abs(v-other.Data[i]))
	}
	return m
}

// Modulus returns |A| for every cell.
func (f Field) Modulus() []float64 {
	out := make([]float64, len(f.Data))
	for i, v := range f.Data {
		out[i] = cmplx.Abs(v)
	}
	return out
}

// NoiseType selects how the stochastic forcing couples into the equation.
type NoiseType int

const (
	Multiplicative NoiseType = iota
	Diffusive
	Additive
)

func (n NoiseType) String() string {
	switch n {
	case Multiplicative:
		return "multiplicative"
	case Diffusive:
		return "diffusive"
	case Additive:
		return "additive"
	default:
		return fmt.Sprintf("NoiseType(%d)", int(n))
	}
}

func (n NoiseType) Valid() bool {
	return n >= Multiplicative && n <= Additive
}

// ParseNoiseType accepts the full names and their first letter.
func ParseNoiseType(s string) (NoiseType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "multiplicative", "m":
		return Multiplicative, nil
	case "diffusive", "d":
		return Diffusive, nil
	case "additive", "a":
		return Additive, nil
	}
	return 0, ConfigError("unknown noise type %q", s)
}

// ICMode is the shape of the initial field.
type ICMode int

const (
	ICRandom ICMode = iota
	ICGaussian
)

func (m ICMode) String() string {
	switch m {
	case ICRandom:
		return "random"
	case ICGaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("ICMode(%d)", int(m))
	}
}

func (m ICMode) Valid() bool {
	return m == ICRandom || m == ICGaussian
}

func ParseICMode(s string) (ICMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "r":
		return ICRandom, nil
	case "gaussian", "g":
		return ICGaussian, nil
	}
	return 0, ConfigError("unknown initial condition %q", s)
}

// System is the right-hand side dA/dt = f(A, t) of a spatial run.
type System interface {
	Derive(x Field, t float64) Field
}

// Metric accumulates a scalar over the snapshots of a run.
type Metric interface {
	Name() string
	Observe(x Field, t float64)
	Value() float64
	Reset()
}

// Observer is told about progress after every accepted step. It must not
// modify anything it is given.
type Observer interface {
	OnStep(step, total int, t float64)
}
