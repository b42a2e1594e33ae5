package sim

import (
	"math"

	"github.com/san-kum/ncgl/internal/dynamo"
	"github.com/san-kum/ncgl/internal/physics"
)

// NoiseArgs parametrizes the colored noise generator.
type NoiseArgs struct {
	Beta float64 // spectral exponent
	Std  float64
}

// Params is the immutable parameter set of a simulator.
type Params struct {
	C1         float64
	C2         float64
	H          float64
	MSize      int
	Dim        int
	IC         dynamo.ICMode
	SigmaR     float64
	NoiseSpeed float64
	NoiseType  dynamo.NoiseType
	NoiseArgs  NoiseArgs
	A0         float64
	Seed       int64
}

func DefaultParams() Params {
	return Params{
		C1:         1.0,
		C2:         1.0,
		H:          1.0,
		MSize:      128,
		Dim:        2,
		IC:         dynamo.ICRandom,
		SigmaR:     1.0,
		NoiseSpeed: 1.0,
		NoiseType:  dynamo.Multiplicative,
		NoiseArgs:  NoiseArgs{Beta: 2, Std: 0.01},
		A0:         physics.DefaultA0,
	}
}

func (p Params) Validate() error {
	if p.MSize <= 0 {
		return dynamo.ConfigError("msize must be positive, got %d", p.MSize)
	}
	if p.Dim != 2 {
		return dynamo.ConfigError("only 2D grids are supported, got dim %d", p.Dim)
	}
	if !p.IC.Valid() {
		return dynamo.ConfigError("unsupported initial condition %v", p.IC)
	}
	if !p.NoiseType.Valid() {
		return dynamo.ConfigError("unsupported noise type %v", p.NoiseType)
	}
	if !(p.NoiseSpeed > 0 && p.NoiseSpeed <= 1) {
		return dynamo.ConfigError("noise speed must be in (0, 1], got %v", p.NoiseSpeed)
	}
	if !(p.H > 0) || math.IsInf(p.H, 0) {
		return dynamo.ConfigError("grid spacing must be positive, got %v", p.H)
	}
	if p.NoiseArgs.Std < 0 || math.IsNaN(p.NoiseArgs.Std) {
		return dynamo.ConfigError("noise std must be non-negative, got %v", p.NoiseArgs.Std)
	}
	for name, v := range map[string]float64{"c1": p.C1, "c2": p.C2, "sigma_r": p.SigmaR, "a0": p.A0, "beta": p.NoiseArgs.Beta} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return dynamo.ConfigError("%s must be finite, got %v", name, v)
		}
	}
	return nil
}
