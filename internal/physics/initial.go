package physics

import (
	"math"
	"math/rand"

	"github.com/san-kum/ncgl/internal/dynamo"
)

// DefaultA0 is the base amplitude of the initial field.
const DefaultA0 = 0.01

// InitialCondition builds the starting field of a spatial run.
func InitialCondition(mode dynamo.ICMode, size int, a0 float64, rng *rand.Rand) (dynamo.Field, error) {
	if size <= 0 {
		return dynamo.Field{}, dynamo.ConfigError("grid size must be positive, got %d", size)
	}

	f := dynamo.NewField(size)
	switch mode {
	case dynamo.ICRandom:
		for i := range f.Data {
			f.Data[i] = complex(a0*(rng.Float64()-0.5), 0)
		}
		for i := range f.Data {
			f.Data[i] += complex(0, a0*(rng.Float64()-0.5))
		}
	case dynamo.ICGaussian:
		c := float64(size) / 2
		for r := 0; r < size; r++ {
			for col := 0; col < size; col++ {
				dr, dc := float64(r)-c, float64(col)-c
				g := a0 * math.Exp(-(dr*dr+dc*dc)/float64(size))
				f.Set(r, col, complex(g, g))
			}
		}
	default:
		return dynamo.Field{}, dynamo.ConfigError("unsupported initial condition %v", mode)
	}
	return f, nil
}
