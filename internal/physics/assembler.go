package physics

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/san-kum/ncgl/internal/dynamo"
	"github.com/san-kum/ncgl/internal/noise"
)

// MinLaplacianNorm is the modulus below which the diffusive noise direction
// lap/|lap| is undefined and the noise term is dropped for that cell.
const MinLaplacianNorm = 1e-12

// Assembler is the right-hand side of one spatial run. It owns the run's
// noise buffer and normalisation time and is discarded when the run ends.
type Assembler struct {
	Model     Model
	Spectral  *Spectral
	Noise     *noise.Buffer
	NoiseType dynamo.NoiseType
	SigmaR    float64
	MaxTime   float64

	// Clamps counts cells where diffusive noise was dropped.
	Clamps int
	// Err holds the first shape error seen by Derive. Derive returns a
	// non-finite field whenever it is set.
	Err error
}

var _ dynamo.System = (*Assembler)(nil)

// Derive returns dA/dt at time t.
func (a *Assembler) Derive(state dynamo.Field, t float64) dynamo.Field {
	lap, err := a.Spectral.Laplacian(state)
	if err != nil {
		return a.fail(state, err)
	}
	rate, raw := a.Noise.Interpolate(t / a.MaxTime)
	if len(raw) != len(state.Data) {
		return a.fail(state, fmt.Errorf("%w: noise frame has %d cells, field has %d",
			dynamo.ErrDimensionMismatch, len(raw), len(state.Data)))
	}
	react := a.Model.ReactionField(state, t)

	diff := complex(1, a.Model.C1)
	sigma := complex(a.SigmaR, 0)
	out := dynamo.NewField(state.Size)

	for i, s := range state.Data {
		l := lap.Data[i]
		v := diff*l + react.Data[i]

		switch a.NoiseType {
		case dynamo.Diffusive:
			norm := cmplx.Abs(l)
			if norm < MinLaplacianNorm || math.IsNaN(norm) {
				a.Clamps++
			} else {
				v += sigma * l * complex(raw[i]/norm, 0)
			}
		case dynamo.Multiplicative:
			v += sigma * s * complex(rate[i], rate[i])
		case dynamo.Additive:
			v += sigma * complex(rate[i], rate[i])
		}
		out.Data[i] = v
	}
	return out
}

func (a *Assembler) fail(state dynamo.Field, err error) dynamo.Field {
	if a.Err == nil {
		a.Err = err
	}
	out := state.Clone()
	for i := range out.Data {
		out.Data[i] = cmplx.NaN()
	}
	return out
}
