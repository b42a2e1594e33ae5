package physics

import "github.com/san-kum/ncgl/internal/dynamo"

// Model carries the two complex couplings of the equation.
type Model struct {
	C1 float64 // diffusion, (1 + i c1)∇²A
	C2 float64 // reaction, (1 + i c2)|A|²A
}

// Reaction returns a - (1 + i c2)|a|²a. t is unused.
func (m Model) Reaction(a complex128, t float64) complex128 {
	mod2 := real(a)*real(a) + imag(a)*imag(a)
	return a - complex(1, m.C2)*complex(mod2, 0)*a
}

// ReactionField applies Reaction to every cell.
func (m Model) ReactionField(f dynamo.Field, t float64) dynamo.Field {
	out := dynamo.NewField(f.Size)
	for i, a := range f.Data {
		out.Data[i] = m.Reaction(a, t)
	}
	return out
}
