package analysis

import (
	"math"
	"math/cmplx"
)

// AngularFrequency is the mean rate of change of arg(A) along a trajectory
// sampled every dt, with phase jumps unwrapped.
func AngularFrequency(states []complex128, dt float64) float64 {
	if len(states) < 2 || dt <= 0 {
		return 0
	}

	total := 0.0
	prev := cmplx.Phase(states[0])
	for _, a := range states[1:] {
		ph := cmplx.Phase(a)
		d := ph - prev
		for d > math.Pi {
			d -= 2 * math.Pi
		}
		for d < -math.Pi {
			d += 2 * math.Pi
		}
		total += d
		prev = ph
	}

	return total / (float64(len(states)-1) * dt)
}
