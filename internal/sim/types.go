package sim

import "github.com/san-kum/ncgl/internal/dynamo"

type (
	Metric   = dynamo.Metric
	Observer = dynamo.Observer
)

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(step, total int, t float64)

func (f ObserverFunc) OnStep(step, total int, t float64) { f(step, total, t) }

// Trace is the output of SolveAdaptive.
type Trace struct {
	// Snapshots holds the initial field followed by every saved step.
	Snapshots []dynamo.Field
	// Times is aligned with Snapshots; the initial field is at 0.
	Times []float64
	// StepTimes is the elapsed time after every accepted step.
	StepTimes []float64
	// Corrections counts steps whose size was reduced.
	Corrections int
	// Clamps counts cells where diffusive noise had no defined direction.
	Clamps  int
	Metrics map[string]float64
}
