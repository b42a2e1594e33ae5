// Package dynamo provides core primitives for the NCGL simulation.
//
// The package defines the shared types used by every other package:
//
//   - [Field]: square complex grid holding the amplitude A(x, y)
//   - [NoiseType]: closed set of noise coupling regimes
//   - [ICMode]: initial condition shapes
//   - domain errors ([ErrInvalidConfig], [ErrUnstable], [ErrNoiseGenerator])
//
// # Thread Safety
//
// A Field is owned by exactly one run. Use [Field.Clone] before handing a
// snapshot to another goroutine.
package dynamo
