// Package analysis provides diagnostics for NCGL runs.
//
//   - [PowerSpectrum]: one-sided amplitude spectrum of a real series
//   - [SpectralSlope]: log-log slope of a power spectrum, i.e. -beta for colored noise
//   - [AngularFrequency]: mean phase velocity of a 0D amplitude trajectory
//
// # Limit cycle check
//
// On the limit cycle |A| = 1 the reaction term reduces to -i c2 A, so a
// converged 0D run rotates with frequency -c2:
//
//	states, _ := s.ChainedSingleReaction(nil, 0.1, 3000)
//	omega := analysis.AngularFrequency(states[2000:], 0.1)
package analysis
