// Package sim runs NCGL simulations.
//
// A [Simulator] is built once from validated [Params] and exposes the entry
// points of the engine:
//
//   - [Simulator.InitialCondition]: starting field
//   - [Simulator.SolveAdaptive]: spatial run with the RKF45 integrator
//   - [Simulator.ChainedSingleReaction]: 0D RK4 run of the reaction term
//   - [Simulator.NoisyChainedSingleReaction]: 0D RK4 run with colored forcing
//
// Every SolveAdaptive call builds its own noise buffer and right-hand side,
// so repeated runs never share state.
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Use [Ensemble] to spread
// independent 0D runs over goroutines.
package sim
