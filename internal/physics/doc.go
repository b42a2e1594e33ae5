// Package physics implements the terms of the noisy complex Ginzburg-Landau
// equation
//
//	dA/dt = (1 + i c1) ∇²A + A - (1 + i c2)|A|²A + noise
//
// on a periodic square grid:
//
//   - [Model.Reaction]: the local cubic term, shared with the 0D path
//   - [Spectral]: pseudospectral Laplacian
//   - [Assembler]: full right-hand side for one run, including the noise coupling
//   - [InitialCondition]: random or Gaussian starting fields
package physics
