// Package noise produces and samples the colored noise that drives the NCGL
// equation.
//
// A [Generator] returns real tensors whose power spectrum follows |f|^-beta.
// [Buffer] holds the spatio-temporal noise of one spatial run together with
// its frame-axis derivative and blends frames linearly in normalized time.
// [Trajectory] is the independent time-only forcing of the 0D integrator.
//
// Both interpolators weight the bracketing samples by their own distance to
// the query point, i.e. f[p1]*|x-p1| + f[p2]*|x-p2| over the bracket width.
package noise
