// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides a reproducible, goroutine-safe random source and helpers for
// generating random scalars and vectors of any supported element type.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := testutil.RandVec3[int64](rng, 100)     // components in [-100, 100]
//	s := testutil.NonZeroScalar[float64](rng, 100)
//
// Generated components are integer-valued and bounded, so floating-point
// instantiations stay exact under +, - and *; algebraic identities can then
// be checked with == instead of a tolerance.
package testutil
