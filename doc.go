// Package vecmath provides generic fixed-arity numeric vectors for Go.
//
// Vecmath implements 2-, 3-, and 4-component vectors parameterized by any
// integer or floating-point element type, with elementwise and geometric
// operations: construction, addition, subtraction, scalar arithmetic, dot
// product, cross product (2D scalar pseudo-cross and true 3D cross),
// negation, swizzles, exact equality, and human-readable formatting.
//
// # Quick Start
//
//	a := vecmath.V2(32, 64)
//	b := vecmath.V2(12, 10)
//
//	sum := a.Add(b)    // (44, 74)
//	dot := a.Dot(b)    // 1024
//	area := a.Cross(b) // -448, the signed parallelogram area
//
//	c := vecmath.V3(5.0, 10.0, 15.0)
//	d := vecmath.V3(3.0, 1.0, 7.0)
//	n := c.Cross(d) // (55, 10, -25), right-hand rule
//
// # Element Types
//
// All vector types are generic over the Number constraint. Instantiate them
// with any of Go's integer or floating-point types, or named types based on
// them:
//
//	vecmath.V4[float32](0, 0, 0, 1)
//	vecmath.V3(int8(1), int8(2), int8(3))
//
// The arithmetic semantics of the element type pass through unchanged:
// integer overflow wraps, integer division by zero panics, floating-point
// operations produce ±Inf and NaN per IEEE-754. Vecmath never validates,
// masks, or converts those conditions.
//
// # Value Semantics
//
// Every vector is a plain value: operations take value receivers and return
// new vectors, no operation mutates its operands, and copying is always
// safe. There is no shared state anywhere in the package, so vectors may be
// used freely from concurrent goroutines.
//
// # Equality
//
// Vector types are comparable; == is exact component-wise equality between
// vectors of identical arity and element type. Floating-point vectors that
// differ by rounding error compare unequal. Tolerance-based comparison is a
// separate operation (ApproxEqual2, ApproxEqual3, ApproxEqual4) restricted
// to floating-point element types.
package vecmath
