package vecmath

import "fmt"

// Vec2 is a 2-component vector with elements of a single numeric type.
//
// Vec2 values are comparable: == is exact component-wise equality using the
// element type's own equality. Floating-point vectors that differ only by
// rounding error therefore compare unequal; use ApproxEqual2 when a tolerance
// is wanted.
type Vec2[T Number] struct {
	X, Y T
}

// V2 returns the vector (x, y).
func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Zero2 returns the 2D vector with every component set to the additive
// identity of T.
func Zero2[T Number]() Vec2[T] {
	return Vec2[T]{}
}

// Add returns v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// AddScalar returns the vector with s added to every component.
func (v Vec2[T]) AddScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X + s, Y: v.Y + s}
}

// SubScalar returns the vector with s subtracted from every component.
func (v Vec2[T]) SubScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X - s, Y: v.Y - s}
}

// Scale returns v scaled by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Div returns v with every component divided by s. There is no zero check:
// integer element types panic on s == 0 and floating-point element types
// produce ±Inf or NaN, exactly as the element type itself would.
func (v Vec2[T]) Div(s T) Vec2[T] {
	return Vec2[T]{X: v.X / s, Y: v.Y / s}
}

// Neg returns -v. For unsigned element types negation is modular.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product v ⋅ w.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product of v and w as a scalar: the signed area
// of the parallelogram spanned by the two vectors, equal to the z-component
// of the 3D cross product with both z inputs zero.
func (v Vec2[T]) Cross(w Vec2[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// YX returns the vector with the two components swapped.
func (v Vec2[T]) YX() Vec2[T] {
	return Vec2[T]{X: v.Y, Y: v.X}
}

// String returns the components with their names in declared order.
func (v Vec2[T]) String() string {
	return fmt.Sprintf("x: %v, y: %v", v.X, v.Y)
}
