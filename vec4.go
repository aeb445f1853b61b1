package vecmath

import "fmt"

// Vec4 is a 4-component vector with elements of a single numeric type.
//
// Like Vec2, values are comparable and == is exact component-wise equality.
// Vec4 has no cross product: no binary cross product exists in four
// dimensions.
type Vec4[T Number] struct {
	X, Y, Z, W T
}

// V4 returns the vector (x, y, z, w).
func V4[T Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Zero4 returns the 4D vector with every component set to the additive
// identity of T.
func Zero4[T Number]() Vec4[T] {
	return Vec4[T]{}
}

// Add returns v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns v - w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// AddScalar returns the vector with s added to every component.
func (v Vec4[T]) AddScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X + s, Y: v.Y + s, Z: v.Z + s, W: v.W + s}
}

// SubScalar returns the vector with s subtracted from every component.
func (v Vec4[T]) SubScalar(s T) Vec4[T] {
	return Vec4[T]{X: v.X - s, Y: v.Y - s, Z: v.Z - s, W: v.W - s}
}

// Scale returns v scaled by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div returns v with every component divided by s. No zero check, see
// Vec2.Div.
func (v Vec4[T]) Div(s T) Vec4[T] {
	return Vec4[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Neg returns -v. For unsigned element types negation is modular.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Dot returns the dot product v ⋅ w.
func (v Vec4[T]) Dot(w Vec4[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// XYZ returns the first three components as a Vec3.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// XY returns the first two components as a Vec2.
func (v Vec4[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// String returns the components with their names in declared order.
func (v Vec4[T]) String() string {
	return fmt.Sprintf("x: %v, y: %v, z: %v, w: %v", v.X, v.Y, v.Z, v.W)
}
