package vecmath

import "fmt"

// Vec3 is a 3-component vector with elements of a single numeric type.
//
// Like Vec2, values are comparable and == is exact component-wise equality.
type Vec3[T Number] struct {
	X, Y, Z T
}

// V3 returns the vector (x, y, z).
func V3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Zero3 returns the 3D vector with every component set to the additive
// identity of T.
func Zero3[T Number]() Vec3[T] {
	return Vec3[T]{}
}

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// AddScalar returns the vector with s added to every component.
func (v Vec3[T]) AddScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// SubScalar returns the vector with s subtracted from every component.
func (v Vec3[T]) SubScalar(s T) Vec3[T] {
	return Vec3[T]{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// Scale returns v scaled by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns v with every component divided by s. No zero check, see
// Vec2.Div.
func (v Vec3[T]) Div(s T) Vec3[T] {
	return Vec3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns -v. For unsigned element types negation is modular.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product v ⋅ w.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w: the vector perpendicular to both
// operands with magnitude equal to the parallelogram area, direction by the
// right-hand rule. Anti-commutative: v.Cross(w) == w.Cross(v).Neg().
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// XY returns the first two components as a Vec2.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// XZ returns the x and z components as a Vec2.
func (v Vec3[T]) XZ() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Z}
}

// YZ returns the y and z components as a Vec2.
func (v Vec3[T]) YZ() Vec2[T] {
	return Vec2[T]{X: v.Y, Y: v.Z}
}

// String returns the components with their names in declared order.
func (v Vec3[T]) String() string {
	return fmt.Sprintf("x: %v, y: %v, z: %v", v.X, v.Y, v.Z)
}
