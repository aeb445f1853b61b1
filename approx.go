package vecmath

// ApproxEqual2 reports whether every component of a and b differs by at most
// tol. It is a separate, explicitly named operation so that == on vectors
// stays exact; it never treats NaN components as equal.
func ApproxEqual2[T Float](a, b Vec2[T], tol T) bool {
	return within(a.X, b.X, tol) && within(a.Y, b.Y, tol)
}

// ApproxEqual3 is the Vec3 analogue of ApproxEqual2.
func ApproxEqual3[T Float](a, b Vec3[T], tol T) bool {
	return within(a.X, b.X, tol) && within(a.Y, b.Y, tol) && within(a.Z, b.Z, tol)
}

// ApproxEqual4 is the Vec4 analogue of ApproxEqual2.
func ApproxEqual4[T Float](a, b Vec4[T], tol T) bool {
	return within(a.X, b.X, tol) && within(a.Y, b.Y, tol) &&
		within(a.Z, b.Z, tol) && within(a.W, b.W, tol)
}

// within reports a == b or |a-b| <= tol. The exact check comes first so that
// equal infinities compare true without producing Inf-Inf. Any NaN operand
// makes the comparison false.
func within[T Float](a, b, tol T) bool {
	if a == b {
		return true
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
