package vecmath

// Number is the element-type constraint shared by all vector types: any
// integer or floating-point type, including named types with one of those
// underlying types. Every Number supports the four arithmetic operators and
// comparison with ==, its Go zero value is the additive identity, and it is
// freely copyable, which is everything the vector operations rely on.
//
// Arithmetic edge behavior belongs to the element type and passes through
// untouched: integer overflow wraps, integer division by zero panics at
// runtime, floating-point operations follow IEEE-754 (±Inf, NaN).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float restricts to floating-point element types. Only the tolerance-based
// comparison functions use it; the core operations accept any Number.
type Float interface {
	~float32 | ~float64
}
