package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/vecmath"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Scalar returns a pseudo-random element drawn from the integers in
// [-bound, bound], converted to T. Integer-valued and bounded means every
// floating-point instantiation represents the value exactly; unsigned
// instantiations receive the value modulo 2^bits.
//
// Methods cannot carry type parameters, hence the package-level functions
// taking the RNG as first argument.
func Scalar[T vecmath.Number](r *RNG, bound int) T {
	return T(r.Intn(2*bound+1) - bound)
}

// NonZeroScalar is Scalar constrained away from zero, for divisors. Keep
// bound well inside the element type's range so the modular image of a
// negative draw cannot land on zero either.
func NonZeroScalar[T vecmath.Number](r *RNG, bound int) T {
	for {
		n := r.Intn(2*bound+1) - bound
		if n != 0 {
			return T(n)
		}
	}
}

// RandVec2 returns a random 2D vector with components from Scalar.
func RandVec2[T vecmath.Number](r *RNG, bound int) vecmath.Vec2[T] {
	return vecmath.V2(Scalar[T](r, bound), Scalar[T](r, bound))
}

// RandVec3 returns a random 3D vector with components from Scalar.
func RandVec3[T vecmath.Number](r *RNG, bound int) vecmath.Vec3[T] {
	return vecmath.V3(Scalar[T](r, bound), Scalar[T](r, bound), Scalar[T](r, bound))
}

// RandVec4 returns a random 4D vector with components from Scalar.
func RandVec4[T vecmath.Number](r *RNG, bound int) vecmath.Vec4[T] {
	return vecmath.V4(Scalar[T](r, bound), Scalar[T](r, bound), Scalar[T](r, bound), Scalar[T](r, bound))
}
