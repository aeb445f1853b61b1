package vecmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproxEqual2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2[float64]
		tol      float64
		expected bool
	}{
		{"Identical", V2(1.0, 2.0), V2(1.0, 2.0), 0, true},
		{"WithinTol", V2(1.0, 2.0), V2(1.0 + 1e-10, 2.0 - 1e-10), 1e-9, true},
		{"OutsideTol", V2(1.0, 2.0), V2(1.1, 2.0), 1e-9, false},
		{"OneComponentOff", V2(1.0, 2.0), V2(1.0, 3.0), 1e-9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApproxEqual2(tt.a, tt.b, tt.tol))
		})
	}

	t.Run("Rounding", func(t *testing.T) {
		// Runtime 0.1 + 0.2 drifts from 0.3; the tolerance comparison absorbs it.
		got := V2(0.1, 0.0).AddScalar(0.2)
		assert.False(t, got == V2(0.3, 0.2))
		assert.True(t, ApproxEqual2(got, V2(0.3, 0.2), 1e-9))
	})
}

func TestApproxEqual3(t *testing.T) {
	a := V3(1.0, 2.0, 3.0)
	assert.True(t, ApproxEqual3(a, a, 0))
	assert.True(t, ApproxEqual3(a, V3(1.0+1e-12, 2.0, 3.0-1e-12), 1e-9))
	assert.False(t, ApproxEqual3(a, V3(1.0, 2.0, 3.01), 1e-9))
}

func TestApproxEqual4(t *testing.T) {
	a := V4(1.0, 2.0, 3.0, 4.0)
	assert.True(t, ApproxEqual4(a, a, 0))
	assert.True(t, ApproxEqual4(a, V4(1.0, 2.0+1e-12, 3.0, 4.0), 1e-9))
	assert.False(t, ApproxEqual4(a, V4(1.0, 2.0, 3.0, 4.5), 1e-9))
}

func TestApproxEqual_NaN(t *testing.T) {
	nan := math.NaN()

	// NaN components never compare equal, no matter the tolerance.
	assert.False(t, ApproxEqual2(V2(nan, 0.0), V2(nan, 0.0), math.MaxFloat64))
	assert.False(t, ApproxEqual3(V3(0.0, nan, 0.0), V3(0.0, nan, 0.0), math.MaxFloat64))
	assert.False(t, ApproxEqual4(V4(0.0, 0.0, 0.0, nan), V4(0.0, 0.0, 0.0, nan), math.MaxFloat64))
}

func TestApproxEqual_Inf(t *testing.T) {
	inf := math.Inf(1)

	// Equal infinities are exactly equal, so tolerance does not matter.
	assert.True(t, ApproxEqual2(V2(inf, 1.0), V2(inf, 1.0), 0))
	assert.False(t, ApproxEqual2(V2(inf, 1.0), V2(-inf, 1.0), math.MaxFloat64))

	// A finite value is never within a finite tolerance of infinity.
	assert.False(t, ApproxEqual2(V2(inf, 1.0), V2(1e300, 1.0), 1e9))
}

func TestApproxEqual_Float32(t *testing.T) {
	a := V2[float32](1, 2)
	b := V2[float32](1+1e-7, 2)
	assert.True(t, ApproxEqual2(a, b, 1e-6))
	assert.False(t, ApproxEqual2(a, V2[float32](1.01, 2), 1e-6))
}
