package noise

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Fract returns the fractional part of x, always in [0, 1).
func Fract(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		// x just below an integer can round up to exactly 1.
		return 0
	}
	return f
}

// Mix linearly interpolates between a and b.
func Mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MixVec3 linearly interpolates each component of a and b.
func MixVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{Mix(a[0], b[0], t), Mix(a[1], b[1], t), Mix(a[2], b[2], t)}
}

// Smoothstep performs Hermite interpolation between edge0 and edge1. Reversed
// edges produce a falling ramp.
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Clamp01 limits x to [0, 1]. NaN maps to 0.
func Clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
