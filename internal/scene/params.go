// Package scene composes the noise, terrain, river and sky models into a
// final color per pixel and evaluates whole frames in parallel.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"vista/internal/core"
)

// DefaultSunDir is used whenever a supplied sun direction cannot be
// normalized.
var DefaultSunDir = mgl64.Vec3{0, 0.3, 1}.Normalize()

// Params is everything a frame depends on. It is built by the host once per
// frame and only read during evaluation.
type Params struct {
	Time          float64
	Precipitation float64
	SunDir        mgl64.Vec3
	Size          core.Size
}

// Sanitize returns a copy of p that every evaluation path can consume
// without producing non-finite values.
func (p Params) Sanitize() Params {
	out := p
	if math.IsNaN(out.Time) || math.IsInf(out.Time, 0) || out.Time < 0 {
		out.Time = 0
	}
	out.Precipitation = mgl64.Clamp(out.Precipitation, 0, 1)
	if math.IsNaN(out.Precipitation) {
		out.Precipitation = 0
	}
	out.SunDir = safeNormalize(out.SunDir, DefaultSunDir)
	if out.Size.W < 1 {
		out.Size.W = 1
	}
	if out.Size.H < 1 {
		out.Size.H = 1
	}
	return out
}

// OrbitSun returns the sun direction at elapsed time t: a slow side-to-side
// sweep behind the viewer with a gentle rise and fall.
func OrbitSun(t float64) mgl64.Vec3 {
	a := math.Sin(t*0.1) * 0.5
	return mgl64.Vec3{math.Sin(a), 0.2 + math.Cos(t*0.1)*0.1, math.Cos(a)}.Normalize()
}

func safeNormalize(v, fallback mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-9 || math.IsNaN(l) || math.IsInf(l, 0) {
		return fallback
	}
	return v.Mul(1 / l)
}
