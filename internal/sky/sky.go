// Package sky shades everything above the horizon: the zenith gradient, the
// glow around the sun and the spectral double rainbow.
package sky

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"vista/internal/noise"
)

// Fixed sky palette.
var (
	Zenith  = mgl64.Vec3{0.1, 0.2, 0.4}
	Horizon = mgl64.Vec3{0.4, 0.5, 0.6}
	SunTint = mgl64.Vec3{1.0, 0.8, 0.5}
)

const sunGlowSigma = 3.0

// AngleDeg returns the angle between two unit vectors in degrees.
func AngleDeg(a, b mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Acos(mgl64.Clamp(a.Dot(b), -1, 1)))
}

// SunGlow is the Gaussian halo around the sun, dimmed by overcast.
func SunGlow(dir, sunDir mgl64.Vec3, precipitation float64) float64 {
	a := AngleDeg(dir, sunDir)
	g := math.Exp(-0.5 * (a * a) / (sunGlowSigma * sunGlowSigma))
	return g * 1.2 * (1 - precipitation*0.5)
}

// Color returns the sky behind everything else for view direction dir.
func Color(dir, sunDir mgl64.Vec3, precipitation float64) mgl64.Vec3 {
	t := math.Pow(math.Max(dir[1]*0.5+0.5, 0), 0.7)
	c := noise.MixVec3(Horizon, Zenith, t)
	return c.Add(SunTint.Mul(SunGlow(dir, sunDir, precipitation)))
}
