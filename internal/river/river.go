// Package river generates the meandering river that cuts through the valley
// floor. Ground positions are (lateral x, forward distance z) pairs on the
// ground plane, with z growing away from the camera.
package river

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"vista/internal/noise"
)

const (
	nearWidth = 0.6
	farWidth  = 0.05
	flowSpeed = 1.0
)

var waterBase = mgl64.Vec3{0.1, 0.25, 0.5}

// Centerline returns the lateral offset of the river's center at forward
// distance z. Meanders fade out between z=5 and z=20 so the river settles
// toward the vanishing point.
func Centerline(z float64) float64 {
	curve := math.Sin(z*0.5)*0.5 +
		math.Sin(z*1.5)*0.2 +
		math.Sin(z*3.0)*0.05
	return curve * (1 - noise.Smoothstep(5, 20, z))
}

// Width returns the river's half width at forward distance z.
func Width(z float64) float64 {
	return noise.Mix(nearWidth, farWidth, noise.Smoothstep(0, 15, z))
}

// EdgeSoftness is the width of the bank blend; wide water gets softer banks.
func EdgeSoftness(width float64) float64 {
	return 0.05 + width*0.1
}

// Mask returns 1 inside the river, 0 on grass and a smooth ramp across the
// banks. time is accepted for symmetry with WaterColor; the mask never moves.
func Mask(pos mgl64.Vec2, time float64) float64 {
	dist := math.Abs(pos[0] - Centerline(pos[1]))
	w := Width(pos[1])
	return noise.Smoothstep(w+EdgeSoftness(w), w, dist)
}

// WaterColor tints the water toward the sky and overlays a ripple pattern
// that drifts downstream with time.
func WaterColor(pos mgl64.Vec2, time float64, sky mgl64.Vec3) mgl64.Vec3 {
	flow := pos.Mul(0.8).Add(mgl64.Vec2{0, time * flowSpeed})
	ripple := noise.FBM(flow)
	c := noise.MixVec3(waterBase, sky, 0.4)
	return c.Add(mgl64.Vec3{ripple, ripple, ripple}.Mul(0.1))
}
