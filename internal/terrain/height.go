// Package terrain models the layered mountain range: a deterministic
// silhouette function, parallax depth layers and their material shading.
package terrain

import (
	"github.com/go-gl/mathgl/mgl64"

	"vista/internal/noise"
)

// Floor is the lowest value Height ever returns.
const Floor = -0.01

var heightRotate = mgl64.Rotate2D(-0.3)

// Height returns the silhouette height at horizontal coordinate x for the
// given seed. Identical inputs always produce identical results.
func Height(x, seed float64) float64 {
	x += seed * 100
	h := 0.0
	h += noise.Noise(heightRotate.Mul2x1(mgl64.Vec2{x * 2, seed * 10})) * 0.2
	h += noise.FBM(heightRotate.Mul2x1(mgl64.Vec2{x*6 + 10, seed * 20})) * 0.1
	h += noise.FBM(heightRotate.Mul2x1(mgl64.Vec2{x*20 - 5, seed * 30})) * 0.05
	h += noise.FBM(heightRotate.Mul2x1(mgl64.Vec2{x * 10, h*5 + seed*5})) * 0.03
	return max(h-0.02, Floor)
}
