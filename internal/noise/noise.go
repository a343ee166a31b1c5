// Package noise implements the lattice value noise and fractal sums every
// procedural layer of the landscape is built from.
package noise

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const fbmOctaves = 6

var (
	hashScale  = mgl64.Vec2{123.34, 456.21}
	fbmRotate  = mgl64.Rotate2D(0.5)
	fbmShift   = mgl64.Vec2{100, 100}
	hashOffset = 45.32
)

// Hash maps a 2D coordinate to a pseudo-random value in [0, 1).
func Hash(p mgl64.Vec2) float64 {
	q := mgl64.Vec2{Fract(p[0] * hashScale[0]), Fract(p[1] * hashScale[1])}
	d := q.Dot(mgl64.Vec2{q[0] + hashOffset, q[1] + hashOffset})
	q[0] += d
	q[1] += d
	return Fract(q[0] * q[1])
}

// Noise interpolates Hash between the four lattice corners around p.
func Noise(p mgl64.Vec2) float64 {
	ix, iy := math.Floor(p[0]), math.Floor(p[1])
	fx, fy := p[0]-ix, p[1]-iy
	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	a := Hash(mgl64.Vec2{ix, iy})
	b := Hash(mgl64.Vec2{ix + 1, iy})
	c := Hash(mgl64.Vec2{ix, iy + 1})
	d := Hash(mgl64.Vec2{ix + 1, iy + 1})
	return Mix(Mix(a, b, ux), Mix(c, d, ux), uy)
}

// FBM sums six rotated octaves of Noise, doubling frequency and halving
// amplitude each octave.
func FBM(p mgl64.Vec2) float64 {
	v := 0.0
	a := 0.5
	for i := 0; i < fbmOctaves; i++ {
		v += a * Noise(p)
		p = fbmRotate.Mul2x1(p).Mul(2).Add(fbmShift)
		a *= 0.5
	}
	return v
}
