package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"vista/internal/noise"
)

var (
	snowColor   = mgl64.Vec3{0.9, 0.9, 0.95}
	rockColor   = mgl64.Vec3{0.3, 0.25, 0.2}
	slopeColor  = mgl64.Vec3{0.2, 0.15, 0.1}
	alpineGrass = mgl64.Vec3{0.1, 0.35, 0.1}
	hazeTint    = mgl64.Vec3{0.1, 0.2, 0.35}

	dirtColor    = mgl64.Vec3{0.2, 0.15, 0.1}
	dryGrass     = mgl64.Vec3{0.3, 0.35, 0.1}
	healthyGrass = mgl64.Vec3{0.05, 0.25, 0.05}
)

const (
	ambientLight   = 0.6
	diffuseWeight  = 0.4
	vegetationFrom = 0.6
)

// ShadeLayer colors a mountain hit. horizon is the sky color the layer fades
// into with distance.
func ShadeLayer(l Layer, s Sample, dir, sunDir mgl64.Vec3, precipitation float64, horizon mgl64.Vec3) mgl64.Vec3 {
	diffuse := math.Max(s.Normal.Dot(sunDir), 0)
	diffuse *= diffuse

	valley := math.Max(0, 0.2-s.Height)
	ao := mgl64.Clamp(1-math.Pow(valley*5, 2)*0.5, 0.5, 1)
	lighting := diffuse*diffuseWeight + ambientLight*ao

	c := surfaceColor(l, s, dir)
	c = noise.MixVec3(c, snowColor, SnowCover(l, s.Height, precipitation))
	c = c.Mul(lighting)
	c = noise.MixVec3(c, hazeTint, HazeWeight(l))
	return noise.MixVec3(c, horizon, FogAmount(l, precipitation))
}

// surfaceColor is the unlit rock, with alpine grass on the far layers.
func surfaceColor(l Layer, s Sample, dir mgl64.Vec3) mgl64.Vec3 {
	xScaled := dir[0] / l.Compression()
	freq := noise.Mix(1, 2, noise.Smoothstep(0, 0.2, s.Height))
	streaks := noise.Noise(mgl64.Vec2{xScaled * freq, dir[1] * 15})

	c := rockColor
	c = noise.MixVec3(c, slopeColor, noise.Smoothstep(0.6, 0.9, streaks)*0.5)
	c = noise.MixVec3(c, rockColor, noise.Smoothstep(0.3, 0.7, s.Normal[1]))

	if HasAlpineGrass(l) {
		c = noise.MixVec3(c, alpineGrass, noise.Smoothstep(0, 0.1, s.Height))
	}
	return c
}

// HasAlpineGrass reports whether grass grows on l.
func HasAlpineGrass(l Layer) bool {
	return l.Fraction > vegetationFrom
}

// SnowCover is the snow weight at height on l. Wetter weather pushes the
// snow line up; far layers carry less snow.
func SnowCover(l Layer, height, precipitation float64) float64 {
	snow := noise.Smoothstep(0.1, 0.2+precipitation*0.05, height)
	return snow * (1 - l.Fraction*0.3)
}

// HazeWeight is how strongly l is tinted toward the blue haze.
func HazeWeight(l Layer) float64 {
	return math.Pow(1-l.Fraction, 3) * 0.4
}

// FogAmount is how far l fades toward the horizon color.
func FogAmount(l Layer, precipitation float64) float64 {
	distance := 1 + l.Fraction*4
	density := 4 + precipitation*5
	return 1 - math.Exp(-noise.Smoothstep(0, 1, distance*0.02)*density)
}

// GroundColor returns the grass and dirt color of the valley floor at a
// ground-plane position.
func GroundColor(pos mgl64.Vec2) mgl64.Vec3 {
	base := noise.FBM(pos.Mul(1.5))
	detail := noise.Noise(pos.Mul(30))

	c := noise.MixVec3(healthyGrass, dryGrass, base*0.7)
	c = noise.MixVec3(dirtColor, c, noise.Smoothstep(0.2, 0.4, base))
	return c.Mul(0.7 + 0.6*detail)
}
