package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"vista/internal/noise"
	"vista/internal/river"
	"vista/internal/sky"
	"vista/internal/terrain"
)

const (
	cameraHeight   = 2.0
	minGroundSlope = 1e-4
	groundFogRate  = 0.02
)

// HitKind names the render path chosen for a pixel.
type HitKind uint8

const (
	HitSky HitKind = iota
	HitMountain
	HitGround
)

func (k HitKind) String() string {
	switch k {
	case HitMountain:
		return "mountain"
	case HitGround:
		return "ground"
	default:
		return "sky"
	}
}

// Hit is the resolved render path for one ray. Layer and Sample are only set
// for mountains.
type Hit struct {
	Kind   HitKind
	Layer  terrain.Layer
	Sample terrain.Sample
}

// LayerFinder locates the mountain layer covering a view direction.
type LayerFinder interface {
	Find(dir mgl64.Vec3) (terrain.Layer, terrain.Sample, bool)
}

// Compositor turns pixels into colors. The zero value uses the default
// terrain model and field of view.
type Compositor struct {
	Terrain LayerFinder
	FOV     float64
}

func (c *Compositor) terrain() LayerFinder {
	if c.Terrain == nil {
		return terrain.Model{}
	}
	return c.Terrain
}

func (c *Compositor) fov() float64 {
	if c.FOV <= 0 || c.FOV >= 180 {
		return DefaultFOV
	}
	return c.FOV
}

// Ray returns the view ray through pixel (px, py).
func (c *Compositor) Ray(p Params, px, py int) ViewRay {
	x, y := PixelNDC(px, py, p.Size)
	return NewViewRay(x, y, p.Size.Aspect(), c.fov())
}

// Resolve picks exactly one render path for ray. Rays below the horizon go
// to the ground without consulting the terrain.
func (c *Compositor) Resolve(ray ViewRay) Hit {
	y := ray.Dir[1]
	if y < terrain.MinElevation {
		return Hit{Kind: HitGround}
	}
	if terrain.Eligible(y) {
		if l, s, ok := c.terrain().Find(ray.Dir); ok {
			return Hit{Kind: HitMountain, Layer: l, Sample: s}
		}
	}
	return Hit{Kind: HitSky}
}

// Shade returns the linear color for a resolved hit, before tone mapping.
func (c *Compositor) Shade(hit Hit, ray ViewRay, p Params) mgl64.Vec3 {
	dir := ray.Dir
	skyColor := sky.Color(dir, p.SunDir, p.Precipitation)

	switch hit.Kind {
	case HitMountain:
		return terrain.ShadeLayer(hit.Layer, hit.Sample, dir, p.SunDir, p.Precipitation, sky.Horizon)
	case HitGround:
		dist, pos := GroundPoint(dir)
		ground := terrain.GroundColor(pos)
		water := river.WaterColor(pos, p.Time, skyColor)
		col := noise.MixVec3(ground, water, river.Mask(pos, p.Time))
		fog := noise.Clamp01(1 - math.Exp(-dist*groundFogRate))
		return noise.MixVec3(col, sky.Horizon, fog)
	default:
		return sky.Rainbow(dir, p.SunDir, p.Precipitation, skyColor)
	}
}

// Pixel runs the whole pipeline for pixel (px, py) and returns a color in
// [0, 1].
func (c *Compositor) Pixel(p Params, px, py int) mgl64.Vec3 {
	ray := c.Ray(p, px, py)
	return ToneMap(c.Shade(c.Resolve(ray), ray, p))
}

// GroundPoint intersects a downward ray with the ground plane below the
// camera. It returns the distance along the ray and the ground position as
// (lateral, forward).
func GroundPoint(dir mgl64.Vec3) (float64, mgl64.Vec2) {
	dist := cameraHeight / math.Max(math.Abs(dir[1]), minGroundSlope)
	return dist, mgl64.Vec2{dir[0] * dist, -dir[2] * dist}
}

// ToneMap applies the output curve and clamps to [0, 1]. Non-finite and
// negative channels become 0, +Inf becomes 1.
func ToneMap(c mgl64.Vec3) mgl64.Vec3 {
	var out mgl64.Vec3
	for i, v := range c {
		if !(v > 0) {
			continue
		}
		v = math.Pow(math.Pow(v, 0.95), 1/2.2)
		out[i] = math.Min(v, 1)
	}
	return out
}
