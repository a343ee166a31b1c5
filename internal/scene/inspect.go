package scene

import (
	"vista/internal/river"
	"vista/internal/sky"
)

// Probe describes how a pixel was produced, for debug overlays and render
// statistics.
type Probe struct {
	Hit Hit
	// River is the river mask for ground hits.
	River float64
	// Bows is the combined gated rainbow intensity for sky hits.
	Bows float64
}

// Inspect resolves pixel (px, py) without shading it.
func (c *Compositor) Inspect(p Params, px, py int) Probe {
	ray := c.Ray(p, px, py)
	probe := Probe{Hit: c.Resolve(ray)}
	switch probe.Hit.Kind {
	case HitGround:
		_, pos := GroundPoint(ray.Dir)
		probe.River = river.Mask(pos, p.Time)
	case HitSky:
		probe.Bows = sky.EvaluateBows(ray.Dir, p.SunDir, p.Precipitation).Strength()
	}
	return probe
}

// Coverage counts how many pixels of a frame take each render path.
func (c *Compositor) Coverage(p Params) map[HitKind]int {
	p = p.Sanitize()
	out := map[HitKind]int{}
	for y := 0; y < p.Size.H; y++ {
		for x := 0; x < p.Size.W; x++ {
			out[c.Resolve(c.Ray(p, x, y)).Kind]++
		}
	}
	return out
}
