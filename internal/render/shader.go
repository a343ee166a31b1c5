package render

import (
	_ "embed"

	"vista/internal/scene"
	"vista/internal/sky"
)

//go:embed landscape.kage
var landscapeKage []byte

// LandscapeShaderSource returns the Kage source of the GPU landscape path.
func LandscapeShaderSource() []byte { return landscapeKage }

// LandscapeUniforms returns the shader uniforms for a w*h frame of p. Bow
// geometry and weights come from the sky package so both render paths share
// them.
func LandscapeUniforms(p scene.Params, fov float64, w, h int) map[string]any {
	p = p.Sanitize()
	if fov <= 0 || fov >= 180 {
		fov = scene.DefaultFOV
	}
	return map[string]any{
		"Time":       float32(p.Time),
		"Rain":       float32(p.Precipitation),
		"SunDir":     []float32{float32(p.SunDir[0]), float32(p.SunDir[1]), float32(p.SunDir[2])},
		"Resolution": []float32{float32(w), float32(h)},
		"FOV":        float32(fov),
		"Bows": []float32{
			sky.PrimaryRadius, sky.PrimaryDispersion,
			sky.SecondaryRadius, sky.SecondaryDispersion,
		},
		"BowWeights": []float32{sky.PrimaryWeight, sky.SecondaryWeight},
	}
}
