//go:build ebiten

package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"vista/internal/scene"
)

// NewLandscapeShader compiles the GPU landscape path. Compilation errors are
// returned with the compiler's diagnostic.
func NewLandscapeShader() (*ebiten.Shader, error) {
	return compileShader("landscape", landscapeKage)
}

func compileShader(name string, src []byte) (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", name, err)
	}
	return s, nil
}

// DrawLandscape renders a full frame of p onto dst with the GPU shader.
func DrawLandscape(dst *ebiten.Image, shader *ebiten.Shader, p scene.Params, fov float64) {
	b := dst.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = LandscapeUniforms(p, fov, b.Dx(), b.Dy())
	dst.DrawRectShader(b.Dx(), b.Dy(), shader, op)
}
