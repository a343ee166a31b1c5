package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"vista/internal/core"
)

// DefaultFOV is the vertical field of view in degrees.
const DefaultFOV = 75.0

// ViewRay is the unit direction seen through one pixel. The camera looks
// down -Z with +Y up.
type ViewRay struct {
	Dir mgl64.Vec3
}

// NewViewRay builds the ray through normalized device coordinates
// (ndcX, ndcY) in [-1, 1].
func NewViewRay(ndcX, ndcY, aspect, fovDeg float64) ViewRay {
	half := math.Tan(mgl64.DegToRad(fovDeg) * 0.5)
	d := mgl64.Vec3{ndcX * half * aspect, ndcY * half, -1}
	return ViewRay{Dir: d.Normalize()}
}

// PixelNDC maps the center of pixel (px, py) to normalized device
// coordinates. Row 0 is the top of the image.
func PixelNDC(px, py int, size core.Size) (float64, float64) {
	w, h := float64(max(size.W, 1)), float64(max(size.H, 1))
	x := (float64(px)+0.5)/w*2 - 1
	y := 1 - (float64(py)+0.5)/h*2
	return x, y
}
