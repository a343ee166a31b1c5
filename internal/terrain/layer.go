package terrain

import "github.com/go-gl/mathgl/mgl64"

// LayerCount is the number of parallax mountain layers.
const LayerCount = 5

// Band of view elevations in which mountains may be painted.
const (
	MinElevation = -0.01
	MaxElevation = 0.5
)

const normalEpsilon = 0.002

// Layer identifies one parallax depth slice. Index 0 is nearest.
type Layer struct {
	Index    int
	Fraction float64
}

// Sample is the silhouette height and surface normal of a layer at one
// view direction.
type Sample struct {
	Height float64
	Normal mgl64.Vec3
}

// NewLayer returns the layer at the given depth index.
func NewLayer(index int) Layer {
	return Layer{Index: index, Fraction: float64(index) / LayerCount}
}

// Layers lists every layer from farthest to nearest, the order in which they
// are tested.
func Layers() []Layer {
	out := make([]Layer, 0, LayerCount)
	for i := LayerCount - 1; i >= 0; i-- {
		out = append(out, NewLayer(i))
	}
	return out
}

// Seed feeds Height so every layer gets its own ridge line.
func (l Layer) Seed() float64 { return l.Fraction * 23 }

// HeightScale flattens farther layers.
func (l Layer) HeightScale() float64 { return 1 - l.Fraction*0.3 }

// VerticalShift lowers farther layers toward the horizon.
func (l Layer) VerticalShift() float64 { return -l.Fraction * 0.04 }

// Compression divides the horizontal view coordinate to fake parallax.
func (l Layer) Compression() float64 { return 1 + l.Fraction*1.5 }

// Silhouette returns the layer's ridge height above the view coordinate x.
func (l Layer) Silhouette(viewX float64) float64 {
	return Height(viewX/l.Compression(), l.Seed())*l.HeightScale() + l.VerticalShift()
}

// Model evaluates the mountain layers. The zero value is ready to use.
type Model struct{}

// Sample computes the silhouette height of layer l under dir together with a
// normal estimated from central differences.
func (Model) Sample(dir mgl64.Vec3, l Layer) Sample {
	h := l.Silhouette(dir[0])
	hL := l.Silhouette(dir[0] - normalEpsilon)
	hR := l.Silhouette(dir[0] + normalEpsilon)

	tangent := mgl64.Vec3{normalEpsilon * 2 / l.Compression(), hR - hL, 0}.Normalize()
	normal := mgl64.Vec3{0, 0, 1}.Cross(tangent).Normalize()
	return Sample{Height: h, Normal: normal}
}

// Eligible reports whether a view elevation lies in the mountain band.
func Eligible(y float64) bool {
	return y > MinElevation && y < MaxElevation
}

// Find scans the layers from farthest to nearest and returns the first one
// whose silhouette rises above the view direction. Layers behind the hit are
// never sampled.
func (m Model) Find(dir mgl64.Vec3) (Layer, Sample, bool) {
	if !Eligible(dir[1]) {
		return Layer{}, Sample{}, false
	}
	for i := LayerCount - 1; i >= 0; i-- {
		l := NewLayer(i)
		if dir[1] < l.Silhouette(dir[0]) {
			return l, m.Sample(dir, l), true
		}
	}
	return Layer{}, Sample{}, false
}
