package terrain

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestHeightDeterministicAndFloored(t *testing.T) {
	for _, seed := range []float64{0, 4.6, 9.2, 13.8, 18.4} {
		for i := -500; i <= 500; i++ {
			x := float64(i) * 0.0031
			a := Height(x, seed)
			b := Height(x, seed)
			if math.Float64bits(a) != math.Float64bits(b) {
				t.Fatalf("Height(%v,%v) not bit-identical: %v vs %v", x, seed, a, b)
			}
			if a < Floor {
				t.Fatalf("Height(%v,%v) = %v below floor %v", x, seed, a, Floor)
			}
		}
	}
}

func TestLayersOrderedFarToNear(t *testing.T) {
	layers := Layers()
	if len(layers) != LayerCount {
		t.Fatalf("got %d layers, want %d", len(layers), LayerCount)
	}
	for i, l := range layers {
		want := LayerCount - 1 - i
		if l.Index != want {
			t.Fatalf("layer %d has index %d, want %d", i, l.Index, want)
		}
		if l.Fraction < 0 || l.Fraction > 1 {
			t.Fatalf("layer %d fraction %v out of [0,1]", l.Index, l.Fraction)
		}
	}
	near, far := NewLayer(0), NewLayer(4)
	if far.HeightScale() >= near.HeightScale() {
		t.Fatal("far layers must be flatter than near layers")
	}
	if far.Compression() <= near.Compression() {
		t.Fatal("far layers must be horizontally compressed")
	}
	if far.VerticalShift() >= near.VerticalShift() {
		t.Fatal("far layers must sit lower")
	}
}

func TestSampleNormalUnit(t *testing.T) {
	var m Model
	for _, l := range Layers() {
		for i := -50; i <= 50; i++ {
			dir := mgl64.Vec3{float64(i) * 0.02, 0.05, -1}.Normalize()
			s := m.Sample(dir, l)
			if d := math.Abs(s.Normal.Len() - 1); d > 1e-9 {
				t.Fatalf("normal %v not unit (layer %d)", s.Normal, l.Index)
			}
			if s.Normal[2] != 0 {
				t.Fatalf("normal %v has depth component", s.Normal)
			}
			if s.Normal[1] <= 0 {
				t.Fatalf("normal %v points downward", s.Normal)
			}
		}
	}
}

func TestFindOutsideBand(t *testing.T) {
	var m Model
	for _, y := range []float64{-0.5, -0.01, 0.5, 0.9} {
		dir := mgl64.Vec3{0.1, y, -1}
		if _, _, ok := m.Find(dir); ok {
			t.Fatalf("Find(y=%v) reported a hit outside the mountain band", y)
		}
	}
}

func TestFindPrefersFarthestCoveringLayer(t *testing.T) {
	var m Model
	hits := 0
	for i := -200; i <= 200; i++ {
		x := float64(i) * 0.01
		for _, y := range []float64{-0.005, 0.0, 0.01, 0.03, 0.06} {
			dir := mgl64.Vec3{x, y, -1}
			l, s, ok := m.Find(dir)
			if !ok {
				for _, other := range Layers() {
					if y < other.Silhouette(x) {
						t.Fatalf("x=%v y=%v: layer %d covers the ray but Find missed it", x, y, other.Index)
					}
				}
				continue
			}
			hits++
			if y >= s.Height {
				t.Fatalf("x=%v y=%v: hit layer %d silhouette %v does not cover the ray", x, y, l.Index, s.Height)
			}
			for _, farther := range Layers() {
				if farther.Index <= l.Index {
					break
				}
				if y < farther.Silhouette(x) {
					t.Fatalf("x=%v y=%v: farther layer %d covers the ray but %d won", x, y, farther.Index, l.Index)
				}
			}
		}
	}
	if hits == 0 {
		t.Fatal("expected some rays near the horizon to hit a mountain")
	}
}

func TestShadeLayerFinite(t *testing.T) {
	var m Model
	sun := mgl64.Vec3{0, 0.3, 1}.Normalize()
	horizon := mgl64.Vec3{0.4, 0.5, 0.6}
	for _, l := range Layers() {
		for _, rain := range []float64{0, 0.5, 1} {
			dir := mgl64.Vec3{0.2, 0.01, -1}.Normalize()
			s := m.Sample(dir, l)
			c := ShadeLayer(l, s, dir, sun, rain, horizon)
			for i, v := range c {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1.5 {
					t.Fatalf("layer %d rain %v channel %d = %v", l.Index, rain, i, v)
				}
			}
		}
	}
}

func TestGroundColorVaries(t *testing.T) {
	a := GroundColor(mgl64.Vec2{0.3, 4})
	b := GroundColor(mgl64.Vec2{2.7, 11})
	if a == b {
		t.Fatalf("ground colors at distinct positions should differ, both %v", a)
	}
	for _, c := range []mgl64.Vec3{a, b} {
		for _, v := range c {
			if v < 0 || v > 1 {
				t.Fatalf("ground channel %v out of [0,1]", v)
			}
		}
	}
}

func TestSnowLineRisesWithRain(t *testing.T) {
	for _, l := range Layers() {
		if got := SnowCover(l, 0.09, 0); got != 0 {
			t.Fatalf("layer %d: snow below the line = %v", l.Index, got)
		}
		dry, wet := SnowCover(l, 0.18, 0), SnowCover(l, 0.18, 1)
		if !(wet < dry) {
			t.Fatalf("layer %d: snow at 0.18 dry %v wet %v, want less when wet", l.Index, dry, wet)
		}
		full := 1 - l.Fraction*0.3
		if d := math.Abs(SnowCover(l, 0.3, 1) - full); d > 1e-12 {
			t.Fatalf("layer %d: snow above the line = %v, want %v", l.Index, SnowCover(l, 0.3, 1), full)
		}
	}

	// Through ShadeLayer: undo the fog and the snowier dry peak is brighter.
	l := NewLayer(0)
	s := Sample{Height: 0.18, Normal: mgl64.Vec3{0, 1, 0}}
	dir := mgl64.Vec3{0, 0.1, -1}.Normalize()
	sun := mgl64.Vec3{0, 1, 0}
	horizon := mgl64.Vec3{0.4, 0.5, 0.6}
	dry := unfog(ShadeLayer(l, s, dir, sun, 0, horizon), horizon, FogAmount(l, 0))
	wet := unfog(ShadeLayer(l, s, dir, sun, 1, horizon), horizon, FogAmount(l, 1))
	if dry[0]+dry[1]+dry[2] <= wet[0]+wet[1]+wet[2] {
		t.Fatalf("dry peak %v should be whiter than wet peak %v", dry, wet)
	}
}

func unfog(c, horizon mgl64.Vec3, fog float64) mgl64.Vec3 {
	return c.Sub(horizon.Mul(fog)).Mul(1 / (1 - fog))
}

func TestAlpineGrassOnlyOnFarLayers(t *testing.T) {
	for _, l := range Layers() {
		want := l.Fraction > 0.6
		if HasAlpineGrass(l) != want {
			t.Fatalf("layer %d (fraction %v): grass %v", l.Index, l.Fraction, !want)
		}
	}

	s := Sample{Height: 0.1, Normal: mgl64.Vec3{0, 1, 0}}
	dir := mgl64.Vec3{0.1, 0.05, -1}.Normalize()
	grass := surfaceColor(NewLayer(4), s, dir)
	for i := range grass {
		if math.Abs(grass[i]-alpineGrass[i]) > 1e-12 {
			t.Fatalf("layer 4 surface %v, want alpine grass %v", grass, alpineGrass)
		}
	}
	rock := surfaceColor(NewLayer(3), s, dir)
	if rock[1] >= rock[0] {
		t.Fatalf("layer 3 surface %v should be rock, not green", rock)
	}

	sun := mgl64.Vec3{0, 1, 0}
	gray := mgl64.Vec3{0.5, 0.5, 0.5}
	low := Sample{Height: 0.05, Normal: mgl64.Vec3{0, 1, 0}}
	far := ShadeLayer(NewLayer(4), low, dir, sun, 0, gray)
	near := ShadeLayer(NewLayer(3), low, dir, sun, 0, gray)
	if far[1] <= far[0] {
		t.Fatalf("layer 4 shaded %v should be green", far)
	}
	if near[1] >= near[0] {
		t.Fatalf("layer 3 shaded %v should not be green", near)
	}
}

func TestHazeWeight(t *testing.T) {
	cases := []struct {
		index int
		want  float64
	}{
		{0, 0.4},
		{1, 0.2048},
		{2, 0.0864},
		{3, 0.0256},
		{4, 0.0032},
	}
	for _, tc := range cases {
		if got := HazeWeight(NewLayer(tc.index)); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("layer %d: haze %v, want %v", tc.index, got, tc.want)
		}
	}
}

func TestFogGrowsWithRainAndDistance(t *testing.T) {
	prev := -1.0
	for i := 0; i < LayerCount; i++ {
		l := NewLayer(i)
		dry, wet := FogAmount(l, 0), FogAmount(l, 1)
		if !(wet > dry) || dry <= 0 || wet >= 1 {
			t.Fatalf("layer %d: fog dry %v wet %v", i, dry, wet)
		}
		if dry <= prev {
			t.Fatalf("layer %d: fog %v not above nearer layer %v", i, dry, prev)
		}
		prev = dry
	}

	// Below the snow line rain only changes the fog, so the wet color sits
	// closer to the horizon.
	l := NewLayer(2)
	s := Sample{Height: 0.05, Normal: mgl64.Vec3{0, 1, 0}}
	dir := mgl64.Vec3{-0.2, 0.05, -1}.Normalize()
	sun := mgl64.Vec3{0, 0.3, 1}.Normalize()
	horizon := mgl64.Vec3{1, 1, 1}
	dry := ShadeLayer(l, s, dir, sun, 0, horizon)
	wet := ShadeLayer(l, s, dir, sun, 1, horizon)
	if horizon.Sub(wet).Len() >= horizon.Sub(dry).Len() {
		t.Fatalf("wet %v should be closer to the horizon than dry %v", wet, dry)
	}
}
