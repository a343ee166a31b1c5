package noise

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestHashRange(t *testing.T) {
	for y := -40; y < 40; y++ {
		for x := -40; x < 40; x++ {
			p := mgl64.Vec2{float64(x) * 0.37, float64(y) * 1.13}
			h := Hash(p)
			if h < 0 || h >= 1 {
				t.Fatalf("Hash(%v) = %v, want [0,1)", p, h)
			}
		}
	}
}

func TestNoiseMatchesHashOnLattice(t *testing.T) {
	for j := -12; j <= 12; j++ {
		for i := -12; i <= 12; i++ {
			p := mgl64.Vec2{float64(i), float64(j)}
			if got, want := Noise(p), Hash(p); got != want {
				t.Fatalf("Noise(%d,%d) = %v, want Hash = %v", i, j, got, want)
			}
		}
	}
}

func TestNoiseContinuous(t *testing.T) {
	points := []mgl64.Vec2{
		{0.25, 0.75},
		{3, 7},
		{-1.5, 2.999999},
		{10.0001, -4},
		{123.456, 789.012},
	}
	for _, p := range points {
		base := Noise(p)
		for _, delta := range []float64{1e-3, 1e-5, 1e-7} {
			for _, dir := range []mgl64.Vec2{{1, 0}, {0, 1}, {-1, -1}} {
				q := p.Add(dir.Mul(delta))
				if diff := math.Abs(Noise(q) - base); diff > 20*delta {
					t.Fatalf("Noise jumps by %v between %v and %v", diff, p, q)
				}
			}
		}
	}
}

func TestNoiseRange(t *testing.T) {
	for i := 0; i < 2000; i++ {
		p := mgl64.Vec2{float64(i) * 0.173, float64(i%37) * 0.311}
		n := Noise(p)
		if n < 0 || n > 1 {
			t.Fatalf("Noise(%v) = %v out of [0,1]", p, n)
		}
	}
}

func TestFBMDeterministicAndBounded(t *testing.T) {
	// Six octaves of amplitude 0.5, 0.25, ... cannot exceed 63/64.
	const ceiling = 63.0 / 64.0
	for i := 0; i < 500; i++ {
		p := mgl64.Vec2{float64(i) * 0.071, -float64(i) * 0.033}
		a := FBM(p)
		if b := FBM(p); a != b {
			t.Fatalf("FBM(%v) not deterministic: %v vs %v", p, a, b)
		}
		if a < 0 || a > ceiling {
			t.Fatalf("FBM(%v) = %v out of [0,%v]", p, a, ceiling)
		}
	}
}

func TestSmoothstepReversedEdges(t *testing.T) {
	if got := Smoothstep(1, 0, 0); got != 1 {
		t.Fatalf("reversed smoothstep at lower edge = %v, want 1", got)
	}
	if got := Smoothstep(1, 0, 1); got != 0 {
		t.Fatalf("reversed smoothstep at upper edge = %v, want 0", got)
	}
	if got := Smoothstep(0, 1, 0.5); got != 0.5 {
		t.Fatalf("smoothstep midpoint = %v, want 0.5", got)
	}
}

func TestClamp01NaN(t *testing.T) {
	if got := Clamp01(math.NaN()); got != 0 {
		t.Fatalf("Clamp01(NaN) = %v, want 0", got)
	}
	if got := Clamp01(math.Inf(1)); got != 1 {
		t.Fatalf("Clamp01(+Inf) = %v, want 1", got)
	}
	if got := Fract(-0.25); got != 0.75 {
		t.Fatalf("Fract(-0.25) = %v, want 0.75", got)
	}
}
