package core

import (
	"math"
	"testing"
	"time"
)

func TestFrameRGBASharesPixels(t *testing.T) {
	f := NewFrame(4, 3)
	img := f.RGBA()
	f.SetRGB(2, 1, 1, 0.5, 0)

	got := img.RGBAAt(2, 1)
	if got.R != 255 || got.G != 128 || got.B != 0 || got.A != 255 {
		t.Fatalf("image view = %+v, want {255 128 0 255}", got)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}

func TestFrameClampsChannels(t *testing.T) {
	f := NewFrame(1, 1)
	f.SetRGB(0, 0, -3, 7, math.NaN())
	pix := f.Pix()
	if pix[0] != 0 || pix[1] != 255 || pix[2] != 0 || pix[3] != 255 {
		t.Fatalf("pixel = %v, want [0 255 0 255]", pix[:4])
	}
}

func TestNewFrameOpaqueAndFloored(t *testing.T) {
	f := NewFrame(0, -2)
	if f.W != 1 || f.H != 1 {
		t.Fatalf("size = %dx%d, want 1x1", f.W, f.H)
	}
	if f.Pix()[3] != 255 {
		t.Fatal("new frames must be opaque")
	}
}

func TestPresetRegistry(t *testing.T) {
	Register(Preset{Name: ""})
	Register(Preset{Name: "zz-test", Values: map[string]string{"rain": "0.2"}})
	Register(Preset{Name: "aa-test"})
	defer delete(presets, "zz-test")
	defer delete(presets, "aa-test")

	if _, ok := Presets()[""]; ok {
		t.Fatal("empty preset names must be ignored")
	}
	p, ok := Presets()["zz-test"]
	if !ok || p.Values["rain"] != "0.2" {
		t.Fatalf("registered preset missing: %+v", p)
	}
	names := PresetNames()
	ai, zi := -1, -1
	for i, n := range names {
		switch n {
		case "aa-test":
			ai = i
		case "zz-test":
			zi = i
		}
	}
	if ai < 0 || zi < 0 || ai > zi {
		t.Fatalf("names not sorted: %v", names)
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should fire")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired after half a step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire after a full step")
	}

	// A long stall fires once, not once per missed step.
	clock = clock.Add(2 * time.Second)
	if !fs.ShouldStep() {
		t.Fatal("did not fire after a stall")
	}
	if fs.ShouldStep() {
		t.Fatal("replayed missed steps after a stall")
	}

	fs.Trigger()
	if !fs.ShouldStep() {
		t.Fatal("Trigger did not force a step")
	}
	if fs.Rate() != 10 {
		t.Fatalf("rate = %d, want 10", fs.Rate())
	}
	fs.SetRate(0)
	if fs.Rate() != 60 {
		t.Fatalf("rate after SetRate(0) = %d, want 60", fs.Rate())
	}
}

func TestSizeAspect(t *testing.T) {
	if a := (Size{W: 16, H: 8}).Aspect(); a != 2 {
		t.Fatalf("aspect = %v, want 2", a)
	}
	if a := (Size{}).Aspect(); a != 1 {
		t.Fatalf("degenerate aspect = %v, want 1", a)
	}
}
