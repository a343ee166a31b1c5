package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"vista/internal/scene"
)

func TestSnapshotSupersampledSize(t *testing.T) {
	sc := scene.DefaultConfig()
	sc.Width, sc.Height = 12, 8
	img, err := snapshot(context.Background(), sc, 2, 2)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("bounds = %v, want 12x8", b)
	}
}

func TestWritePNG(t *testing.T) {
	sc := scene.DefaultConfig()
	sc.Width, sc.Height = 6, 4
	img, err := snapshot(context.Background(), sc, 1, 1)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 6 {
		t.Fatalf("width = %d", decoded.Bounds().Dx())
	}
}
