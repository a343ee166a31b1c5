package main

import (
	"context"
	"os"
	"testing"

	"vista/internal/core"
	"vista/internal/scene"
)

func TestParseList(t *testing.T) {
	got, err := parseList(" 0, 0.5 ,1,")
	if err != nil {
		t.Fatalf("parseList: %v", err)
	}
	if len(got) != 3 || got[1] != 0.5 {
		t.Fatalf("got %v", got)
	}
	if _, err := parseList("a"); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := parseList(" , "); err == nil {
		t.Fatalf("expected empty list error")
	}
}

func TestMeanLuminance(t *testing.T) {
	f := core.NewFrame(2, 1)
	f.SetRGB(0, 0, 1, 1, 1)
	f.SetRGB(1, 0, 0, 0, 0)
	if got := meanLuminance(f); got < 0.4999 || got > 0.5001 {
		t.Fatalf("luminance = %v, want 0.5", got)
	}
}

func TestRenderJobCoverageAndOutput(t *testing.T) {
	sc := scene.DefaultConfig()
	sc.Width, sc.Height = 16, 12
	dir := t.TempDir()
	res := renderJob(context.Background(), sc, job{rain: 0.5, time: 2}, dir)
	if res.err != nil {
		t.Fatalf("renderJob: %v", res.err)
	}
	total := 0
	for _, n := range res.coverage {
		total += n
	}
	if total != 16*12 {
		t.Fatalf("coverage covers %d pixels, want %d", total, 16*12)
	}
	if res.luminance <= 0 || res.luminance > 1 {
		t.Fatalf("luminance = %v", res.luminance)
	}
	if _, err := os.Stat(res.path); err != nil {
		t.Fatalf("frame not written: %v", err)
	}
}
