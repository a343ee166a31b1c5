package ui

import (
	"math"
	"testing"

	"vista/internal/core"
	"vista/internal/scene"
)

type fakeTunable struct {
	values map[string]float64
	sets   int
}

func (f *fakeTunable) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "test",
		Params: []core.Parameter{
			{Key: "rain", Label: "Rain", Type: core.ParamTypeFloat, Value: formatControl(core.ParameterControl{Step: 0.05}, f.values["rain"])},
			{Key: "fps", Label: "FPS", Type: core.ParamTypeInt, Value: formatControl(core.ParameterControl{Type: core.ParamTypeInt}, f.values["fps"])},
		},
	}}}
}

func (f *fakeTunable) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rain", Label: "Rain", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "fps", Label: "FPS", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 3},
		{Key: "missing", Label: "Missing", Type: core.ParamTypeFloat, Step: 1},
	}
}

func (f *fakeTunable) SetFloatParameter(key string, value float64) bool {
	if _, ok := f.values[key]; !ok {
		return false
	}
	f.values[key] = value
	f.sets++
	return true
}

func TestControlsRefreshAndAdjust(t *testing.T) {
	f := &fakeTunable{values: map[string]float64{"rain": 0.95, "fps": 2}}
	states := newControlStates(f)
	refreshControls(states, f.Parameters())

	if !states[0].hasValue || states[0].value != "0.95" {
		t.Fatalf("rain state = %+v", states[0])
	}
	if states[2].hasValue || states[2].value != "--" {
		t.Fatalf("missing parameter should have no value: %+v", states[2])
	}

	if !adjustControl(f, &states[0], 1) {
		t.Fatalf("expected rain to increase")
	}
	if math.Abs(f.values["rain"]-1) > 1e-9 {
		t.Fatalf("rain = %v, want clamped to 1", f.values["rain"])
	}
	if adjustControl(f, &states[0], 1) {
		t.Fatalf("rain already at max should not change")
	}

	if !adjustControl(f, &states[1], 1) || f.values["fps"] != 3 {
		t.Fatalf("fps = %v, want 3", f.values["fps"])
	}
	if states[1].value != "3" {
		t.Fatalf("fps label = %q", states[1].value)
	}
	if adjustControl(f, &states[2], 1) {
		t.Fatalf("control without value should not adjust")
	}
	if f.sets != 2 {
		t.Fatalf("sets = %d, want 2", f.sets)
	}
}

func TestFormatControlPrecision(t *testing.T) {
	cases := []struct {
		step float64
		want string
	}{
		{0.0005, "0.1235"},
		{0.005, "0.123"},
		{0.05, "0.12"},
		{0.25, "0.1"},
	}
	for _, tc := range cases {
		got := formatControl(core.ParameterControl{Type: core.ParamTypeFloat, Step: tc.step}, 0.123456)
		if got != tc.want {
			t.Fatalf("step %v: got %q want %q", tc.step, got, tc.want)
		}
	}
}

func TestFillOverlayPaths(t *testing.T) {
	comp := &scene.Compositor{}
	p := scene.Params{Time: 3, Precipitation: 0.8, SunDir: scene.DefaultSunDir, Size: core.Size{W: 16, H: 24}}
	buf := make([]byte, 4*16*24)
	if !FillOverlay(buf, comp, p, OverlayPaths) {
		t.Fatalf("FillOverlay returned false")
	}
	// Top row looks up above every ridge, bottom row down at the ground.
	top := buf[4*8 : 4*8+4]
	if top[2] != pathPalette[1].B || top[3] != pathPalette[1].A {
		t.Fatalf("top-center pixel = %v, want sky color", top)
	}
	last := buf[len(buf)-4:]
	if last[1] != pathPalette[3].G || last[3] != pathPalette[3].A {
		t.Fatalf("bottom-right pixel = %v, want ground color", last)
	}
}

func TestFillOverlayRejectsBadInput(t *testing.T) {
	comp := &scene.Compositor{}
	p := scene.Params{Size: core.Size{W: 4, H: 4}}
	if FillOverlay(make([]byte, 10), comp, p, OverlayRiver) {
		t.Fatalf("short buffer accepted")
	}
	if FillOverlay(make([]byte, 64), comp, p, OverlayNone) {
		t.Fatalf("OverlayNone should not fill")
	}
}

func TestFillOverlayRainbowNeedsRain(t *testing.T) {
	comp := &scene.Compositor{}
	p := scene.Params{Time: 1, Precipitation: 0, SunDir: scene.DefaultSunDir, Size: core.Size{W: 16, H: 9}}
	buf := make([]byte, 4*16*9)
	if !FillOverlay(buf, comp, p, OverlayRainbow) {
		t.Fatalf("FillOverlay returned false")
	}
	for i := 3; i < len(buf); i += 4 {
		if buf[i] != 0 {
			t.Fatalf("pixel %d has alpha %d without rain", i/4, buf[i])
		}
	}
}

func TestOverlayModeString(t *testing.T) {
	if OverlayLayers.String() != "layers" || OverlayNone.String() != "none" {
		t.Fatalf("unexpected names %q %q", OverlayLayers, OverlayNone)
	}
}
