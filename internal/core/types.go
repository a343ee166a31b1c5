package core

import "sort"

// Size describes the pixel dimensions of a frame.
type Size struct {
	W int
	H int
}

// Aspect returns width over height, or 1 for a degenerate size.
func (s Size) Aspect() float64 {
	if s.W <= 0 || s.H <= 0 {
		return 1
	}
	return float64(s.W) / float64(s.H)
}

// Preset is a named set of scene overrides in key=value form.
type Preset struct {
	Name        string
	Description string
	Values      map[string]string
}

var presets = map[string]Preset{}

// Register adds a preset under its name.
func Register(p Preset) {
	if p.Name == "" {
		return
	}
	presets[p.Name] = p
}

// Presets exposes the registry of available presets.
func Presets() map[string]Preset {
	return presets
}

// PresetNames lists registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
