package ui

import (
	"image/color"

	"vista/internal/render"
	"vista/internal/scene"
	"vista/internal/terrain"
)

// OverlayMode selects a debug visualization drawn over the landscape.
type OverlayMode int

const (
	OverlayNone OverlayMode = iota
	// OverlayPaths colors each pixel by the render path that produced it.
	OverlayPaths
	// OverlayRiver shows the river mask on ground pixels.
	OverlayRiver
	// OverlayRainbow shows the gated rainbow intensity on sky pixels.
	OverlayRainbow
	// OverlayLayers colors mountain pixels by layer index.
	OverlayLayers
)

func (m OverlayMode) String() string {
	switch m {
	case OverlayPaths:
		return "paths"
	case OverlayRiver:
		return "river"
	case OverlayRainbow:
		return "rainbow"
	case OverlayLayers:
		return "layers"
	default:
		return "none"
	}
}

var (
	pathPalette = []color.RGBA{
		{R: 0, G: 0, B: 0, A: 0},
		{R: 70, G: 120, B: 230, A: 150},
		{R: 200, G: 90, B: 60, A: 150},
		{R: 70, G: 190, B: 80, A: 150},
	}
	layerPalette = []color.RGBA{
		{R: 0, G: 0, B: 0, A: 0},
		{R: 230, G: 70, B: 70, A: 170},
		{R: 230, G: 170, B: 60, A: 170},
		{R: 200, G: 230, B: 70, A: 170},
		{R: 70, G: 200, B: 200, A: 170},
		{R: 150, G: 90, B: 230, A: 170},
	}
	riverTint   = color.RGBA{R: 40, G: 200, B: 255, A: 200}
	rainbowTint = color.RGBA{R: 255, G: 60, B: 200, A: 220}
)

// FillOverlay writes the RGBA pixels of mode for a frame described by p
// into buf, which must hold 4*W*H bytes. It reports false when buf is the
// wrong size or mode is OverlayNone.
func FillOverlay(buf []byte, c *scene.Compositor, p scene.Params, mode OverlayMode) bool {
	p = p.Sanitize()
	total := p.Size.W * p.Size.H
	if mode == OverlayNone || c == nil || len(buf) != 4*total {
		return false
	}
	switch mode {
	case OverlayPaths, OverlayLayers:
		cells := make([]uint8, total)
		for y := 0; y < p.Size.H; y++ {
			for x := 0; x < p.Size.W; x++ {
				probe := c.Inspect(p, x, y)
				cells[y*p.Size.W+x] = cellFor(mode, probe)
			}
		}
		palette := pathPalette
		if mode == OverlayLayers {
			palette = layerPalette
		}
		render.FillPaletteRGBA(buf, cells, palette)
	case OverlayRiver, OverlayRainbow:
		weights := make([]float64, total)
		for y := 0; y < p.Size.H; y++ {
			for x := 0; x < p.Size.W; x++ {
				probe := c.Inspect(p, x, y)
				w := probe.River
				if mode == OverlayRainbow {
					w = probe.Bows
				}
				weights[y*p.Size.W+x] = w
			}
		}
		tint := riverTint
		if mode == OverlayRainbow {
			tint = rainbowTint
		}
		render.FillMaskRGBA(buf, weights, tint)
	default:
		return false
	}
	return true
}

func cellFor(mode OverlayMode, probe scene.Probe) uint8 {
	if mode == OverlayLayers {
		if probe.Hit.Kind != scene.HitMountain {
			return 0
		}
		idx := probe.Hit.Layer.Index
		if idx < 0 || idx >= terrain.LayerCount {
			return 0
		}
		return uint8(idx + 1)
	}
	switch probe.Hit.Kind {
	case scene.HitSky:
		return 1
	case scene.HitMountain:
		return 2
	case scene.HitGround:
		return 3
	}
	return 0
}
