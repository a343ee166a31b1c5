//go:build ebiten

package ui

import (
	"vista/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var overlayKeys = map[ebiten.Key]OverlayMode{
	ebiten.KeyDigit1: OverlayPaths,
	ebiten.KeyDigit2: OverlayRiver,
	ebiten.KeyDigit3: OverlayRainbow,
	ebiten.KeyDigit4: OverlayLayers,
}

// Overlay draws optional debugging visuals on top of the landscape.
type Overlay struct {
	comp  *scene.Compositor
	scale int
	mode  OverlayMode
	stale bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs an overlay that probes comp.
func NewOverlay(comp *scene.Compositor, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{comp: comp, scale: scale}
}

// Mode returns the active visualization.
func (o *Overlay) Mode() OverlayMode { return o.mode }

// Update switches modes. Pressing the key of the active mode turns it off.
func (o *Overlay) Update() {
	for key, mode := range overlayKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if o.mode == mode {
			o.mode = OverlayNone
		} else {
			o.mode = mode
			o.stale = true
		}
	}
}

// Refresh recomputes the active visualization for p. Callers pace it with
// the CPU frame clock.
func (o *Overlay) Refresh(p scene.Params) {
	if o.mode == OverlayNone {
		return
	}
	w, h := p.Size.W, p.Size.H
	if w <= 0 || h <= 0 {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != w || o.img.Bounds().Dy() != h {
		o.img = ebiten.NewImage(w, h)
		o.buf = make([]byte, 4*w*h)
	}
	if FillOverlay(o.buf, o.comp, p, o.mode) {
		o.img.WritePixels(o.buf)
		o.stale = false
	}
}

// NeedsRefresh reports whether a mode change is waiting for Refresh.
func (o *Overlay) NeedsRefresh() bool { return o.mode != OverlayNone && o.stale }

// Draw renders the overlay onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.mode == OverlayNone || o.img == nil || o.stale {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
