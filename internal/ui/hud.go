//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"vista/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the landscape view.
type HUD struct {
	target     core.Tunable
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudRow
	panelOffsetX int
	hidden       bool

	pixel *ebiten.Image
}

type hudRow struct {
	controlState

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for t with the given panel width.
func NewHUD(t core.Tunable, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{target: t, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	for _, state := range newControlStates(t) {
		h.controls = append(h.controls, hudRow{controlState: state})
	}
	h.layoutControls()
	return h
}

// Width is the horizontal space the panel occupies, zero when hidden.
func (h *HUD) Width() int {
	if h == nil || h.hidden {
		return 0
	}
	return h.width
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h != nil {
		h.hidden = !h.hidden
	}
}

// Update refreshes the cached snapshot and handles button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.target == nil || h.hidden {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.target.Parameters()
	h.refresh()
	h.handleInput()
}

func (h *HUD) refresh() {
	states := make([]controlState, len(h.controls))
	for i := range h.controls {
		states[i] = h.controls[i].controlState
	}
	refreshControls(states, h.snapshot)
	for i := range h.controls {
		h.controls[i].controlState = states[i]
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		row := &h.controls[i]
		if pointInRect(px, my, row.minusRect) {
			adjustControl(h.target, &row.controlState, -1)
			return
		}
		if pointInRect(px, my, row.plusRect) {
			adjustControl(h.target, &row.controlState, 1)
			return
		}
	}
}

// Draw paints the panel at offsetX with the given height in screen pixels.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || h.hidden || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawReadouts()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Vista Controls", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		row := &h.controls[i]
		labelY := row.top + labelBaseline
		text.Draw(h.panel, row.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !row.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, row.value)
		valueX := row.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, row.value, face, valueX, labelY, valueColor)

		_, canLower := nextValue(&row.controlState, -1)
		_, canRaise := nextValue(&row.controlState, 1)
		h.drawButton(row.minusRect, "-", canLower)
		h.drawButton(row.plusRect, "+", canRaise)
	}
}

// drawReadouts lists the read-only values below the controls.
func (h *HUD) drawReadouts() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + infoSpacing/2
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if h.isControl(p.Key) {
				continue
			}
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, dim)
			y += readoutSpacing
		}
	}
	y += readoutSpacing
	for _, hint := range keyHints {
		text.Draw(h.panel, hint, face, panelPadding, y, dim)
		y += readoutSpacing
	}
}

func (h *HUD) isControl(key string) bool {
	for i := range h.controls {
		if h.controls[i].control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

var keyHints = []string{
	"Up/Down  rain",
	"Space    pause",
	"R        reset time",
	"G        GPU/CPU",
	"H        hide panel",
	"1-4      overlays",
	"Q/Esc    quit",
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	readoutSpacing = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
