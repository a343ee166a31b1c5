//go:build !ebiten

package ui

import "vista/internal/scene"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*scene.Compositor, int) *Overlay { return &Overlay{} }

// Mode is always OverlayNone in headless builds.
func (o *Overlay) Mode() OverlayMode { return OverlayNone }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Refresh is a no-op in headless builds.
func (o *Overlay) Refresh(scene.Params) {}

// NeedsRefresh is always false in headless builds.
func (o *Overlay) NeedsRefresh() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
