//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"vista/internal/core"
)

// FramePainter uploads RGBA buffers into an ebiten image and draws it scaled.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewFramePainter allocates a painter for w*h pixel buffers.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Upload replaces the painter's pixels. Buffers of the wrong size are
// ignored.
func (fp *FramePainter) Upload(buf []byte) {
	if len(buf) != 4*fp.w*fp.h {
		return
	}
	fp.img.WritePixels(buf)
}

// UploadFrame replaces the painter's pixels with a rendered frame.
func (fp *FramePainter) UploadFrame(f *core.Frame) {
	if f.W != fp.w || f.H != fp.h {
		return
	}
	fp.Upload(f.Pix())
}

// Draw paints the current pixels onto dst, scaled by scale.
func (fp *FramePainter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Image exposes the underlying ebiten image.
func (fp *FramePainter) Image() *ebiten.Image { return fp.img }

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
