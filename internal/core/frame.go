package core

import (
	"image"
	"math"
)

// Frame stores RGBA8 pixels in row-major order, top row first.
type Frame struct {
	W, H int
	data []uint8
}

// NewFrame allocates an opaque black frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	f := &Frame{W: w, H: h, data: make([]uint8, 4*w*h)}
	f.Clear()
	return f
}

// Size returns the frame dimensions.
func (f *Frame) Size() Size { return Size{W: f.W, H: f.H} }

// Pix exposes the backing RGBA slice so callers can upload it directly.
func (f *Frame) Pix() []uint8 { return f.data }

// Index returns the offset of pixel (x, y) in Pix.
func (f *Frame) Index(x, y int) int { return 4 * (y*f.W + x) }

// SetRGB stores a color with channels in [0, 1]; out-of-range values are
// clamped and NaN becomes 0.
func (f *Frame) SetRGB(x, y int, r, g, b float64) {
	i := f.Index(x, y)
	f.data[i+0] = quantize(r)
	f.data[i+1] = quantize(g)
	f.data[i+2] = quantize(b)
	f.data[i+3] = 0xff
}

// RGBA returns an image view that shares the frame's pixels.
func (f *Frame) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    f.data,
		Stride: 4 * f.W,
		Rect:   image.Rect(0, 0, f.W, f.H),
	}
}

// Clear resets every pixel to opaque black.
func (f *Frame) Clear() {
	for i := range f.data {
		f.data[i] = 0
		if i%4 == 3 {
			f.data[i] = 0xff
		}
	}
}

func quantize(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(v * 255))
}
