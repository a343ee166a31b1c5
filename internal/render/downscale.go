package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Downscale resamples src to w*h with a Catmull-Rom filter. It is used to
// average supersampled frames down to their output size.
func Downscale(src image.Image, w, h int) *image.RGBA {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
