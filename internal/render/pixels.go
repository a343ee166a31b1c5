package render

import (
	"image/color"
	"math"
)

// FillMaskRGBA converts per-pixel weights in [0, 1] into tinted,
// premultiplied RGBA pixels in buf. Weight 0 is fully transparent.
func FillMaskRGBA(buf []byte, values []float64, tint color.RGBA) {
	for i, v := range values {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		w := v
		if !(w > 0) {
			w = 0
		} else if w > 1 {
			w = 1
		}
		a := w * float64(tint.A) / 255
		buf[base+0] = uint8(math.Round(float64(tint.R) * a))
		buf[base+1] = uint8(math.Round(float64(tint.G) * a))
		buf[base+2] = uint8(math.Round(float64(tint.B) * a))
		buf[base+3] = uint8(math.Round(255 * a))
	}
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry; an empty palette
// clears the buffer to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
