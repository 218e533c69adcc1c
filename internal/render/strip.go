// Package render provides pure pixel helpers for drawing the scene's
// height-field strips. It has no ebiten dependency so the PNG profile tool
// and the GUI share it.
package render

import (
	"image/color"

	"rio-delta/pkg/heightfield"
)

// RGB converts a normalized [3]float64 color into an opaque RGBA value.
func RGB(c [3]float64) color.RGBA {
	return color.RGBA{
		R: floatByte(c[0]),
		G: floatByte(c[1]),
		B: floatByte(c[2]),
		A: 255,
	}
}

func floatByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// SurfaceRows samples the field once per pixel column and maps each height
// to a pixel row (0 = top of the viewport). out is reused when it has the
// right length.
func SurfaceRows(f *heightfield.Field, top, bottom float64, w, h int, out []int) []int {
	if len(out) != w {
		out = make([]int, w)
	}
	span := top - bottom
	for px := 0; px < w; px++ {
		x := f.Width() * float64(px) / float64(w-1)
		height := f.HeightAt(x)
		row := int((top - height) / span * float64(h))
		if row < 0 {
			row = 0
		}
		if row > h {
			row = h
		}
		out[px] = row
	}
	return out
}

// FillStrip paints each pixel column as sky above the water row, water down
// to the bed row, and bed below it. Where the bed rises above the water the
// bed wins, which is what makes an emerged sandbar visible.
func FillStrip(buf []byte, w, h int, waterRows, bedRows []int, sky, water, bed color.RGBA) {
	for px := 0; px < w; px++ {
		wr, br := waterRows[px], bedRows[px]
		for py := 0; py < h; py++ {
			var col color.RGBA
			switch {
			case py >= br:
				col = bed
			case py >= wr:
				col = water
			default:
				col = sky
			}
			base := (py*w + px) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// FillRect paints an axis-aligned marker into the pixel buffer, clipped to
// the viewport. Used for sediment particles and procedural plant shapes.
func FillRect(buf []byte, w, h, x0, y0, x1, y1 int, col color.RGBA) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > w {
		x1 = w
	}
	if y1 > h {
		y1 = h
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			base := (py*w + px) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
