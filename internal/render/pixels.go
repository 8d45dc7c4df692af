package render

import "image/color"

// fillPaletteRGBA expands cell values into RGBA bytes through a palette
// lookup. Values past the end of the palette clamp to its last entry; an
// empty palette clears the buffer.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := uint8(len(palette) - 1)
	for i, c := range cells {
		if c > last {
			c = last
		}
		col := palette[c]
		buf[4*i+0] = col.R
		buf[4*i+1] = col.G
		buf[4*i+2] = col.B
		buf[4*i+3] = col.A
	}
}
