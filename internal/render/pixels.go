package render

import "image/color"

// Palette maps display state codes to cell colors, indexed by the
// game.Display* constants.
type Palette []color.RGBA

// BoardPalette returns the classic board colors: grey for hidden, lighter
// grey for revealed, green for flags, red for an uncovered mine.
func BoardPalette() Palette {
	return Palette{
		{R: 150, G: 150, B: 150, A: 255},
		{R: 200, G: 200, B: 200, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
	}
}

// fillPaletteRGBA converts cell state codes into RGBA pixels using a palette.
// Out-of-range codes clamp to the last entry. When the palette is empty the
// buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, states []uint8, palette Palette) {
	if len(palette) == 0 {
		for i := range states {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, s := range states {
		idx := int(s)
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
