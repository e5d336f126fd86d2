//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// BoardPainter updates a single RGBA image based on board display states.
type BoardPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewBoardPainter allocates a painter for a board of size w*h.
func NewBoardPainter(w, h int) *BoardPainter {
	bp := &BoardPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: BoardPalette()}
	bp.img = ebiten.NewImage(w, h)
	return bp
}

// Blit uploads the provided states into the painter image and draws it
// scaled to cellSize screen pixels per cell.
func (bp *BoardPainter) Blit(dst *ebiten.Image, states []uint8, cellSize int) {
	if len(states) != bp.w*bp.h {
		return
	}
	fillPaletteRGBA(bp.buf, states, bp.palette)
	bp.img.WritePixels(bp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(bp.img, op)
}

// Size returns the dimensions of the underlying image.
func (bp *BoardPainter) Size() (int, int) { return bp.w, bp.h }
