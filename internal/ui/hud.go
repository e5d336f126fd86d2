//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"minesweep/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Classic digit colors, indexed by adjacency count.
var numberColors = []color.RGBA{
	{},
	{R: 25, G: 25, B: 220, A: 255},
	{G: 130, A: 255},
	{R: 210, G: 20, B: 20, A: 255},
	{B: 135, A: 255},
	{R: 130, A: 255},
	{G: 128, B: 128, A: 255},
	{A: 255},
	{R: 110, G: 110, B: 110, A: 255},
}

// HUD draws the cell borders, adjacency digits, the mines-remaining readout
// and the end-of-game banner on top of the painted board.
type HUD struct {
	cellSize int
	face     font.Face
}

// NewHUD constructs a HUD for the provided cell size in pixels.
func NewHUD(cellSize int) *HUD {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &HUD{cellSize: cellSize, face: basicfont.Face7x13}
}

// Draw paints the overlay. Digits appear only on revealed non-mine cells
// with a positive count; mines never show one.
func (h *HUD) Draw(screen *ebiten.Image, b *game.Board, won, lost bool) {
	if h == nil || b == nil {
		return
	}
	cs := h.cellSize
	for _, c := range b.Cells() {
		px, py := c.X*cs, c.Y*cs
		if c.Revealed && !c.Mine && c.Adjacent > 0 {
			col := numberColors[c.Adjacent]
			text.Draw(screen, strconv.Itoa(c.Adjacent), h.face, px+cs/2-3, py+cs/2+5, col)
		}
		vector.StrokeRect(screen, float32(px), float32(py), float32(cs), float32(cs), 1, color.Black, false)
	}

	text.Draw(screen, fmt.Sprintf("Mines: %d", b.Mines-b.FlagCount()), h.face, 4, 13, color.Black)

	switch {
	case lost:
		h.drawBanner(screen, b, "Game Over", color.RGBA{R: 255, A: 255})
	case won:
		h.drawBanner(screen, b, "YOU WIN!", color.RGBA{G: 255, A: 255})
	}
}

// drawBanner centers the message over the board on a padded black box.
func (h *HUD) drawBanner(screen *ebiten.Image, b *game.Board, msg string, col color.Color) {
	w := b.W * h.cellSize
	height := b.H * h.cellSize
	tw := len(msg) * 7 // Face7x13 advance
	px := (w - tw) / 2
	py := height / 2
	ebitenutil.DrawRect(screen, float64(px-10), float64(py-18), float64(tw+20), 28, color.Black)
	text.Draw(screen, msg, h.face, px, py, col)
}
