package game

// Display state codes consumed by the pixel renderer.
const (
	DisplayHidden uint8 = iota
	DisplayRevealed
	DisplayFlagged
	DisplayMine
)

// DisplayCells maps the board into a flat buffer of display states, reusing
// dst when it has the right length. Flags take precedence over everything; a
// revealed mine maps to DisplayMine.
func (b *Board) DisplayCells(dst []uint8) []uint8 {
	if len(dst) != len(b.cells) {
		dst = make([]uint8, len(b.cells))
	}
	for i := range b.cells {
		c := &b.cells[i]
		switch {
		case c.Flagged:
			dst[i] = DisplayFlagged
		case c.Revealed && c.Mine:
			dst[i] = DisplayMine
		case c.Revealed:
			dst[i] = DisplayRevealed
		default:
			dst[i] = DisplayHidden
		}
	}
	return dst
}
