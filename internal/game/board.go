package game

import (
	"errors"
	"fmt"

	"minesweep/pkg/core"
)

// ErrInvalidArgument reports out-of-range coordinates or an impossible
// board configuration.
var ErrInvalidArgument = errors.New("invalid argument")

// Board owns a flat row-major grid of cells. It carries no won/lost state of
// its own; CheckWin is a pure query and a mine click ending the game is the
// caller's decision.
type Board struct {
	W, H  int
	Mines int
	cells []Cell
}

// NewBoard allocates a w*h board, places mines uniformly at random using the
// provided RNG and computes adjacency counts. The mine count must leave at
// least one free cell.
func NewBoard(w, h, mines int, rng *core.RNG) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("board %dx%d: %w", w, h, ErrInvalidArgument)
	}
	if mines < 0 || mines >= w*h {
		return nil, fmt.Errorf("%d mines on %dx%d board: %w", mines, w, h, ErrInvalidArgument)
	}
	b := &Board{W: w, H: h, Mines: mines, cells: make([]Cell, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.cells[y*w+x] = Cell{X: x, Y: y}
		}
	}
	b.placeMines(rng)
	b.computeAdjacency()
	return b, nil
}

// Index returns the linear slice index for coordinates (x, y).
func (b *Board) Index(x, y int) int { return y*b.W + x }

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the cell at (x, y), which must be in bounds.
func (b *Board) At(x, y int) *Cell { return &b.cells[b.Index(x, y)] }

// Cells exposes the backing slice so callers can read cell state directly.
func (b *Board) Cells() []Cell { return b.cells }

// placeMines sets the requested number of distinct mines by rejection
// sampling. Terminates because mines < w*h.
func (b *Board) placeMines(rng *core.RNG) {
	placed := 0
	for placed < b.Mines {
		c := b.At(rng.IntN(b.W), rng.IntN(b.H))
		if c.Mine {
			continue
		}
		c.Mine = true
		placed++
	}
}

// computeAdjacency fills Adjacent for every non-mine cell. Mine cells keep
// zero; the count is undefined for them and never displayed.
func (b *Board) computeAdjacency() {
	for i := range b.cells {
		c := &b.cells[i]
		if c.Mine {
			c.Adjacent = 0
			continue
		}
		count := 0
		b.around(c.X, c.Y, func(n *Cell) {
			if n.Mine {
				count++
			}
		})
		c.Adjacent = count
	}
}

// around visits the in-bounds 3x3 neighborhood of (x, y), excluding the cell
// itself.
func (b *Board) around(x, y int, fn func(*Cell)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.InBounds(x+dx, y+dy) {
				fn(b.At(x+dx, y+dy))
			}
		}
	}
}

// RevealCell reveals (x, y) unless the cell is already revealed or flagged.
// Revealing a zero-adjacency non-mine cell floods outward through the
// contiguous zero-count region plus its bordering cells. The fill runs over
// an explicit work list; revealed cells are never re-entered, which bounds
// it on any board size.
//
// There is no mine guard: the presentation layer decides what a mine click
// means, and it does so without calling RevealCell.
func (b *Board) RevealCell(x, y int) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("reveal (%d,%d): %w", x, y, ErrInvalidArgument)
	}
	work := []int{b.Index(x, y)}
	for len(work) > 0 {
		i := work[len(work)-1]
		work = work[:len(work)-1]
		c := &b.cells[i]
		if c.Revealed || c.Flagged {
			continue
		}
		c.Reveal()
		if c.Mine || c.Adjacent != 0 {
			continue
		}
		b.around(c.X, c.Y, func(n *Cell) {
			if !n.Revealed {
				work = append(work, b.Index(n.X, n.Y))
			}
		})
	}
	return nil
}

// ToggleFlag flips the flag at (x, y). Revealed cells are left alone.
func (b *Board) ToggleFlag(x, y int) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("flag (%d,%d): %w", x, y, ErrInvalidArgument)
	}
	b.At(x, y).ToggleFlag()
	return nil
}

// CheckWin reports whether every mine is flagged and every non-mine cell is
// revealed. Recomputed from scratch on each call.
func (b *Board) CheckWin() bool {
	for i := range b.cells {
		c := &b.cells[i]
		if c.Mine && !c.Flagged {
			return false
		}
		if !c.Mine && !c.Revealed {
			return false
		}
	}
	return true
}

// FlagCount returns the number of currently flagged cells.
func (b *Board) FlagCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Flagged {
			n++
		}
	}
	return n
}
