package game

// Cell is a single board position. Coordinates are fixed at construction;
// the remaining fields are mutated in place by the reveal/flag operations.
type Cell struct {
	X, Y     int
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int
}

// Reveal marks the cell revealed. Flagged cells stay hidden until unflagged.
func (c *Cell) Reveal() {
	if !c.Flagged {
		c.Revealed = true
	}
}

// ToggleFlag flips the flag. Revealed cells cannot be flagged or unflagged.
func (c *Cell) ToggleFlag() {
	if !c.Revealed {
		c.Flagged = !c.Flagged
	}
}
