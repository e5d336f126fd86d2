package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"minesweep/internal/app"
	"minesweep/internal/game"
)

// App renders a session as a selectable tview table. Enter reveals the
// selected cell, 'f' toggles its flag, 'r' restarts and 'q' or Escape quits.
type App struct {
	session *app.Session
	view    *tview.Application
	table   *tview.Table
}

// New constructs the terminal frontend around the provided session.
func New(session *app.Session) *App {
	t := &App{
		session: session,
		view:    tview.NewApplication(),
		table:   tview.NewTable(),
	}
	t.table.SetBorder(true)
	t.table.SetSelectable(true, true)
	t.table.SetInputCapture(t.handleKey)
	t.view.SetRoot(t.table, true)
	t.redraw()
	return t
}

// Run blocks inside the tview event loop until the player quits.
func (t *App) Run() error { return t.view.Run() }

func (t *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	// Table selection is clamped to the board, so (col, row) is always a
	// valid coordinate and the session calls cannot fail.
	row, col := t.table.GetSelection()
	switch event.Key() {
	case tcell.KeyEscape:
		t.view.Stop()
		return nil
	case tcell.KeyEnter:
		t.session.Primary(col, row)
	case tcell.KeyRune:
		switch event.Rune() {
		case 'f', 'F':
			t.session.Secondary(col, row)
		case 'r', 'R':
			t.session.Restart(t.session.Seed())
		case 'q', 'Q':
			t.view.Stop()
			return nil
		}
	}
	t.redraw()
	return event
}

func (t *App) redraw() {
	b := t.session.Board
	for _, c := range b.Cells() {
		t.table.SetCell(c.Y, c.X, renderCell(c))
	}

	title := fmt.Sprintf(" minesweep | mines left: %d ", t.session.RemainingMines())
	switch t.session.Phase {
	case app.PhaseLost:
		title = " Game Over | press r to restart "
	case app.PhaseWon:
		title = " YOU WIN! | press r to restart "
	}
	t.table.SetTitle(title)
}

func renderCell(c game.Cell) *tview.TableCell {
	label := "."
	color := tcell.ColorGray
	switch {
	case c.Flagged:
		label, color = "F", tcell.ColorGreen
	case c.Revealed && c.Mine:
		label, color = "*", tcell.ColorRed
	case c.Revealed && c.Adjacent > 0:
		label, color = strconv.Itoa(c.Adjacent), numberColor(c.Adjacent)
	case c.Revealed:
		label, color = " ", tcell.ColorWhite
	}
	return tview.NewTableCell(label).SetTextColor(color).SetAlign(tview.AlignCenter)
}

func numberColor(n int) tcell.Color {
	switch n {
	case 1:
		return tcell.ColorBlue
	case 2:
		return tcell.ColorGreen
	case 3:
		return tcell.ColorRed
	case 4:
		return tcell.ColorNavy
	case 5:
		return tcell.ColorMaroon
	default:
		return tcell.ColorTeal
	}
}
