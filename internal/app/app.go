//go:build ebiten

package app

import (
	"time"

	"minesweep/internal/render"
	"minesweep/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session  *Session
	painter  *render.BoardPainter
	hud      *ui.HUD
	cellSize int
	states   []uint8
}

// New constructs a Game for the provided session.
func New(session *Session, cellSize int) *Game {
	if cellSize <= 0 {
		cellSize = 1
	}
	b := session.Board
	return &Game{
		session:  session,
		painter:  render.NewBoardPainter(b.W, b.H),
		hud:      ui.NewHUD(cellSize),
		cellSize: cellSize,
	}
}

// Update handles one tick of input. Left click reveals, right click flags;
// once the game is won or lost the session drops board input, leaving only
// restart and quit.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.session.Restart(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		return g.session.Restart(time.Now().UnixNano())
	}

	mx, my := ebiten.CursorPosition()
	x, y := mx/g.cellSize, my/g.cellSize
	if !g.session.Board.InBounds(x, y) {
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return g.session.Primary(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		return g.session.Secondary(x, y)
	}
	return nil
}

// Draw renders the board and the HUD overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.states = g.session.Board.DisplayCells(g.states)
	g.painter.Blit(screen, g.states, g.cellSize)
	g.hud.Draw(screen, g.session.Board, g.session.Phase == PhaseWon, g.session.Phase == PhaseLost)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.session.Board.W * g.cellSize, g.session.Board.H * g.cellSize
}
