package app

import (
	"time"

	"minesweep/internal/game"
	"minesweep/pkg/core"
)

// Phase is the presentation-side game state. The board itself never tracks
// whether the game is over.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// Session pairs a Board with the won/lost bookkeeping the board leaves to
// its caller. Both frontends drive their input through it.
type Session struct {
	Board *game.Board
	Phase Phase

	cfg  *Config
	seed int64
}

// NewSession builds a session from the config. A zero seed picks a
// time-based one.
func NewSession(cfg *Config) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{cfg: cfg}
	if err := s.Restart(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// Seed returns the seed the current board was built from.
func (s *Session) Seed() int64 { return s.seed }

// Restart replaces the board using the provided seed and resumes play.
func (s *Session) Restart(seed int64) error {
	b, err := game.NewBoard(s.cfg.Width, s.cfg.Height, s.cfg.Mines, core.NewRNG(seed))
	if err != nil {
		return err
	}
	s.Board = b
	s.seed = seed
	s.Phase = PhasePlaying
	return nil
}

// Primary is the reveal action at (x, y). Targeting a mine loses the game
// without the board ever revealing the cell; any other target is revealed
// and the win condition re-evaluated. Input after the game ends is dropped.
func (s *Session) Primary(x, y int) error {
	if s.Phase != PhasePlaying {
		return nil
	}
	if !s.Board.InBounds(x, y) {
		return s.Board.RevealCell(x, y)
	}
	if s.Board.At(x, y).Mine {
		s.Phase = PhaseLost
		return nil
	}
	if err := s.Board.RevealCell(x, y); err != nil {
		return err
	}
	if s.Board.CheckWin() {
		s.Phase = PhaseWon
	}
	return nil
}

// Secondary toggles the flag at (x, y). Flagging the last mine can win the
// game, so the win condition is re-evaluated here too.
func (s *Session) Secondary(x, y int) error {
	if s.Phase != PhasePlaying {
		return nil
	}
	if err := s.Board.ToggleFlag(x, y); err != nil {
		return err
	}
	if s.Board.CheckWin() {
		s.Phase = PhaseWon
	}
	return nil
}

// RemainingMines returns the mine count minus placed flags. It may go
// negative when the player over-flags.
func (s *Session) RemainingMines() int {
	return s.Board.Mines - s.Board.FlagCount()
}
