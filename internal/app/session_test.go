package app

import (
	"errors"
	"testing"

	"minesweep/internal/game"
)

func newTestSession(t *testing.T, w, h, mines int, seed int64) *Session {
	t.Helper()
	cfg := NewConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Mines = mines
	cfg.Seed = seed
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func findCell(t *testing.T, s *Session, mine bool) *game.Cell {
	t.Helper()
	cells := s.Board.Cells()
	for i := range cells {
		if cells[i].Mine == mine {
			return &cells[i]
		}
	}
	t.Fatalf("no cell with mine=%v on the board", mine)
	return nil
}

func TestPrimaryOnMineLosesWithoutReveal(t *testing.T) {
	s := newTestSession(t, 3, 3, 1, 7)
	m := findCell(t, s, true)

	if err := s.Primary(m.X, m.Y); err != nil {
		t.Fatalf("Primary: %v", err)
	}
	if s.Phase != PhaseLost {
		t.Fatalf("phase %v after mine click, want PhaseLost", s.Phase)
	}
	if m.Revealed {
		t.Fatal("mine cell must stay hidden; reveal is never invoked on it")
	}
}

func TestInputIgnoredAfterLoss(t *testing.T) {
	s := newTestSession(t, 3, 3, 1, 7)
	m := findCell(t, s, true)
	if err := s.Primary(m.X, m.Y); err != nil {
		t.Fatalf("Primary: %v", err)
	}

	safe := findCell(t, s, false)
	if err := s.Primary(safe.X, safe.Y); err != nil {
		t.Fatalf("Primary: %v", err)
	}
	if safe.Revealed {
		t.Fatal("reveal input after loss must be dropped")
	}
	if err := s.Secondary(safe.X, safe.Y); err != nil {
		t.Fatalf("Secondary: %v", err)
	}
	if safe.Flagged {
		t.Fatal("flag input after loss must be dropped")
	}
}

func TestWinThroughPrimaryAndSecondary(t *testing.T) {
	s := newTestSession(t, 3, 3, 1, 11)
	m := findCell(t, s, true)

	if err := s.Secondary(m.X, m.Y); err != nil {
		t.Fatalf("Secondary: %v", err)
	}
	if s.Phase != PhasePlaying {
		t.Fatal("flagging the mine alone must not win")
	}

	for _, c := range s.Board.Cells() {
		if !c.Mine {
			if err := s.Primary(c.X, c.Y); err != nil {
				t.Fatalf("Primary: %v", err)
			}
		}
	}
	if s.Phase != PhaseWon {
		t.Fatalf("phase %v after full clear, want PhaseWon", s.Phase)
	}
}

func TestSecondaryLastFlagWins(t *testing.T) {
	s := newTestSession(t, 3, 3, 1, 11)
	for _, c := range s.Board.Cells() {
		if !c.Mine {
			if err := s.Primary(c.X, c.Y); err != nil {
				t.Fatalf("Primary: %v", err)
			}
		}
	}
	if s.Phase != PhasePlaying {
		t.Fatal("clearing the board with the mine unflagged must not win yet")
	}

	m := findCell(t, s, true)
	if err := s.Secondary(m.X, m.Y); err != nil {
		t.Fatalf("Secondary: %v", err)
	}
	if s.Phase != PhaseWon {
		t.Fatalf("phase %v after flagging the last mine, want PhaseWon", s.Phase)
	}
}

func TestRemainingMines(t *testing.T) {
	s := newTestSession(t, 4, 4, 3, 5)
	if got := s.RemainingMines(); got != 3 {
		t.Fatalf("remaining mines %d, want 3", got)
	}
	safe := findCell(t, s, false)
	if err := s.Secondary(safe.X, safe.Y); err != nil {
		t.Fatalf("Secondary: %v", err)
	}
	if got := s.RemainingMines(); got != 2 {
		t.Fatalf("remaining mines %d after one flag, want 2", got)
	}
}

func TestRestartResumesPlay(t *testing.T) {
	s := newTestSession(t, 3, 3, 1, 7)
	m := findCell(t, s, true)
	if err := s.Primary(m.X, m.Y); err != nil {
		t.Fatalf("Primary: %v", err)
	}
	if s.Phase != PhaseLost {
		t.Fatal("expected a lost game before restart")
	}

	if err := s.Restart(s.Seed()); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if s.Phase != PhasePlaying {
		t.Fatal("restart must resume play")
	}
	for _, c := range s.Board.Cells() {
		if c.Revealed || c.Flagged {
			t.Fatal("restart must produce a fresh board")
		}
	}
	m2 := findCell(t, s, true)
	if m2.X != m.X || m2.Y != m.Y {
		t.Fatal("restarting with the same seed must reproduce the layout")
	}
}

func TestSessionRejectsImpossibleConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 3
	cfg.Height = 3
	cfg.Mines = 9
	cfg.Seed = 1
	if _, err := NewSession(cfg); !errors.Is(err, game.ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}

func TestPrimaryOutOfRange(t *testing.T) {
	s := newTestSession(t, 3, 3, 1, 7)
	if err := s.Primary(5, 5); !errors.Is(err, game.ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
	if err := s.Secondary(-1, 0); !errors.Is(err, game.ErrInvalidArgument) {
		t.Fatalf("got %v, want ErrInvalidArgument", err)
	}
}
