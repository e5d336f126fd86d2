package game

import "testing"

func TestCellReveal(t *testing.T) {
	c := Cell{X: 0, Y: 0}
	if c.Revealed {
		t.Fatal("new cell must start hidden")
	}
	c.Reveal()
	if !c.Revealed {
		t.Fatal("Reveal did not reveal the cell")
	}
}

func TestCellFlagToggle(t *testing.T) {
	c := Cell{X: 0, Y: 0}
	c.ToggleFlag()
	if !c.Flagged {
		t.Fatal("first toggle must set the flag")
	}
	c.ToggleFlag()
	if c.Flagged {
		t.Fatal("second toggle must clear the flag")
	}
}

func TestFlagProtectsAgainstReveal(t *testing.T) {
	c := Cell{X: 0, Y: 0}
	c.ToggleFlag()
	c.Reveal()
	if c.Revealed {
		t.Fatal("flagged cell must not be revealed")
	}
	c.ToggleFlag()
	c.Reveal()
	if !c.Revealed {
		t.Fatal("unflagged cell must reveal again")
	}
}

func TestRevealProtectsAgainstFlag(t *testing.T) {
	c := Cell{X: 0, Y: 0}
	c.Reveal()
	c.ToggleFlag()
	if c.Flagged {
		t.Fatal("revealed cell must not accept a flag")
	}
}
