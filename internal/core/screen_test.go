package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '●', ColorBrightWhite)
	cell := s.GetCell(5, 5)
	if cell.Rune != '●' || cell.Color != ColorBrightWhite {
		t.Errorf("GetCell(5, 5) = %+v, expected ● in bright white", cell)
	}

	// Out of bounds is silent
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(100, 0, 'A', ColorRed)
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}

	s.Set(5, 5, 'x')
	if s.GetCell(5, 5).Color != ColorDefault {
		t.Error("Set should reset the color")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColored(2, 1, "par 3", ColorYellow)

	if got := strings.TrimRight(s.Row(1), " "); got != "  par 3" {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(2, 1).Color != ColorYellow {
		t.Error("text should carry its color")
	}

	s.DrawTextCentered(0, "golf", ColorDefault)
	if got := s.Row(0)[8:12]; got != "golf" {
		t.Errorf("centered text = %q", got)
	}
}

func TestScreenResizeAndString(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawHLine(0, 0, 4, '-', ColorGray)
	if s.String() != "----\n    " {
		t.Errorf("String() = %q", s.String())
	}

	s.Resize(2, 1)
	if s.Width() != 2 || s.Height() != 1 || s.String() != "  " {
		t.Errorf("after resize String() = %q", s.String())
	}
}
