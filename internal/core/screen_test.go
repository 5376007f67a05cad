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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Errorf("new screen should be filled with spaces, got %q at (%d, %d)",
					s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, ScreenCell{Rune: 'X', Color: ColorRed})
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, ScreenCell{Rune: 'A'})
	s.SetCell(100, 0, ScreenCell{Rune: 'A'})
	s.SetCell(0, -1, ScreenCell{Rune: 'A'})
	s.SetCell(0, 100, ScreenCell{Rune: 'A'})

	// Out of bounds get should return a blank cell
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("out of bounds GetCell should return a blank cell")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, ScreenCell{Rune: 'X', Color: ColorGreen})
		}
	}

	s.Clear()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorBlack {
				t.Errorf("cell (%d, %d) = %+v after Clear, expected blank", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")
	line := strings.Split(s.String(), "\n")[1]
	if !strings.Contains(line, "hello") {
		t.Errorf("row 1 = %q, expected to contain 'hello'", line)
	}

	// Text past the right edge is clipped, not wrapped
	s.DrawText(17, 2, "overflow")
	row2 := strings.Split(s.String(), "\n")[2]
	if row2 != "                 ove" {
		t.Errorf("clipped row = %q", row2)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 2, ScreenCell{Rune: 'A', Color: ColorBlue})
	s.SetCell(9, 4, ScreenCell{Rune: 'B', Color: ColorRed})

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Errorf("size after Resize = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if s.GetCell(2, 2).Rune != 'A' {
		t.Error("content within the new bounds should survive a shrink")
	}

	s.Resize(12, 6)
	if s.GetCell(2, 2).Rune != 'A' {
		t.Error("content should survive a grow")
	}
	if s.GetCell(9, 4).Rune != ' ' {
		t.Error("content clipped by a shrink should not reappear on grow")
	}
}
