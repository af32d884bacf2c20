package core

import (
	"testing"
)

// writeRow places text at (x, y) one cell per rune.
func writeRow(s *Screen, x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetCell(x+i, y, r, c)
	}
}

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
			if s.GetCell(x, y) != blankCell {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got != (Cell{Rune: 'X', Color: ColorRed}) {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", got)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(100, 0, 'A', ColorRed)
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)

	if s.GetCell(-1, 0) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
	if s.GetCell(0, 0) != blankCell {
		t.Error("Out of bounds writes should not wrap onto the screen")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill('X', ColorGreen)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	writeRow(s, 0, 0, "Hello", ColorDefault)
	writeRow(s, 0, 5, "World", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	for i, r := range "Hello" {
		if got := s.GetCell(i, 0).Rune; got != r {
			t.Errorf("Content should be preserved, (%d, 0) = %q, expected %q", i, got, r)
		}
	}

	s.Resize(15, 8)
	if got := s.GetCell(4, 0).Rune; got != 'o' {
		t.Errorf("Content should be preserved after enlarging, (4, 0) = %q", got)
	}
	if got := s.GetCell(0, 5); got != blankCell {
		t.Errorf("Rows cut by shrinking should come back blank, got %+v", got)
	}
	if got := s.GetCell(14, 7); got != blankCell {
		t.Errorf("New cells should be blank, got %+v", got)
	}

	s.Resize(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("Negative sizes should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
}
