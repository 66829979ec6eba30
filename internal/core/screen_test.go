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
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", c)
	}

	// Set keeps the colour, SetColor keeps the rune
	s.Set(5, 5, 'Y')
	s.SetColor(5, 5, ColorBlue)
	if c := s.GetCell(5, 5); c.Rune != 'Y' || c.Color != ColorBlue {
		t.Errorf("GetCell(5, 5) = %+v, expected blue 'Y'", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.SetCell(100, 0, 'A', ColorRed)
	s.SetColor(0, -1, ColorRed)
	s.Set(0, 100, 'A')

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#', ColorGray)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorGray {
				t.Errorf("After Fill, expected gray '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	s.Clear()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	for i, ch := range "Hello" {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
	}

	s.DrawText(18, 0, "Hello", ColorWhite) // Only "He" should fit
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}

	// Multi-byte runes advance one column each
	s.DrawText(0, 3, "⚑?", ColorRed)
	if s.GetCell(0, 3).Rune != '⚑' || s.GetCell(1, 3).Rune != '?' {
		t.Errorf("DrawText multi-byte: got %q%q", s.GetCell(0, 3).Rune, s.GetCell(1, 3).Rune)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd", ColorRed)
	s.DrawText(0, 1, "efgh", ColorRed)

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("Resize: got %dx%d, expected 2x3", s.Width(), s.Height())
	}
	if s.Row(0) != "ab" || s.Row(1) != "ef" || s.Row(2) != "  " {
		t.Errorf("Resize content = %q", s.String())
	}
	if s.GetCell(1, 1).Color != ColorRed {
		t.Error("Resize should preserve colour")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc", ColorDefault)
	s.DrawText(0, 1, "def", ColorDefault)

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q, expected %q", got, "abc\ndef")
	}
	if lines := strings.Split(s.String(), "\n"); len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
	if s.Row(5) != "   " {
		t.Errorf("out of range Row should be blank, got %q", s.Row(5))
	}
}
