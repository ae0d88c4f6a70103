package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '#', Color(255, 0, 0))
	cell := s.Get(3, 2)
	if cell.Rune != '#' {
		t.Errorf("Get(3,2).Rune = %q, want '#'", cell.Rune)
	}
	if cell.Color != (RGB{255, 0, 0}) {
		t.Errorf("Get(3,2).Color = %v", cell.Color)
	}

	// Out of bounds is silently ignored
	s.Set(-1, 0, 'x')
	s.Set(100, 100, 'x')
	if s.Get(-1, 0).Rune != ' ' {
		t.Error("out-of-bounds Get should return blank cell")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "score")
	if got := s.Row(1); !strings.Contains(got, "score") {
		t.Errorf("Row(1) = %q, want it to contain \"score\"", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')
	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(0, 0, 'x')
	s.Resize(8, 8)
	if s.Width() != 8 || s.Height() != 8 {
		t.Errorf("Resize dims = %dx%d", s.Width(), s.Height())
	}
	if s.Get(0, 0).Rune != ' ' {
		t.Error("Resize should clear content")
	}
}
