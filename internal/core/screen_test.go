package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if got := s.GetCell(x, y); got != blankCell {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", x, y, got)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		expected Cell
	}{
		{"inside", 3, 2, Cell{Rune: '@', Color: ColorRed}},
		{"left of screen", -1, 0, blankCell},
		{"right of screen", 10, 0, blankCell},
		{"above screen", 0, -1, blankCell},
		{"below screen", 0, 5, blankCell},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 5)
			s.SetColored(tc.x, tc.y, '@', ColorRed)

			if got := s.GetCell(tc.x, tc.y); got != tc.expected {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestScreenSetDropsColor(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetColored(1, 0, '#', ColorGold)
	s.Set(1, 0, 'x')

	if got := s.GetCell(1, 0); got != (Cell{Rune: 'x', Color: ColorDefault}) {
		t.Errorf("GetCell(1, 0) = %+v, expected uncolored 'x'", got)
	}
	if s.Get(1, 0) != 'x' {
		t.Errorf("Get(1, 0) = %q, expected 'x'", s.Get(1, 0))
	}
}

func TestScreenDrawTextColoredWideGlyph(t *testing.T) {
	s := NewScreen(6, 2)
	// Board cells are two columns wide.
	s.DrawTextColored(1, 0, "██", ColorBrightYellow)
	s.DrawTextColored(3, 0, "▓▓", ColorGreen)

	expected := []Cell{
		blankCell,
		{Rune: '█', Color: ColorBrightYellow},
		{Rune: '█', Color: ColorBrightYellow},
		{Rune: '▓', Color: ColorGreen},
		{Rune: '▓', Color: ColorGreen},
		blankCell,
	}
	for x, want := range expected {
		if got := s.GetCell(x, 0); got != want {
			t.Errorf("GetCell(%d, 0) = %+v, expected %+v", x, got, want)
		}
	}
	if s.Row(0) != " ██▓▓ " {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), " ██▓▓ ")
	}
}

func TestScreenDrawTextColoredClips(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawTextColored(3, 0, "()", ColorRed)
	s.DrawTextColored(4, 0, "<>", ColorGold)

	if got := s.GetCell(3, 0); got != (Cell{Rune: '(', Color: ColorRed}) {
		t.Errorf("GetCell(3, 0) = %+v, expected red '('", got)
	}
	if got := s.GetCell(4, 0); got != (Cell{Rune: '<', Color: ColorGold}) {
		t.Errorf("GetCell(4, 0) = %+v, expected gold '<'", got)
	}
	if s.Row(0) != "   (<" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "   (<")
	}
}

func TestScreenDrawBoxColorsEveryEdge(t *testing.T) {
	s := NewScreen(8, 6)
	box := NewRect(1, 1, 5, 4)
	s.DrawBox(box, ColorGray)

	for y := range s.Height() {
		for x := range s.Width() {
			onEdge := (x == box.X || x == box.Right()-1) && y >= box.Y && y < box.Bottom() ||
				(y == box.Y || y == box.Bottom()-1) && x >= box.X && x < box.Right()
			cell := s.GetCell(x, y)
			if onEdge && cell.Color != ColorGray {
				t.Errorf("edge (%d, %d) color = %v, expected ColorGray", x, y, cell.Color)
			}
			if !onEdge && cell != blankCell {
				t.Errorf("(%d, %d) = %+v, expected blank", x, y, cell)
			}
		}
	}

	expected := []string{
		"        ",
		" ┌───┐  ",
		" │   │  ",
		" │   │  ",
		" └───┘  ",
		"        ",
	}
	for y, want := range expected {
		if s.Row(y) != want {
			t.Errorf("Row(%d) = %q, expected %q", y, s.Row(y), want)
		}
	}
}

func TestScreenOverlayOverwritesBoard(t *testing.T) {
	s := NewScreen(12, 5)
	for y := range 5 {
		s.DrawTextColored(0, y, strings.Repeat("▓", 12), ColorGreen)
	}

	box := NewRect(1, 1, 10, 3)
	s.DrawRect(box, ' ')
	s.DrawBox(box, ColorCyan)
	s.DrawTextCentered(2, "Paused", ColorCyan)

	// Interior is cleared to uncolored blanks except for the text.
	if got := s.GetCell(2, 2); got != blankCell {
		t.Errorf("interior GetCell(2, 2) = %+v, expected blank", got)
	}
	if got := s.GetCell(3, 2); got != (Cell{Rune: 'P', Color: ColorCyan}) {
		t.Errorf("GetCell(3, 2) = %+v, expected cyan 'P'", got)
	}
	if got := s.GetCell(0, 2); got != (Cell{Rune: '▓', Color: ColorGreen}) {
		t.Errorf("outside GetCell(0, 2) = %+v, expected green board cell", got)
	}
	if s.Row(2) != "▓│ Paused │▓" {
		t.Errorf("Row(2) = %q, expected %q", s.Row(2), "▓│ Paused │▓")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "abc", ColorGold)
	s.DrawTextColored(0, 1, "def", ColorRed)

	s.Clear()

	if s.String() != "   \n   " {
		t.Errorf("String() = %q, expected blank rows", s.String())
	}
	for y := range 2 {
		for x := range 3 {
			if s.GetCell(x, y).Color != ColorDefault {
				t.Errorf("GetCell(%d, %d).Color = %v, expected ColorDefault", x, y, s.GetCell(x, y).Color)
			}
		}
	}
}

func TestScreenResizeKeepsColors(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawTextColored(0, 0, "Hi", ColorBrightWhite)
	s.SetColored(5, 3, '*', ColorRed)

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if got := s.GetCell(1, 0); got != (Cell{Rune: 'i', Color: ColorBrightWhite}) {
		t.Errorf("GetCell(1, 0) = %+v, expected white 'i'", got)
	}

	// Cells cut off by shrinking do not come back.
	s.Resize(6, 4)
	if got := s.GetCell(5, 3); got != blankCell {
		t.Errorf("GetCell(5, 3) = %+v, expected blank", got)
	}
	if s.Row(0) != "Hi    " {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "Hi    ")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "ok")

	tests := []struct {
		y        int
		expected string
	}{
		{-1, "    "},
		{0, "    "},
		{1, "ok  "},
		{2, "    "},
	}
	for _, tc := range tests {
		if got := s.Row(tc.y); got != tc.expected {
			t.Errorf("Row(%d) = %q, expected %q", tc.y, got, tc.expected)
		}
	}
}
