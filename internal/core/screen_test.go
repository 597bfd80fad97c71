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
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '@', ColorBrightGreen)

	cell := s.GetCell(3, 4)
	if cell.Rune != '@' || cell.Color != ColorBrightGreen {
		t.Errorf("GetCell(3, 4) = %+v, expected '@' in bright green", cell)
	}

	// Out of bounds reads return a blank default cell
	if cell := s.GetCell(-1, 0); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some colored characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	// Should all be default-colored spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	text := "Hi"
	s.DrawTextCentered(2, text)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(2, 2, 4, 3))

	if s.Get(2, 2) != '┌' || s.Get(5, 2) != '┐' {
		t.Error("Box top corners wrong")
	}
	if s.Get(2, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Box bottom corners wrong")
	}
	if s.Get(3, 2) != '─' || s.Get(3, 4) != '─' {
		t.Error("Box horizontal edges wrong")
	}
	if s.Get(2, 3) != '│' || s.Get(5, 3) != '│' {
		t.Error("Box vertical edges wrong")
	}
	// Interior untouched
	if s.Get(3, 3) != ' ' {
		t.Error("Box interior should be empty")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(1, 1, 3, 2), '#')

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("FillRect miss at (%d, %d)", x, y)
			}
		}
	}
	if s.Get(4, 1) != ' ' || s.Get(1, 3) != ' ' {
		t.Error("FillRect spilled outside the rect")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 0, "keep")
	s.SetColored(9, 4, 'Z', ColorCyan)

	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("Resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if row := s.Row(0); !strings.HasPrefix(row, "keep") {
		t.Errorf("Row 0 after grow = %q", row)
	}
	if cell := s.GetCell(9, 4); cell.Rune != 'Z' || cell.Color != ColorCyan {
		t.Errorf("Cell at (9, 4) after grow = %+v", cell)
	}

	// Shrinking clips
	s.Resize(3, 2)
	if s.Get(0, 0) != 'k' {
		t.Error("Shrink lost surviving content")
	}
	if got := s.Get(5, 0); got != ' ' {
		t.Errorf("Out of bounds after shrink = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.Set(2, 1, 'c')

	want := "ab \n  c"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
