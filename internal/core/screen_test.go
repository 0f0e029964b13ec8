package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24, 1)

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

func TestNewScreenRatioFloor(t *testing.T) {
	s := NewScreen(4, 4, 0.5)
	if s.PixelRatio() != 1 {
		t.Errorf("PixelRatio() = %v, expected 1", s.PixelRatio())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10, 1)

	s.SetCell(5, 5, Cell{Rune: 'X'})
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, Cell{Rune: 'A'})
	s.SetCell(100, 0, Cell{Rune: 'A'})
	s.SetCell(0, -1, Cell{Rune: 'A'})
	s.SetCell(0, 100, Cell{Rune: 'A'})

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10, 1)
	s.FillRect(s.Bounds(), Cell{Rune: 'X', Color: ColorRed})

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("After Clear(), cell at (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(5, 3, 1)
	s.FillRect(NewRect(3, 1, 10, 10), Cell{Rune: '#'})

	expected := "     \n   ##\n   ##"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenDimRect(t *testing.T) {
	s := NewScreen(4, 2, 1)
	s.SetCell(1, 0, Cell{Rune: 'a'})
	s.DimRect(NewRect(0, 0, 2, 1))

	if c := s.GetCell(1, 0); !c.Dim || c.Rune != 'a' {
		t.Errorf("GetCell(1, 0) = %+v, expected dimmed 'a'", c)
	}
	if s.GetCell(2, 0).Dim {
		t.Error("cell outside the rect should not be dimmed")
	}
}

func TestScreenResizeDiscards(t *testing.T) {
	s := NewScreen(4, 4, 1)
	s.SetCell(0, 0, Cell{Rune: 'X'})

	s.Resize(6, 2)
	if w, h := s.Size(); w != 6 || h != 2 {
		t.Errorf("Size() = %dx%d, expected 6x2", w, h)
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should discard content")
	}

	s.SetDisplaySize(3, 1)
	if w, h := s.DisplaySize(); w != 3 || h != 1 {
		t.Errorf("DisplaySize() = %dx%d, expected 3x1", w, h)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5, 1)
	s.DrawText(5, 2, "Hello", ColorDefault)

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(5+i, 2) != ch {
			t.Errorf("DrawText: at (%d, 2) got %q, expected %q", 5+i, s.Get(5+i, 2), ch)
		}
	}

	// Text that runs off the edge is clipped.
	s.DrawText(17, 0, "clipped", ColorDefault)
	if got := s.Row(0); !strings.HasSuffix(got, "cli") {
		t.Errorf("Row(0) = %q, expected clipped suffix", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2, 1)
	s.SetCell(0, 0, Cell{Rune: 'A'})
	s.SetCell(2, 1, Cell{Rune: 'B'})

	str := s.String()
	lines := strings.Split(str, "\n")

	if len(lines) != 2 {
		t.Fatalf("String() should have 2 lines, got %d", len(lines))
	}
	if lines[0] != "A  " {
		t.Errorf("Line 0 = %q, expected %q", lines[0], "A  ")
	}
	if lines[1] != "  B" {
		t.Errorf("Line 1 = %q, expected %q", lines[1], "  B")
	}
}
