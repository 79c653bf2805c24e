package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"termgame/internal/core"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestCharViewDrawsOccupiedCells(t *testing.T) {
	m := NewCharChunkMap()
	m.Insert(4, 3, ScreenCharacter{Rune: 'a', Style: tcell.StyleDefault})

	s := newSimScreen(t, 20, 10)
	NewCharView(m).Draw(s, Rect{X: 0, Y: 0, W: 10, H: 10})
	s.Show()

	if r := runeAt(s, 4, 3); r != 'a' {
		t.Fatalf("cell (4, 3) = %q, want 'a'", r)
	}
	if r := runeAt(s, 5, 3); r != ' ' {
		t.Fatalf("cell (5, 3) = %q, want blank", r)
	}
}

func TestCharViewPansWithViewport(t *testing.T) {
	m := NewCharChunkMap()
	m.Insert(4, 3, ScreenCharacter{Rune: 'a'})

	s := newSimScreen(t, 20, 10)
	NewCharView(m).Viewport(core.Coord{X: 5}).Draw(s, Rect{W: 10, H: 10})
	s.Show()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if r := runeAt(s, x, y); r != ' ' {
				t.Fatalf("cell (%d, %d) = %q after panning past content, want blank", x, y, r)
			}
		}
	}

	s.Clear()
	NewCharView(m).Viewport(core.Coord{X: 2, Y: 2}).Draw(s, Rect{W: 10, H: 10})
	s.Show()
	if r := runeAt(s, 2, 1); r != 'a' {
		t.Fatalf("cell (2, 1) = %q with anchor (2, 2), want 'a'", r)
	}
}

func TestCharViewDrawsAtRegionOrigin(t *testing.T) {
	m := NewCharChunkMap()
	m.Insert(0, 0, ScreenCharacter{Rune: 'x'})

	s := newSimScreen(t, 20, 10)
	NewCharView(m).Draw(s, Rect{X: 7, Y: 2, W: 5, H: 5})
	s.Show()

	if r := runeAt(s, 7, 2); r != 'x' {
		t.Fatalf("cell (7, 2) = %q, want 'x'", r)
	}
}

func TestCharViewBox(t *testing.T) {
	m := NewCharChunkMap()
	m.Insert(0, 0, ScreenCharacter{Rune: 'x'})

	s := newSimScreen(t, 20, 10)
	NewCharView(m).Box().Draw(s, Rect{W: 10, H: 5})
	s.Show()

	if r := runeAt(s, 0, 0); r != tcell.RuneULCorner {
		t.Fatalf("corner cell = %q, want box corner", r)
	}
	if r := runeAt(s, 5, 0); r != tcell.RuneHLine {
		t.Fatalf("top edge cell = %q, want horizontal line", r)
	}
	// Content is inset by the border.
	if r := runeAt(s, 1, 1); r != 'x' {
		t.Fatalf("cell (1, 1) = %q inside box, want 'x'", r)
	}
}

func TestCharViewTinyRegion(t *testing.T) {
	m := NewCharChunkMap()
	m.Insert(0, 0, ScreenCharacter{Rune: 'x'})

	s := newSimScreen(t, 20, 10)
	// A boxed 2x2 region has no interior; this must not draw content or panic.
	NewCharView(m).Box().Draw(s, Rect{W: 2, H: 2})
	NewCharView(m).Draw(s, Rect{W: 0, H: 0})
}

func TestDrawPanel(t *testing.T) {
	s := newSimScreen(t, 40, 10)
	DrawPanel(s, Rect{W: 20, H: 5}, "Message", "hi\tthere\nsecond", tcell.StyleDefault)
	s.Show()

	if r := runeAt(s, 1, 0); r != 'M' {
		t.Fatalf("title cell = %q, want 'M'", r)
	}
	if r := runeAt(s, 1, 1); r != 'h' {
		t.Fatalf("first text cell = %q, want 'h'", r)
	}
	// Tab rendered as two spaces before "there".
	if r := runeAt(s, 5, 1); r != 't' {
		t.Fatalf("cell after tab = %q, want 't'", r)
	}
	if r := runeAt(s, 1, 2); r != 's' {
		t.Fatalf("second line cell = %q, want 's'", r)
	}
	if r := runeAt(s, 0, 4); r != tcell.RuneLLCorner {
		t.Fatalf("bottom corner = %q, want box corner", r)
	}
}
