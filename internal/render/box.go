package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rect is a screen-space rectangle: X, Y is the top-left cell, W and H the
// size in cells.
type Rect struct {
	X, Y int
	W, H int
}

// Inner returns r shrunk by a one-cell border on every side.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

// Fill paints every cell of area with the given rune and style.
func Fill(screen tcell.Screen, area Rect, r rune, style tcell.Style) {
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

// DrawBox draws a single-line border along the edge of area. Rectangles too
// small to have an edge are left untouched.
func DrawBox(screen tcell.Screen, area Rect, style tcell.Style) {
	if area.W < 2 || area.H < 2 {
		return
	}
	right := area.X + area.W - 1
	bottom := area.Y + area.H - 1
	for x := area.X + 1; x < right; x++ {
		screen.SetContent(x, area.Y, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := area.Y + 1; y < bottom; y++ {
		screen.SetContent(area.X, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(area.X, area.Y, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, area.Y, tcell.RuneURCorner, nil, style)
	screen.SetContent(area.X, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// DrawText writes s starting at (x, y), clipped to maxW cells.
func DrawText(screen tcell.Screen, x, y int, s string, maxW int, style tcell.Style) {
	col := x
	for _, r := range s {
		if col >= x+maxW {
			return
		}
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}

// DrawPanel draws a bordered panel filled with text. The title, if any, is
// drawn in bold over the top border. Tabs render as two spaces; lines that
// do not fit the panel are clipped.
func DrawPanel(screen tcell.Screen, area Rect, title, text string, style tcell.Style) {
	if area.W < 2 || area.H < 2 {
		return
	}
	Fill(screen, area, ' ', style)
	DrawBox(screen, area, style)
	if title != "" {
		DrawText(screen, area.X+1, area.Y, title, area.W-2, style.Bold(true))
	}
	inner := area.Inner()
	lines := strings.Split(strings.ReplaceAll(text, "\t", "  "), "\n")
	for i, line := range lines {
		if i >= inner.H {
			break
		}
		DrawText(screen, inner.X, inner.Y+i, line, inner.W, style)
	}
}
