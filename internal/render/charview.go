package render

import (
	"github.com/gdamore/tcell/v2"

	"termgame/internal/core"
)

// ScreenCharacter is one character cell of the game's display grid:
// the rune to show and the style to show it with. Style is
// tcell.StyleDefault for cells that carry no styling of their own.
type ScreenCharacter struct {
	Rune  rune
	Style tcell.Style
}

// CharChunkMap is the infinite character grid backing the display.
type CharChunkMap = core.ChunkMap[ScreenCharacter]

// NewCharChunkMap returns an empty character grid.
func NewCharChunkMap() *CharChunkMap {
	return core.NewChunkMap[ScreenCharacter]()
}

// CharView draws a small window into an infinite CharChunkMap. It is an
// immediate-mode widget: configure it with the builder methods, then Draw
// it into a region of a screen. Drawing never mutates the grid.
type CharView struct {
	data     *CharChunkMap
	viewport core.Coord
	boxed    bool
}

// NewCharView returns a view over the given grid, anchored at the origin.
func NewCharView(data *CharChunkMap) *CharView {
	return &CharView{data: data}
}

// Viewport sets the grid coordinate shown at the view's top-left corner.
// Coordinates run down and to the right, as usual on terminals.
func (v *CharView) Viewport(loc core.Coord) *CharView {
	v.viewport = loc
	return v
}

// Box draws a single-line border around the view, shrinking the visible
// window by one cell on each side.
func (v *CharView) Box() *CharView {
	v.boxed = true
	return v
}

// Draw paints the grid cells visible in area onto screen, each at the area
// origin plus its offset from the viewport anchor. Cells the grid holds no
// value for are left as the screen had them.
func (v *CharView) Draw(screen tcell.Screen, area Rect) {
	if v.boxed {
		DrawBox(screen, area, tcell.StyleDefault)
		area = area.Inner()
	}
	if area.W < 1 || area.H < 1 {
		return
	}
	window := core.Viewport[ScreenCharacter]{
		Map:    v.data,
		Anchor: v.viewport,
		W:      area.W,
		H:      area.H,
	}
	window.Each(func(dx, dy int, sc ScreenCharacter) bool {
		screen.SetContent(area.X+dx, area.Y+dy, sc.Rune, nil, sc.Style)
		return true
	})
}
