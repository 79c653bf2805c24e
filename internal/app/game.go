package app

import (
	"github.com/gdamore/tcell/v2"

	"termgame/internal/core"
	"termgame/internal/render"
	"termgame/internal/ui"
)

// Game is handed to every Controller callback. It carries the character
// grid being displayed, the viewport location, the optional message and
// the end flag.
type Game struct {
	chunks   *render.CharChunkMap
	viewport core.Coord
	message  *ui.Message
	ended    bool
}

// NewGame wraps an existing character grid.
func NewGame(chunks *render.CharChunkMap) *Game {
	return &Game{chunks: chunks}
}

// GetScreenChar returns the character at grid position (x, y), if any.
func (g *Game) GetScreenChar(x, y int) (ui.StyledCharacter, bool) {
	sc, ok := g.chunks.Get(x, y)
	if !ok {
		return ui.StyledCharacter{}, false
	}
	c := ui.NewStyledCharacter(sc.Rune)
	if sc.Style != tcell.StyleDefault {
		c = c.WithStyle(ui.StyleFromTcell(sc.Style))
	}
	return c, true
}

// SetScreenChar places c at grid position (x, y), replacing whatever was
// there.
func (g *Game) SetScreenChar(x, y int, c ui.StyledCharacter) {
	sc := render.ScreenCharacter{Rune: c.Rune, Style: tcell.StyleDefault}
	if c.Style != nil {
		sc.Style = c.Style.Tcell()
	}
	g.chunks.Insert(x, y, sc)
}

// ClearScreenChar removes the character at grid position (x, y), if any.
func (g *Game) ClearScreenChar(x, y int) {
	g.chunks.Remove(x, y)
}

// Message returns the message currently shown, or nil.
func (g *Game) Message() *ui.Message {
	return g.message
}

// SetMessage shows a message under the play area; nil removes the current
// one.
func (g *Game) SetMessage(m *ui.Message) {
	g.message = m
}

// Viewport returns the grid coordinate currently at the view's top-left.
func (g *Game) Viewport() core.Coord {
	return g.viewport
}

// SetViewport pans the view so the given coordinate is at its top-left.
func (g *Game) SetViewport(loc core.Coord) {
	g.viewport = loc
}

// SwapChunkMap exchanges the displayed grid with another one. Both grids
// keep their full contents; only which of the two is shown changes. This
// lets a controller rebuild the screen off to the side and switch to it in
// one step, or keep several maps and flip between them.
func (g *Game) SwapChunkMap(other *render.CharChunkMap) {
	g.chunks.Swap(other)
}

// EndGame asks the loop to stop. At most one more handler may run before
// Run returns.
func (g *Game) EndGame() {
	g.ended = true
}

// GameWillEnd reports whether EndGame has been called.
func (g *Game) GameWillEnd() bool {
	return g.ended
}
