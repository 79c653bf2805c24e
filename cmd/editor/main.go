// Command editor is a primitive text editor: every keypress appends to a
// buffer which is re-projected onto the infinite grid after each event.
// Esc quits, Up/Down pan the viewport.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"termgame/internal/app"
	"termgame/internal/render"
)

// buffer holds the text being edited.
type buffer struct {
	text []rune
}

func (b *buffer) push(r rune) {
	b.text = append(b.text, r)
}

func (b *buffer) pop() {
	if len(b.text) > 0 {
		b.text = b.text[:len(b.text)-1]
	}
}

// project writes the buffer into a fresh grid, one text line per row.
func (b *buffer) project() *render.CharChunkMap {
	m := render.NewCharChunkMap()
	line, col := 0, 0
	for _, r := range b.text {
		m.Insert(col, line, render.ScreenCharacter{Rune: r})
		col++
		if r == '\n' {
			line++
			col = 0
		}
	}
	return m
}

type editor struct {
	buf buffer
}

func (e *editor) OnStart(g *app.Game) {
	e.sync(g)
}

// sync rebuilds the display grid from the buffer and swaps it in.
func (e *editor) sync(g *app.Game) {
	g.SwapChunkMap(e.buf.project())
}

func (e *editor) OnEvent(g *app.Game, ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyRune:
		e.buf.push(key.Rune())
	case tcell.KeyEnter:
		e.buf.push('\n')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.buf.pop()
	case tcell.KeyEscape:
		g.EndGame()
	case tcell.KeyUp:
		v := g.Viewport()
		if v.Y > 0 {
			v.Y--
		}
		g.SetViewport(v)
	case tcell.KeyDown:
		v := g.Viewport()
		v.Y++
		g.SetViewport(v)
	}
	e.sync(g)
}

func (e *editor) OnTick(g *app.Game) {}

func main() {
	settings := app.NewSettings()
	settings.TickDuration = 25 * time.Millisecond
	settings.Bind(flag.CommandLine)
	flag.Parse()

	if err := app.Run(&editor{}, settings); err != nil {
		log.Fatal(err)
	}
}
