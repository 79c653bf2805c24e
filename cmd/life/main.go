// Command life runs Conway's Game of Life on the unbounded grid. Live
// cells are stored sparsely, so gliders keep going long after they leave
// the screen; pan after them with the arrow keys.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"termgame/internal/app"
	"termgame/internal/core"
	"termgame/internal/render"
	"termgame/internal/ui"
	"termgame/pkg/rng"
)

// soup dimensions for the initial random population.
const (
	soupW = 78
	soupH = 19
)

var cellStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)

type life struct {
	live   map[core.Coord]struct{}
	paused bool
	step1  bool
	seed   int64
}

func (l *life) OnStart(g *app.Game) {
	l.reset(l.seed)
	l.render(g)
	m := ui.NewMessage("space: pause  n: step  r: reseed  arrows: pan  ctrl-c: quit").
		WithTitle("life")
	g.SetMessage(&m)
}

// reset repopulates the soup deterministically from seed.
func (l *life) reset(seed int64) {
	r := rng.New(seed)
	l.live = make(map[core.Coord]struct{})
	for y := 0; y < soupH; y++ {
		for x := 0; x < soupW; x++ {
			if r.IntN(3) == 0 {
				l.live[core.Coord{X: x, Y: y}] = struct{}{}
			}
		}
	}
}

// step advances one generation. Only neighborhoods of live cells are
// examined, so the cost tracks the population, not the plane.
func (l *life) step() {
	counts := make(map[core.Coord]int, len(l.live)*4)
	for c := range l.live {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				counts[core.Coord{X: c.X + dx, Y: c.Y + dy}]++
			}
		}
	}
	next := make(map[core.Coord]struct{}, len(l.live))
	for c, n := range counts {
		_, alive := l.live[c]
		if n == 3 || (alive && n == 2) {
			next[c] = struct{}{}
		}
	}
	l.live = next
}

// render projects the live set into a fresh grid and swaps it in.
func (l *life) render(g *app.Game) {
	m := render.NewCharChunkMap()
	for c := range l.live {
		m.Insert(c.X, c.Y, render.ScreenCharacter{Rune: 'o', Style: cellStyle})
	}
	g.SwapChunkMap(m)
}

func (l *life) OnEvent(g *app.Game, ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ':
			l.paused = !l.paused
		case 'n':
			l.step1 = true
		case 'r':
			l.reset(time.Now().UnixNano())
			l.render(g)
		}
	case tcell.KeyEscape:
		g.EndGame()
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		v := g.Viewport()
		switch key.Key() {
		case tcell.KeyUp:
			v.Y--
		case tcell.KeyDown:
			v.Y++
		case tcell.KeyLeft:
			v.X--
		case tcell.KeyRight:
			v.X++
		}
		g.SetViewport(v)
	}
}

func (l *life) OnTick(g *app.Game) {
	if !l.paused || l.step1 {
		l.step()
		l.step1 = false
		l.render(g)
	}
}

func main() {
	settings := app.NewSettings()
	settings.TickDuration = 100 * time.Millisecond
	settings.Bind(flag.CommandLine)
	seed := flag.Int64("seed", 42, "seed for the initial soup")
	flag.Parse()

	if err := app.Run(&life{seed: *seed}, settings); err != nil {
		log.Fatal(err)
	}
}
