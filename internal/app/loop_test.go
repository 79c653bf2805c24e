package app

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"termgame/internal/render"
	"termgame/internal/ui"
)

func newTestChunkMap(r rune, x, y int) *render.CharChunkMap {
	m := render.NewCharChunkMap()
	m.Insert(x, y, render.ScreenCharacter{Rune: r})
	return m
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

// recorder counts handler calls and can end the game from any of them.
type recorder struct {
	starts, events, ticks int
	endOnEvent            bool
	endOnTick             bool
	onStart               func(g *Game)
}

func (r *recorder) OnStart(g *Game) {
	r.starts++
	if r.onStart != nil {
		r.onStart(g)
	}
}

func (r *recorder) OnEvent(g *Game, ev tcell.Event) {
	r.events++
	if r.endOnEvent {
		g.EndGame()
	}
}

func (r *recorder) OnTick(g *Game) {
	r.ticks++
	if r.endOnTick {
		g.EndGame()
	}
}

func newLoopScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func waitLoop(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runLoop returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("runLoop did not stop")
	}
}

func TestRunLoopStopsOnQuitKey(t *testing.T) {
	s := newLoopScreen(t, 100, 40)
	c := &recorder{}
	settings := NewSettings()

	done := make(chan error, 1)
	go func() { done <- runLoop(s, c, settings) }()

	time.Sleep(20 * time.Millisecond)
	s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	waitLoop(t, done)

	if c.starts != 1 {
		t.Fatalf("OnStart called %d times, want 1", c.starts)
	}
	if c.events != 0 {
		t.Fatalf("quit key leaked to OnEvent (%d calls)", c.events)
	}
}

func TestRunLoopForwardsEvents(t *testing.T) {
	s := newLoopScreen(t, 100, 40)
	c := &recorder{endOnEvent: true}

	done := make(chan error, 1)
	go func() { done <- runLoop(s, c, NewSettings()) }()

	time.Sleep(20 * time.Millisecond)
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	waitLoop(t, done)

	if c.events != 1 {
		t.Fatalf("OnEvent called %d times, want 1", c.events)
	}
}

func TestRunLoopTicks(t *testing.T) {
	s := newLoopScreen(t, 100, 40)
	c := &recorder{endOnTick: true}
	settings := NewSettings()
	settings.TickDuration = 5 * time.Millisecond

	done := make(chan error, 1)
	go func() { done <- runLoop(s, c, settings) }()
	waitLoop(t, done)

	if c.ticks != 1 {
		t.Fatalf("OnTick called %d times, want 1", c.ticks)
	}
}

func TestRunLoopEndsFromOnStart(t *testing.T) {
	s := newLoopScreen(t, 100, 40)
	c := &recorder{onStart: func(g *Game) { g.EndGame() }}

	done := make(chan error, 1)
	go func() { done <- runLoop(s, c, NewSettings()) }()
	waitLoop(t, done)

	if c.events != 0 || c.ticks != 0 {
		t.Fatalf("handlers ran after OnStart ended the game: %d events, %d ticks", c.events, c.ticks)
	}
}

func TestDrawContentAndMessage(t *testing.T) {
	s := newLoopScreen(t, 100, 40)
	g := NewGame(newTestChunkMap('a', 4, 3))
	m := ui.NewMessage("hello there").WithTitle("Greeting")
	g.SetMessage(&m)

	draw(s, g)

	originX := (100 - ScreenWidth) / 2
	originY := (40 - ScreenHeight) / 2
	// The play area is boxed, so grid (4, 3) lands one cell in from the
	// border.
	if r := runeAt(s, originX+1+4, originY+1+3); r != 'a' {
		t.Fatalf("grid cell drawn as %q, want 'a'", r)
	}
	// Message panel: title on the border row, text inside.
	msgTop := originY + ScreenHeight - m.PanelHeight()
	if r := runeAt(s, originX+1, msgTop); r != 'G' {
		t.Fatalf("message title cell = %q, want 'G'", r)
	}
	if r := runeAt(s, originX+1, msgTop+1); r != 'h' {
		t.Fatalf("message text cell = %q, want 'h'", r)
	}
}

func TestDrawTooSmallTerminal(t *testing.T) {
	s := newLoopScreen(t, 40, 10)
	g := NewGame(newTestChunkMap('a', 0, 0))

	draw(s, g)

	// No play area border should be drawn, only the error banner.
	found := false
	for x := 0; x < 40; x++ {
		if r := runeAt(s, x, 5); r == 't' {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("error banner not drawn on a too-small terminal")
	}
}
