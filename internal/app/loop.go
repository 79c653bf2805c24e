package app

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"

	"termgame/internal/core"
	"termgame/internal/render"
)

// The play area is fixed to the size of a standard vt100.
const (
	ScreenWidth  = 80
	ScreenHeight = 24
)

// Run starts a game with the given Controller. It puts the terminal into
// raw mode on the alternate screen with mouse capture, drives the event
// loop until the game ends, and restores the terminal before returning,
// also on panic.
func Run(c Controller, settings Settings) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return fmt.Errorf("app: stdout is not a terminal")
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("app: open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("app: enter raw mode: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	return runLoop(screen, c, settings)
}

// runLoop drives the controller until the game ends. It assumes screen is
// initialized and leaves its cleanup to the caller.
func runLoop(screen tcell.Screen, c Controller, settings Settings) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	game := NewGame(render.NewCharChunkMap())
	step := core.NewFixedStep(settings.TickDuration)

	c.OnStart(game)
	if game.GameWillEnd() {
		return nil
	}

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		draw(screen, game)

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(step.Timeout())

		select {
		case ev, ok := <-events:
			if !ok {
				return fmt.Errorf("app: terminal event stream closed")
			}
			if settings.QuitKey != nil && settings.QuitKey.Matches(ev) {
				return nil
			}
			c.OnEvent(game, ev)
		case <-timer.C:
		}
		if game.GameWillEnd() {
			return nil
		}

		if step.ShouldStep() {
			c.OnTick(game)
			if game.GameWillEnd() {
				return nil
			}
		}
	}
}

// draw lays out and paints one frame.
func draw(screen tcell.Screen, game *Game) {
	screen.Clear()
	w, h := screen.Size()
	if w < ScreenWidth || h < ScreenHeight {
		drawTooSmall(screen, w, h)
		screen.Show()
		return
	}

	// Center the fixed-size play area in the real terminal.
	origin := render.Rect{
		X: (w - ScreenWidth) / 2,
		Y: (h - ScreenHeight) / 2,
		W: ScreenWidth,
		H: ScreenHeight,
	}

	mainHeight := ScreenHeight
	var msgHeight int
	if m := game.Message(); m != nil {
		msgHeight = m.PanelHeight()
		if limit := ScreenHeight - 3; msgHeight > limit {
			msgHeight = limit
		}
		mainHeight -= msgHeight
	}

	render.NewCharView(game.chunks).
		Viewport(game.Viewport()).
		Box().
		Draw(screen, render.Rect{X: origin.X, Y: origin.Y, W: ScreenWidth, H: mainHeight})

	if m := game.Message(); m != nil {
		title := m.Title
		if title == "" {
			title = "Message"
		}
		style := tcell.StyleDefault.
			Background(tcell.ColorWhite).
			Foreground(tcell.ColorBlack)
		render.DrawPanel(screen,
			render.Rect{X: origin.X, Y: origin.Y + mainHeight, W: ScreenWidth, H: msgHeight},
			title, m.Text, style)
	}
	screen.Show()
}

// drawTooSmall paints the error shown when the terminal cannot fit the
// play area.
func drawTooSmall(screen tcell.Screen, w, h int) {
	msg := fmt.Sprintf("termgame requires a %dx%d terminal!", ScreenWidth, ScreenHeight)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	x := (w - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	render.DrawText(screen, x, h/2, msg, w, style)
}
