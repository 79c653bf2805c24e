package app

import "github.com/gdamore/tcell/v2"

// Controller is the contract a game implements to be driven by Run. Each
// handler receives the Game so it can read and modify the game state.
type Controller interface {
	// OnStart is called once, before any other handler.
	OnStart(g *Game)

	// OnEvent is called for every terminal event (key presses, mouse,
	// resize) other than the configured quit key. Use it to react to
	// user input.
	OnEvent(g *Game, ev tcell.Event)

	// OnTick is called once per tick interval, between redraws, so game
	// logic can run independently of user input.
	OnTick(g *Game)
}
