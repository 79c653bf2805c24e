package app

import (
	"flag"
	"time"
)

// Settings configures how Run drives a game.
type Settings struct {
	// TickDuration is the interval between OnTick calls and redraws.
	// Shorter means a more responsive game at the cost of CPU.
	TickDuration time.Duration

	// QuitKey ends the game when pressed, without the controller seeing
	// the event. Nil disables the built-in quit handling entirely.
	QuitKey *KeyPress
}

// NewSettings returns the defaults: 50ms ticks, quit on Ctrl-C.
func NewSettings() Settings {
	quit := Ctrl('c')
	return Settings{
		TickDuration: 50 * time.Millisecond,
		QuitKey:      &quit,
	}
}

// Bind attaches the flag-tunable settings to the provided FlagSet.
func (s *Settings) Bind(fs *flag.FlagSet) {
	fs.DurationVar(&s.TickDuration, "tick", s.TickDuration, "interval between game ticks")
}
