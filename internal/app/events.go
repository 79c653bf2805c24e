package app

import "github.com/gdamore/tcell/v2"

// KeyPress identifies a single keyboard combination: a special key or a
// rune, plus modifiers. It is the comparable form of a tcell key event and
// is what the quit key is configured with.
type KeyPress struct {
	Key  tcell.Key
	Rune rune
	Mods tcell.ModMask
}

// Key returns the KeyPress for a special key with no modifiers.
func Key(k tcell.Key) KeyPress {
	return KeyPress{Key: k}
}

// Rune returns the KeyPress for a plain character key.
func Rune(r rune) KeyPress {
	return KeyPress{Key: tcell.KeyRune, Rune: r}
}

// Ctrl returns the KeyPress for Ctrl plus a lowercase letter. Terminals
// deliver these as dedicated control codes.
func Ctrl(r rune) KeyPress {
	if r < 'a' || r > 'z' {
		return KeyPress{Key: tcell.KeyRune, Rune: r, Mods: tcell.ModCtrl}
	}
	return KeyPress{Key: tcell.KeyCtrlA + tcell.Key(r-'a')}
}

// Matches reports whether ev is this key press.
func (k KeyPress) Matches(ev tcell.Event) bool {
	ke, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	if ke.Key() != k.Key {
		return false
	}
	if k.Key == tcell.KeyRune && ke.Rune() != k.Rune {
		return false
	}
	// Some terminals report Ctrl both in the key code and the modifier
	// mask; the code alone already identifies the combination.
	mods := ke.Modifiers()
	if k.Key >= tcell.KeyCtrlA && k.Key <= tcell.KeyCtrlZ {
		mods &^= tcell.ModCtrl
	}
	return mods == k.Mods
}
