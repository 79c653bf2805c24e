package ui

import "github.com/gdamore/tcell/v2"

// Color of a character's foreground or background.
type Color = tcell.Color

// Font selects text attributes such as bold, italic or underline. Values
// combine with |.
type Font = tcell.AttrMask

// Style describes how a character is shown: an optional foreground color,
// an optional background color and optional font attributes. Fields left
// nil keep the terminal default, so the zero Style changes nothing.
type Style struct {
	Color           *Color
	BackgroundColor *Color
	Font            *Font
}

// NewStyle returns a Style that changes nothing.
func NewStyle() Style { return Style{} }

// WithColor returns a copy of the style with the foreground color set.
func (s Style) WithColor(c Color) Style {
	s.Color = &c
	return s
}

// WithBackground returns a copy of the style with the background color set.
func (s Style) WithBackground(c Color) Style {
	s.BackgroundColor = &c
	return s
}

// WithFont returns a copy of the style with the font attributes set.
func (s Style) WithFont(f Font) Style {
	s.Font = &f
	return s
}

// Tcell converts the style to its tcell equivalent.
func (s Style) Tcell() tcell.Style {
	st := tcell.StyleDefault
	if s.Color != nil {
		st = st.Foreground(*s.Color)
	}
	if s.BackgroundColor != nil {
		st = st.Background(*s.BackgroundColor)
	}
	if s.Font != nil {
		st = st.Attributes(*s.Font)
	}
	return st
}

// StyleFromTcell rebuilds a Style from its tcell form. Components at their
// terminal default come back nil.
func StyleFromTcell(st tcell.Style) Style {
	fg, bg, attrs := st.Decompose()
	s := NewStyle()
	if fg != tcell.ColorDefault {
		s = s.WithColor(fg)
	}
	if bg != tcell.ColorDefault {
		s = s.WithBackground(bg)
	}
	if attrs != 0 {
		s = s.WithFont(attrs)
	}
	return s
}

// StyledCharacter is a character plus the optional Style to draw it with.
type StyledCharacter struct {
	Rune  rune
	Style *Style
}

// NewStyledCharacter returns a character drawn with the terminal defaults.
func NewStyledCharacter(r rune) StyledCharacter {
	return StyledCharacter{Rune: r}
}

// WithStyle returns a copy of the character with the style set.
func (c StyledCharacter) WithStyle(s Style) StyledCharacter {
	c.Style = &s
	return c
}
