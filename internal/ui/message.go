package ui

import "strings"

// Message is a block of text shown in a panel under the play area, with an
// optional title in the panel's top-left corner.
type Message struct {
	Title string
	Text  string
}

// NewMessage creates a message with the given text and no title.
func NewMessage(text string) Message {
	return Message{Text: text}
}

// WithTitle returns a copy of the message with the title set.
func (m Message) WithTitle(title string) Message {
	m.Title = title
	return m
}

// PanelHeight reports how many screen rows the message panel occupies: one
// per text line plus the two border rows.
func (m Message) PanelHeight() int {
	return strings.Count(m.Text, "\n") + 3
}
