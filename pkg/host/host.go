// Package host defines the collaborators a data extraction needs from
// its host application, and implementations for command-line use.
package host

import (
	"github.com/kataras/sketch-data/pkg/sketch"
)

// SelectionProvider exposes the currently selected top-level layers.
// *sketch.Document and sketch.Selection implement it.
type SelectionProvider interface {
	SelectedLayers() []*sketch.Layer
}

// Messenger shows short, transient feedback to the user.
type Messenger interface {
	Message(text string)
}

// MessengerFunc adapts a function to a Messenger.
type MessengerFunc func(text string)

// Message calls f(text).
func (f MessengerFunc) Message(text string) {
	f(text)
}

// Discard is a Messenger that drops every message.
var Discard Messenger = MessengerFunc(func(string) {})
