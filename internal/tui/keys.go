package tui

import "github.com/charmbracelet/bubbles/key"

// PackKeys are the bindings active while a pack runs.
type PackKeys struct {
	// Cancel stops the run at the next item boundary; the current file finishes.
	Cancel key.Binding
}

// DefaultPackKeys returns the default bindings.
func DefaultPackKeys() PackKeys {
	return PackKeys{
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc/ctrl+c", "cancel after the current file"),
		),
	}
}

// HelpText renders the bindings as a one-line hint.
func (k PackKeys) HelpText() string {
	h := k.Cancel.Help()
	return h.Key + " " + h.Desc
}
