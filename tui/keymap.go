// Package tui provides the interactive result browser.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keymap defines the keyboard interactions available in the result browser.
type keymap struct {
	copy, download, open, quit, forceQuit key.Binding
}

func newKeymap() keymap {
	return keymap{
		copy: key.NewBinding(
			key.WithKeys("enter", "c"),
			key.WithHelp("enter", "copy link"),
		),
		download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download"),
		),
		open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open page"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// shortHelp lists the bindings surfaced in the list's help line.
func (k keymap) shortHelp() []key.Binding {
	return []key.Binding{k.copy, k.download, k.open, k.quit}
}
