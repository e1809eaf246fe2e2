// Package keys declares the key bindings shared by the session and the screens.
package keys

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists every binding the practice session reacts to.
type KeyMap struct {
	Quit         key.Binding
	ResetScore   key.Binding
	Restart      key.Binding
	Submit       key.Binding
	Erase        key.Binding
	SelectNormal key.Binding
	SelectHard   key.Binding
}

// Default is the built-in key map.
var Default = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q", "esc", "ctrl+c"),
		key.WithHelp("Ctrl+Q", "Quit"),
	),
	ResetScore: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("Ctrl+R", "Reset Score"),
	),
	Restart: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("Ctrl+S", "Restart"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Confirm"),
	),
	Erase: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("Backspace", "Delete"),
	),
	SelectNormal: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Normal (with hint)"),
	),
	SelectHard: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Hard (no hint - lose resets score!)"),
	),
}

// Legend renders bindings as "Ctrl+R - Reset Score | Ctrl+Q - Quit".
func Legend(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s - %s", h.Key, h.Desc))
	}
	return strings.Join(parts, " | ")
}
