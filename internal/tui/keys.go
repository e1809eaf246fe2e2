package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/casedrill/internal/game"
)

// decodeKey converts a Bubble Tea key message into a session key press.
// Keys without a binding, Alt combinations included, decode to
// game.KeyUnknown so they still count as a press.
func decodeKey(msg tea.KeyMsg) game.Key {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return game.Key{Code: game.KeyUnknown}
		}
		return game.RuneKey(msg.Runes...)
	case tea.KeySpace:
		return game.RuneKey(' ')
	case tea.KeyEnter:
		return game.Key{Code: game.KeyEnter}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return game.Key{Code: game.KeyBackspace}
	case tea.KeyEsc:
		return game.Key{Code: game.KeyEscape}
	}
	if letter, ok := strings.CutPrefix(msg.String(), "ctrl+"); ok && len(letter) == 1 {
		return game.CtrlKey(rune(letter[0]))
	}
	return game.Key{Code: game.KeyUnknown}
}
