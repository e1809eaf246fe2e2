package game

// KeyCode identifies the kind of key press.
type KeyCode int

// Key codes understood by the session.
const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyEscape
)

// Key is a decoded key press. Runes is set for KeyRune and may hold more
// than one rune when the terminal delivers a paste.
type Key struct {
	Code  KeyCode
	Runes []rune
	Ctrl  bool
}

// RuneKey returns a plain character key press.
func RuneKey(r ...rune) Key {
	return Key{Code: KeyRune, Runes: r}
}

// CtrlKey returns a Control+letter key press.
func CtrlKey(r rune) Key {
	return Key{Code: KeyRune, Runes: []rune{r}, Ctrl: true}
}

// String names the key the way the key bindings spell it, e.g. "ctrl+r".
func (k Key) String() string {
	var name string
	switch k.Code {
	case KeyRune:
		name = string(k.Runes)
	case KeyEnter:
		name = "enter"
	case KeyBackspace:
		name = "backspace"
	case KeyEscape:
		name = "esc"
	default:
		return ""
	}
	if k.Ctrl {
		return "ctrl+" + name
	}
	return name
}
