package editor

import "github.com/dshills/tac/internal/renderer/backend"

// Action is a named browsing command.
type Action string

// Browsing actions.
const (
	ActionNone     Action = ""
	ActionUp       Action = "cursor.up"
	ActionDown     Action = "cursor.down"
	ActionActivate Action = "field.activate"
	ActionPrev     Action = "field.prev"
	ActionNext     Action = "field.next"
	ActionEdit     Action = "field.edit"
	ActionSave     Action = "config.save"
	ActionQuit     Action = "editor.quit"
)

// Binding maps one key to an action. Rune is only consulted when Key is
// backend.KeyRune.
type Binding struct {
	Key    backend.Key
	Rune   rune
	Action Action
}

// Keymap is an ordered list of bindings; the first match wins.
type Keymap struct {
	Bindings []Binding
}

// DefaultKeymap returns the browsing bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{Bindings: []Binding{
		{Key: backend.KeyUp, Action: ActionUp},
		{Key: backend.KeyDown, Action: ActionDown},
		{Key: backend.KeyEnter, Action: ActionActivate},
		{Key: backend.KeyRune, Rune: ' ', Action: ActionActivate},
		{Key: backend.KeyLeft, Action: ActionPrev},
		{Key: backend.KeyRight, Action: ActionNext},
		{Key: backend.KeyRune, Rune: 'e', Action: ActionEdit},
		{Key: backend.KeyRune, Rune: 's', Action: ActionSave},
		{Key: backend.KeyEscape, Action: ActionQuit},
		{Key: backend.KeyCtrlC, Action: ActionQuit},
	}}
}

// Bind adds a binding ahead of the existing ones.
func (k *Keymap) Bind(b Binding) *Keymap {
	k.Bindings = append([]Binding{b}, k.Bindings...)
	return k
}

// Lookup returns the action bound to ev, or ActionNone.
func (k *Keymap) Lookup(ev backend.Event) Action {
	if ev.Type != backend.EventKey {
		return ActionNone
	}
	for _, b := range k.Bindings {
		if b.Key != ev.Key {
			continue
		}
		if b.Key == backend.KeyRune && b.Rune != ev.Rune {
			continue
		}
		return b.Action
	}
	return ActionNone
}
