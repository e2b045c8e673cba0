package editor

import "github.com/dshills/tac/internal/config"

// Status hints for kinds that have no modal editor.
const (
	HintChoice   = "Use ←/→ or Enter to change this choice."
	HintColor    = "Use ←/→ or Enter to change this color."
	HintBoolean  = "Use ←/→ or Enter to toggle this boolean."
	HintCategory = "Category header (not editable)."
)

// Cycle moves a choice or color selection by delta with wraparound. Empty
// option lists and other kinds are left alone and report false.
func Cycle(w config.Writer, e config.Entry, delta int) (bool, error) {
	options, selected, ok := e.Options()
	if !ok || len(options) == 0 {
		return false, nil
	}
	n := len(options)
	next := ((selected+delta)%n + n) % n
	if _, err := w.SetOption(e.Key, next); err != nil {
		return true, err
	}
	return true, nil
}

// Toggle inverts a boolean entry.
func Toggle(w config.Writer, e config.Entry) (bool, error) {
	b, ok := e.Value.(*config.Boolean)
	if !ok {
		return false, nil
	}
	return true, w.SetBool(e.Key, !b.Value)
}

// Adjust applies a left (-1) or right (+1) step to the entry. Text, integer
// and category entries report false.
func Adjust(w config.Writer, e config.Entry, delta int) (bool, error) {
	switch e.Value.(type) {
	case *config.Choice, *config.Color:
		return Cycle(w, e, delta)
	case *config.Boolean:
		return Toggle(w, e)
	case *config.Text, *config.Integer, *config.Category:
		return false, nil
	}
	return false, nil
}

// Hint returns the status hint shown when a kind without a modal editor is
// asked to open one.
func Hint(e config.Entry) (string, bool) {
	switch e.Value.(type) {
	case *config.Choice:
		return HintChoice, true
	case *config.Color:
		return HintColor, true
	case *config.Boolean:
		return HintBoolean, true
	case *config.Category:
		return HintCategory, true
	case *config.Text, *config.Integer:
		return "", false
	}
	return "", false
}
