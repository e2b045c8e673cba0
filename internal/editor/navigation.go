package editor

import "github.com/dshills/tac/internal/config"

// Navigator tracks the selected entry. Category entries are never selected
// unless the list holds nothing else.
type Navigator struct {
	entries  []config.Entry
	selected int
}

// NewNavigator selects the first non-category entry, or index 0 when there
// is none.
func NewNavigator(entries []config.Entry) *Navigator {
	n := &Navigator{entries: entries}
	for i, e := range entries {
		if !e.IsCategory() {
			n.selected = i
			break
		}
	}
	return n
}

// Selected returns the selected index.
func (n *Navigator) Selected() int {
	return n.selected
}

// Current returns the selected entry.
func (n *Navigator) Current() (config.Entry, bool) {
	if n.selected < 0 || n.selected >= len(n.entries) {
		return config.Entry{}, false
	}
	return n.entries[n.selected], true
}

// Up moves to the nearest non-category entry above. It reports whether the
// selection changed.
func (n *Navigator) Up() bool {
	for i := n.selected - 1; i >= 0; i-- {
		if !n.entries[i].IsCategory() {
			n.selected = i
			return true
		}
	}
	return false
}

// Down moves to the nearest non-category entry below.
func (n *Navigator) Down() bool {
	for i := n.selected + 1; i < len(n.entries); i++ {
		if !n.entries[i].IsCategory() {
			n.selected = i
			return true
		}
	}
	return false
}
