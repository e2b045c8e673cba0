// Package editor implements the interactive key/value configuration editor.
//
// A Session owns a Navigator for the selection, a status line for transient
// feedback and, while a text or integer entry is being edited, a LineEditor.
// Keys are mapped to actions through a Keymap:
//
//	↑/↓        move, skipping category headers
//	Enter/Space cycle a choice or color, toggle a boolean, or open the
//	           line editor for text and integer entries
//	←/→        step a choice or color backwards/forwards, toggle a boolean
//	e          open the line editor
//	s          save
//	Esc        leave the editor
//
// Every change goes through the store's setters, so it is written to disk
// right away when the store has autosave enabled.
//
// The session never talks to a terminal directly. It builds view frames and
// hands them to a Display, which makes it easy to drive from tests.
package editor
