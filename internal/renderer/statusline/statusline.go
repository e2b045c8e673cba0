// Package statusline provides the transient message row and the bottom
// help row of the editor.
package statusline

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/tac/internal/renderer/core"
	"github.com/dshills/tac/internal/renderer/view"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// StatusLine holds at most one transient message. The message stays until
// it is cleared or replaced.
type StatusLine struct {
	message     string
	messageType MessageType
	autosave    bool
}

// New creates a new status line.
func New(autosave bool) *StatusLine {
	return &StatusLine{autosave: autosave}
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message and its type.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Hint returns the bottom help row text.
func (s *StatusLine) Hint() string {
	if s.autosave {
		return "Press escape to quit"
	}
	return "Press escape to quit, s to save…"
}

// Render draws the message on the second-to-last row and the hint on the last.
func (s *StatusLine) Render(f *view.Frame) {
	if f.Height <= 0 {
		return
	}
	f.Print(f.Height-1, 0, s.Hint(), core.DefaultStyle())
	if s.message != "" && f.Height >= 2 {
		f.Print(f.Height-2, 0, Truncate(s.message, f.Width-1), s.style())
	}
}

func (s *StatusLine) style() core.Style {
	switch s.messageType {
	case MessageError:
		return core.DefaultStyle().WithForeground(core.ColorRed).Bold()
	case MessageWarning:
		return core.DefaultStyle().WithForeground(core.ColorYellow)
	default:
		return core.DefaultStyle()
	}
}

// Truncate cuts s to at most width display columns on grapheme boundaries.
// A width below one keeps a single column.
func Truncate(s string, width int) string {
	if width < 1 {
		width = 1
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	out := make([]byte, 0, len(s))
	used := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var (
			cluster string
			w       int
		)
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out)
}
