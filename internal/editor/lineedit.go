package editor

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/dshills/tac/internal/config"
	"github.com/dshills/tac/internal/renderer/backend"
	"github.com/dshills/tac/internal/renderer/core"
	"github.com/dshills/tac/internal/renderer/view"
)

// IntegerInputLimit caps the integer buffer length.
const IntegerInputLimit = 32

// EditResult is the outcome of one key in a line editor.
type EditResult int

const (
	EditContinue EditResult = iota
	EditCommit
	EditCancel
)

// LineEditor captures a new value for a text or integer entry on the bottom
// three rows of the screen.
type LineEditor struct {
	key     string
	integer bool
	maxSize *int
	limit   int
	buf     []rune
}

// NewLineEditor opens an editor for e seeded with its current value. Only
// text and integer entries have one.
func NewLineEditor(e config.Entry) (*LineEditor, bool) {
	switch v := e.Value.(type) {
	case *config.Text:
		return &LineEditor{
			key:     e.Key,
			maxSize: v.MaximumSize,
			limit:   v.Limit(),
			buf:     []rune(v.Value),
		}, true
	case *config.Integer:
		return &LineEditor{
			key:     e.Key,
			integer: true,
			limit:   IntegerInputLimit,
			buf:     []rune(strconv.FormatInt(v.Value, 10)),
		}, true
	case *config.Choice, *config.Color, *config.Boolean, *config.Category:
		return nil, false
	}
	return nil, false
}

// Key returns the key of the entry being edited.
func (le *LineEditor) Key() string {
	return le.key
}

// Input returns the current buffer.
func (le *LineEditor) Input() string {
	return string(le.buf)
}

// Prompt returns the instruction row text.
func (le *LineEditor) Prompt() string {
	switch {
	case le.integer:
		return fmt.Sprintf("Editing '%s': Enter=save, Esc=cancel (integer)", le.key)
	case le.maxSize != nil:
		return fmt.Sprintf("Editing '%s': Enter=save, Esc=cancel (max %d chars)", le.key, *le.maxSize)
	default:
		return fmt.Sprintf("Editing '%s': Enter=save, Esc=cancel", le.key)
	}
}

// Label returns the row shown above the input.
func (le *LineEditor) Label() string {
	if le.integer {
		return "Current value (editable integer):"
	}
	return "Current value (editable):"
}

// HandleKey applies one key to the buffer.
func (le *LineEditor) HandleKey(ev backend.Event) EditResult {
	if ev.Type != backend.EventKey {
		return EditContinue
	}
	switch ev.Key {
	case backend.KeyEnter:
		return EditCommit
	case backend.KeyEscape, backend.KeyCtrlC:
		return EditCancel
	case backend.KeyBackspace:
		if len(le.buf) > 0 {
			le.buf = le.buf[:len(le.buf)-1]
		}
	case backend.KeyRune:
		le.insert(ev.Rune)
	}
	return EditContinue
}

func (le *LineEditor) insert(r rune) {
	if len(le.buf) >= le.limit {
		return
	}
	if le.integer {
		if (r >= '0' && r <= '9') || (r == '-' && len(le.buf) == 0) {
			le.buf = append(le.buf, r)
		}
		return
	}
	if unicode.IsPrint(r) {
		le.buf = append(le.buf, r)
	}
}

// Commit writes the buffer to the entry. An integer buffer that is empty or
// a lone '-' commits zero; one that does not parse keeps the old value.
func (le *LineEditor) Commit(w config.Writer) error {
	if !le.integer {
		return w.SetString(le.key, string(le.buf))
	}
	s := string(le.buf)
	if s == "" || s == "-" {
		return w.SetInt(le.key, 0)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return w.SetInt(le.key, v)
}

// Visible returns the tail of the buffer that fits in width-1 columns.
func (le *LineEditor) Visible(width int) string {
	avail := max(width-1, 1)
	used := 0
	start := len(le.buf)
	for start > 0 {
		w := core.RuneWidth(le.buf[start-1])
		if used+w > avail {
			break
		}
		used += w
		start--
	}
	return string(le.buf[start:])
}

// Render draws the prompt, label and input over the bottom three rows and
// places the cursor after the input.
func (le *LineEditor) Render(f *view.Frame) {
	h := f.Height
	if h < 3 {
		return
	}
	visible := le.Visible(f.Width)
	f.SetRow(h-3, le.Prompt(), core.DefaultStyle())
	f.SetRow(h-2, le.Label(), core.DefaultStyle())
	f.SetRow(h-1, visible, core.DefaultStyle())
	f.ShowCursor(core.StringWidth(visible), h-1)
}
