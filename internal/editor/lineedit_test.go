package editor

import (
	"strings"
	"testing"

	"github.com/dshills/tac/internal/config"
	"github.com/dshills/tac/internal/renderer/backend"
	"github.com/dshills/tac/internal/renderer/view"
)

func typeString(le *LineEditor, s string) {
	for _, r := range s {
		le.HandleKey(backend.RuneEvent(r))
	}
}

func TestNewLineEditorKinds(t *testing.T) {
	for _, e := range mixedEntries() {
		_, ok := NewLineEditor(e)
		want := e.Key == "label" || e.Key == "width"
		if ok != want {
			t.Errorf("NewLineEditor(%q) ok = %v, want %v", e.Key, ok, want)
		}
	}
}

func TestTextEditorCapAndBackspace(t *testing.T) {
	e := config.Entry{Key: "k", Value: &config.Text{Value: "ab", MaximumSize: config.MaxSize(4)}}
	le, _ := NewLineEditor(e)

	if le.Input() != "ab" {
		t.Fatalf("seeded input = %q, want ab", le.Input())
	}
	typeString(le, "cdef")
	if le.Input() != "abcd" {
		t.Errorf("input = %q, want abcd (capped)", le.Input())
	}

	le.HandleKey(backend.KeyEvent(backend.KeyBackspace))
	le.HandleKey(backend.KeyEvent(backend.KeyBackspace))
	if le.Input() != "ab" {
		t.Errorf("after backspace = %q, want ab", le.Input())
	}

	// Non-printable runes are ignored.
	le.HandleKey(backend.RuneEvent('\x07'))
	if le.Input() != "ab" {
		t.Errorf("control rune appended: %q", le.Input())
	}

	// Backspace on an empty buffer is harmless.
	for i := 0; i < 5; i++ {
		le.HandleKey(backend.KeyEvent(backend.KeyBackspace))
	}
	if le.Input() != "" {
		t.Errorf("input = %q, want empty", le.Input())
	}
}

func TestTextEditorDefaultLimit(t *testing.T) {
	le, _ := NewLineEditor(config.Entry{Key: "k", Value: &config.Text{}})
	typeString(le, strings.Repeat("x", config.DefaultTextLimit+10))
	if got := len(le.Input()); got != config.DefaultTextLimit {
		t.Errorf("input length = %d, want %d", got, config.DefaultTextLimit)
	}
}

func TestIntegerEditorInput(t *testing.T) {
	tests := []struct {
		name  string
		seed  int64
		keys  string
		clear bool
		want  string
	}{
		{"digits appended", 5, "12", false, "512"},
		{"minus only leading", 0, "-3-4", true, "-34"},
		{"letters ignored", 0, "1a2b", true, "12"},
		{"capped at 32", 0, strings.Repeat("9", 40), true, strings.Repeat("9", IntegerInputLimit)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			le, _ := NewLineEditor(config.Entry{Key: "n", Value: &config.Integer{Value: tt.seed}})
			if tt.clear {
				for le.Input() != "" {
					le.HandleKey(backend.KeyEvent(backend.KeyBackspace))
				}
			}
			typeString(le, tt.keys)
			if le.Input() != tt.want {
				t.Errorf("input = %q, want %q", le.Input(), tt.want)
			}
		})
	}
}

func TestIntegerEditorCommit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"empty commits zero", "", 0},
		{"lone minus commits zero", "-", 0},
		{"negative", "-42", -42},
		{"overflow keeps previous", "99999999999999999999", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newStore(t, []config.Entry{{Key: "n", Value: &config.Integer{Value: 7}}}, false)
			e, _ := cfg.Entry(0)
			le, _ := NewLineEditor(e)
			le.HandleKey(backend.KeyEvent(backend.KeyBackspace))
			typeString(le, tt.input)

			if res := le.HandleKey(backend.KeyEvent(backend.KeyEnter)); res != EditCommit {
				t.Fatalf("Enter = %v, want EditCommit", res)
			}
			if err := le.Commit(cfg); err != nil {
				t.Fatalf("Commit failed: %v", err)
			}
			if got := cfg.GetInt("n"); got != tt.want {
				t.Errorf("value = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLineEditorCancel(t *testing.T) {
	le, _ := NewLineEditor(config.Entry{Key: "k", Value: &config.Text{Value: "old"}})
	typeString(le, "new")
	if res := le.HandleKey(backend.KeyEvent(backend.KeyEscape)); res != EditCancel {
		t.Errorf("Escape = %v, want EditCancel", res)
	}
}

func TestLineEditorVisibleTail(t *testing.T) {
	le, _ := NewLineEditor(config.Entry{Key: "k", Value: &config.Text{Value: "abcdefghij"}})

	if got := le.Visible(20); got != "abcdefghij" {
		t.Errorf("Visible(20) = %q", got)
	}
	if got := le.Visible(5); got != "ghij" {
		t.Errorf("Visible(5) = %q, want ghij", got)
	}
	if got := le.Visible(1); got != "j" {
		t.Errorf("Visible(1) = %q, want j", got)
	}
}

func TestLineEditorPrompt(t *testing.T) {
	tests := []struct {
		entry  config.Entry
		prompt string
		label  string
	}{
		{
			config.Entry{Key: "quit", Value: &config.Text{Value: "q", MaximumSize: config.MaxSize(1)}},
			"Editing 'quit': Enter=save, Esc=cancel (max 1 chars)",
			"Current value (editable):",
		},
		{
			config.Entry{Key: "free", Value: &config.Text{}},
			"Editing 'free': Enter=save, Esc=cancel",
			"Current value (editable):",
		},
		{
			config.Entry{Key: "clock width", Value: &config.Integer{Value: 5}},
			"Editing 'clock width': Enter=save, Esc=cancel (integer)",
			"Current value (editable integer):",
		},
	}

	for _, tt := range tests {
		le, _ := NewLineEditor(tt.entry)
		if le.Prompt() != tt.prompt {
			t.Errorf("Prompt() = %q, want %q", le.Prompt(), tt.prompt)
		}
		if le.Label() != tt.label {
			t.Errorf("Label() = %q, want %q", le.Label(), tt.label)
		}
	}
}

func TestLineEditorRender(t *testing.T) {
	le, _ := NewLineEditor(config.Entry{Key: "k", Value: &config.Text{Value: "abcdefghij"}})
	f := view.NewFrame(6, 10)
	f.Print(7, 0, "list row", view.NormalStyle)
	le.Render(f)

	if got := f.Row(7); got != "Editing 'k': Enter=save, Esc=cancel" {
		t.Errorf("prompt row = %q", got)
	}
	if got := f.Row(9); got != "fghij" {
		t.Errorf("input row = %q, want fghij", got)
	}
	if !f.CursorVisible || f.CursorX != 5 || f.CursorY != 9 {
		t.Errorf("cursor = (%d, %d, %v), want (5, 9, true)", f.CursorX, f.CursorY, f.CursorVisible)
	}
}
