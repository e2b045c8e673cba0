package view

import (
	"strings"
	"testing"

	"github.com/dshills/tac/internal/config"
	"github.com/dshills/tac/internal/renderer/core"
)

func sampleEntries() []config.Entry {
	return []config.Entry{
		{Key: "A", Value: &config.Category{}},
		{Key: "x", Value: &config.Choice{Options: []string{"a", "b", "c"}, Selected: 0}},
		{Key: "name", Value: &config.Text{Value: "hi"}},
		{Key: "tint", Value: &config.Color{Options: []string{"BLACK", "RED"}, Selected: 0}},
		{Key: "n", Value: &config.Integer{Value: -3}},
		{Key: "on", Value: &config.Boolean{Value: false}},
	}
}

func TestEntryLine(t *testing.T) {
	tests := []struct {
		entry config.Entry
		want  string
	}{
		{config.Entry{Key: "Colors", Value: &config.Category{}}, "Colors"},
		{config.Entry{Key: "label", Value: &config.Text{Value: "HOURS"}}, `label                = "HOURS"`},
		{config.Entry{Key: "mode", Value: &config.Choice{Options: []string{"a"}, Selected: 0}}, "mode                 = [a]"},
		{config.Entry{Key: "mode", Value: &config.Choice{Options: []string{}, Selected: 0}}, "mode                 = [<?>]"},
		{config.Entry{Key: "w", Value: &config.Integer{Value: 42}}, "w                    = 42"},
		{config.Entry{Key: "b", Value: &config.Boolean{Value: true}}, "b                    = [true]"},
	}

	for _, tt := range tests {
		if got := EntryLine(tt.entry); got != tt.want {
			t.Errorf("EntryLine(%q) = %q, want %q", tt.entry.Key, got, tt.want)
		}
	}
}

func TestListBounds(t *testing.T) {
	tests := []struct {
		height              int
		top, bottom, center int
	}{
		{24, 3, 21, 12},
		{8, 3, 5, 4},
		{5, 3, 2, 2}, // region empty: center clamps to bottom
	}

	for _, tt := range tests {
		top, bottom, center := ListBounds(tt.height)
		if top != tt.top || bottom != tt.bottom || center != tt.center {
			t.Errorf("ListBounds(%d) = (%d, %d, %d), want (%d, %d, %d)",
				tt.height, top, bottom, center, tt.top, tt.bottom, tt.center)
		}
	}
}

func TestLayoutCursorCentered(t *testing.T) {
	entries := sampleEntries()
	width, height := 80, 24

	for selected := 1; selected < len(entries); selected++ {
		f := Layout(Model{Entries: entries, Selected: selected, Path: "/tmp/c.json", Autosave: true}, width, height)
		_, _, center := ListBounds(height)

		row := strings.TrimSpace(f.Row(center))
		if row != EntryLine(entries[selected]) {
			t.Errorf("selected=%d: center row = %q, want %q", selected, row, EntryLine(entries[selected]))
		}
		// Neighbours are drawn relative to the selection.
		above := strings.TrimSpace(f.Row(center - 1))
		if want := strings.TrimSpace(EntryLine(entries[selected-1])); above != want {
			t.Errorf("selected=%d: row above = %q, want %q", selected, above, want)
		}
	}
}

func TestLayoutHeaderAndHelp(t *testing.T) {
	f := Layout(Model{Entries: sampleEntries(), Selected: 1, Path: "/tmp/c.json", Autosave: true}, 120, 24)
	if got := f.Row(0); got != "Key/Value editor  |  file: /tmp/c.json" {
		t.Errorf("header = %q", got)
	}
	if strings.Contains(f.Row(1), "s: save") {
		t.Error("save hint should be hidden with autosave on")
	}

	f = Layout(Model{Entries: sampleEntries(), Selected: 1, Autosave: false}, 120, 24)
	if !strings.Contains(f.Row(1), "s: save") {
		t.Error("save hint should be shown with autosave off")
	}
}

func TestLayoutHorizontalCentering(t *testing.T) {
	entries := sampleEntries()
	maxWidth := 0
	for _, e := range entries {
		maxWidth = max(maxWidth, len(EntryLine(e)))
	}

	f := Layout(Model{Entries: entries, Selected: 1}, 80, 24)
	for _, l := range f.Lines {
		if l.Row < ListTop {
			continue
		}
		if want := (80 - maxWidth) / 2; l.Col != want {
			t.Errorf("row %d starts at col %d, want %d", l.Row, l.Col, want)
		}
	}

	// Narrow viewport clamps the margin at zero.
	f = Layout(Model{Entries: entries, Selected: 1}, 10, 24)
	for _, l := range f.Lines {
		if l.Row >= ListTop && l.Col != 0 {
			t.Errorf("narrow: row %d starts at col %d, want 0", l.Row, l.Col)
		}
	}
}

func TestLayoutClipsOutsideRegion(t *testing.T) {
	entries := make([]config.Entry, 50)
	for i := range entries {
		entries[i] = config.Entry{Key: "k", Value: &config.Integer{Value: int64(i)}}
	}
	height := 12
	f := Layout(Model{Entries: entries, Selected: 25}, 80, height)
	top, bottom, _ := ListBounds(height)

	for _, l := range f.Lines {
		if l.Row < 2 {
			continue
		}
		if l.Row < top || l.Row > bottom {
			t.Errorf("line drawn at row %d outside [%d, %d]", l.Row, top, bottom)
		}
	}
	if got := len(f.Lines) - 2; got != bottom-top+1 {
		t.Errorf("drew %d entry rows, want %d", got, bottom-top+1)
	}
}

func TestLayoutStyles(t *testing.T) {
	entries := sampleEntries()
	_, _, center := ListBounds(24)

	// Category bar above the first selectable entry.
	f := Layout(Model{Entries: entries, Selected: 1}, 80, 24)
	catRow := center - 1
	var bar Line
	for _, l := range f.Lines {
		if l.Row == catRow {
			bar = l
		}
	}
	if len(bar.Spans) != 1 || !bar.Spans[0].Style.Equals(CategoryStyle) {
		t.Fatalf("category bar = %+v, want one span in CategoryStyle", bar)
	}
	maxWidth := 0
	for _, e := range entries {
		maxWidth = max(maxWidth, len(EntryLine(e)))
	}
	if bar.Width() != maxWidth {
		t.Errorf("category bar width = %d, want %d", bar.Width(), maxWidth)
	}
	if strings.TrimSpace(bar.Spans[0].Text) != "A" {
		t.Errorf("category bar text = %q", bar.Spans[0].Text)
	}

	// Selected plain entry is reversed.
	style, ok := f.StyleAt(center, (80-maxWidth)/2)
	if !ok || !style.Equals(SelectedStyle) {
		t.Errorf("selected row style = %+v (found %v), want SelectedStyle", style, ok)
	}
	style, ok = f.StyleAt(center+1, (80-maxWidth)/2)
	if !ok || !style.Equals(NormalStyle) {
		t.Errorf("unselected row style = %+v (found %v), want NormalStyle", style, ok)
	}
}

func TestLayoutColorEntry(t *testing.T) {
	entries := sampleEntries()
	_, _, center := ListBounds(24)

	f := Layout(Model{Entries: entries, Selected: 3}, 80, 24)
	var line Line
	for _, l := range f.Lines {
		if l.Row == center {
			line = l
		}
	}
	if len(line.Spans) != 3 {
		t.Fatalf("color line spans = %d, want 3", len(line.Spans))
	}
	if !line.Spans[0].Style.Attributes.Has(core.AttrReverse) || !line.Spans[2].Style.Attributes.Has(core.AttrReverse) {
		t.Error("prefix and suffix should be reversed when selected")
	}
	name := line.Spans[1]
	if name.Text != "BLACK" {
		t.Errorf("option span = %q, want BLACK", name.Text)
	}
	if name.Style.Attributes.Has(core.AttrReverse) {
		t.Error("option name should never be reversed")
	}
	if !name.Style.Foreground.Equals(core.ColorBlack) || !name.Style.Background.Equals(core.ColorWhite) {
		t.Errorf("BLACK style = %+v, want black on white", name.Style)
	}

	// Unselected: no highlight on the frame spans.
	f = Layout(Model{Entries: entries, Selected: 1}, 80, 24)
	for _, l := range f.Lines {
		if l.Row == center+2 {
			if l.Spans[0].Style.Attributes.Has(core.AttrReverse) {
				t.Error("unselected color prefix should not be reversed")
			}
		}
	}
}

func TestLayoutColorWithoutOptions(t *testing.T) {
	entries := []config.Entry{{Key: "tint", Value: &config.Color{}}}
	_, _, center := ListBounds(24)

	f := Layout(Model{Entries: entries}, 80, 24)
	if got := strings.TrimSpace(f.Row(center)); got != "tint                 = [<?>]" {
		t.Errorf("row = %q", got)
	}
	for _, l := range f.Lines {
		if l.Row != center {
			continue
		}
		if len(l.Spans) != 3 || l.Spans[1].Text != "<?>" {
			t.Fatalf("spans = %+v, want prefix, <?>, suffix", l.Spans)
		}
		if !l.Spans[2].Style.Attributes.Has(core.AttrReverse) {
			t.Error("closing bracket should take the selection highlight")
		}
		if l.Spans[1].Style.Attributes.Has(core.AttrReverse) {
			t.Error("placeholder should never be reversed")
		}
	}
}

func TestColorStyle(t *testing.T) {
	if s := ColorStyle("red"); !s.Foreground.Equals(core.ColorRed) {
		t.Errorf("ColorStyle(red) = %+v", s)
	}
	if s := ColorStyle("#102030"); !s.Foreground.Equals(core.ColorFromRGB(0x10, 0x20, 0x30)) {
		t.Errorf("ColorStyle(hex) = %+v", s)
	}
	if s := ColorStyle("chartreuse-ish"); !s.Equals(NormalStyle) {
		t.Errorf("unknown color should use the default style, got %+v", s)
	}
}

func TestFrameSetRow(t *testing.T) {
	f := NewFrame(20, 5)
	f.Print(2, 4, "hello", NormalStyle)
	f.Print(3, 0, "keep", NormalStyle)
	f.SetRow(2, "bye", NormalStyle)

	if got := f.Row(2); got != "bye" {
		t.Errorf("Row(2) = %q, want bye", got)
	}
	if got := f.Row(3); got != "keep" {
		t.Errorf("Row(3) = %q, want keep", got)
	}
}
