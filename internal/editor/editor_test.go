package editor

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/tac/internal/config"
	"github.com/dshills/tac/internal/renderer/backend"
)

func categoryChoiceEntries() []config.Entry {
	return []config.Entry{
		{Key: "A", Value: &config.Category{}},
		{Key: "x", Value: &config.Choice{Options: []string{"a", "b", "c"}, Selected: 0}},
	}
}

func mixedEntries() []config.Entry {
	return []config.Entry{
		{Key: "Top", Value: &config.Category{}},
		{Key: "mode", Value: &config.Choice{Options: []string{"a", "b", "c"}, Selected: 0}},
		{Key: "tint", Value: &config.Color{Options: []string{"RED", "GREEN"}, Selected: 1}},
		{Key: "Middle", Value: &config.Category{}},
		{Key: "label", Value: &config.Text{Value: "HOURS", MaximumSize: config.MaxSize(8)}},
		{Key: "width", Value: &config.Integer{Value: 5}},
		{Key: "on", Value: &config.Boolean{Value: true}},
		{Key: "Bottom", Value: &config.Category{}},
	}
}

func newStore(t *testing.T, entries []config.Entry, autosave bool) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tac.json")
	return config.New(path, entries, config.WithAutosave(autosave))
}

func TestNavigatorInitialSelection(t *testing.T) {
	tests := []struct {
		name    string
		entries []config.Entry
		want    int
	}{
		{"leading category", categoryChoiceEntries(), 1},
		{"no category", []config.Entry{{Key: "n", Value: &config.Integer{}}}, 0},
		{"only categories", []config.Entry{{Key: "A", Value: &config.Category{}}, {Key: "B", Value: &config.Category{}}}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewNavigator(tt.entries).Selected(); got != tt.want {
				t.Errorf("Selected() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNavigatorSkipsCategories(t *testing.T) {
	nav := NewNavigator(mixedEntries())

	var visited []int
	for nav.Down() {
		visited = append(visited, nav.Selected())
	}
	want := []int{2, 4, 5, 6}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}

	// Bottom boundary: trailing category is never selected.
	if nav.Down() || nav.Selected() != 6 {
		t.Errorf("Down at bottom moved to %d", nav.Selected())
	}

	for nav.Up() {
		if e, _ := nav.Current(); e.IsCategory() {
			t.Fatalf("Up landed on category %q", e.Key)
		}
	}
	if nav.Selected() != 1 {
		t.Errorf("Up stopped at %d, want 1", nav.Selected())
	}
	if nav.Up() {
		t.Error("Up at top should be a no-op")
	}
}

func TestNavigatorEmpty(t *testing.T) {
	nav := NewNavigator(nil)
	if nav.Up() || nav.Down() {
		t.Error("navigation on empty list should be a no-op")
	}
	if _, ok := nav.Current(); ok {
		t.Error("Current() on empty list should report false")
	}
}

func TestCycleReturnsToStart(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8} {
		options := make([]string, n)
		for i := range options {
			options[i] = strings.Repeat("o", i+1)
		}
		cfg := newStore(t, []config.Entry{{Key: "c", Value: &config.Choice{Options: options, Selected: 0}}}, false)

		for i := 0; i < n; i++ {
			e, _ := cfg.Entry(0)
			if _, err := Cycle(cfg, e, 1); err != nil {
				t.Fatalf("Cycle failed: %v", err)
			}
		}
		if got := cfg.GetOption("c"); got != 0 {
			t.Errorf("n=%d: after %d cycles selected = %d, want 0", n, n, got)
		}
	}
}

func TestCycleBackwardWraps(t *testing.T) {
	cfg := newStore(t, []config.Entry{{Key: "tint", Value: &config.Color{Options: []string{"RED", "GREEN", "BLUE"}, Selected: 0}}}, false)

	e, _ := cfg.Entry(0)
	if _, err := Cycle(cfg, e, -1); err != nil {
		t.Fatalf("Cycle failed: %v", err)
	}
	if got := cfg.GetOption("tint"); got != 2 {
		t.Errorf("left from 0 = %d, want 2", got)
	}
	if _, err := Cycle(cfg, e, -1); err != nil {
		t.Fatalf("Cycle failed: %v", err)
	}
	if got := cfg.GetOption("tint"); got != 1 {
		t.Errorf("left from 2 = %d, want 1", got)
	}
}

func TestCycleEmptyOptions(t *testing.T) {
	cfg := newStore(t, []config.Entry{{Key: "c", Value: &config.Choice{Options: []string{}, Selected: 0}}}, false)

	e, _ := cfg.Entry(0)
	changed, err := Cycle(cfg, e, 1)
	if err != nil || changed {
		t.Errorf("Cycle on empty list = (%v, %v), want (false, nil)", changed, err)
	}
}

func TestAdjust(t *testing.T) {
	cfg := newStore(t, mixedEntries(), false)

	on, _ := cfg.Entry(6)
	if changed, err := Adjust(cfg, on, -1); err != nil || !changed {
		t.Fatalf("Adjust(bool) = (%v, %v)", changed, err)
	}
	if cfg.GetBool("on") {
		t.Error("boolean should be toggled off")
	}
	if changed, _ := Adjust(cfg, on, 1); !changed || !cfg.GetBool("on") {
		t.Error("boolean should toggle back on in either direction")
	}

	for _, i := range []int{0, 4, 5} {
		e, _ := cfg.Entry(i)
		if changed, err := Adjust(cfg, e, 1); changed || err != nil {
			t.Errorf("Adjust(%q) = (%v, %v), want no-op", e.Key, changed, err)
		}
	}
}

func TestHint(t *testing.T) {
	entries := mixedEntries()
	tests := []struct {
		index int
		want  string
		ok    bool
	}{
		{0, HintCategory, true},
		{1, HintChoice, true},
		{2, HintColor, true},
		{4, "", false},
		{5, "", false},
		{6, HintBoolean, true},
	}

	for _, tt := range tests {
		got, ok := Hint(entries[tt.index])
		if got != tt.want || ok != tt.ok {
			t.Errorf("Hint(%q) = (%q, %v), want (%q, %v)", entries[tt.index].Key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeymapLookup(t *testing.T) {
	km := DefaultKeymap()
	tests := []struct {
		ev   backend.Event
		want Action
	}{
		{backend.KeyEvent(backend.KeyUp), ActionUp},
		{backend.KeyEvent(backend.KeyDown), ActionDown},
		{backend.KeyEvent(backend.KeyEnter), ActionActivate},
		{backend.RuneEvent(' '), ActionActivate},
		{backend.KeyEvent(backend.KeyLeft), ActionPrev},
		{backend.KeyEvent(backend.KeyRight), ActionNext},
		{backend.RuneEvent('e'), ActionEdit},
		{backend.RuneEvent('s'), ActionSave},
		{backend.KeyEvent(backend.KeyEscape), ActionQuit},
		{backend.KeyEvent(backend.KeyCtrlC), ActionQuit},
		{backend.RuneEvent('z'), ActionNone},
		{backend.KeyEvent(backend.KeyTab), ActionNone},
		{backend.Event{Type: backend.EventResize}, ActionNone},
	}

	for _, tt := range tests {
		if got := km.Lookup(tt.ev); got != tt.want {
			t.Errorf("Lookup(%+v) = %q, want %q", tt.ev, got, tt.want)
		}
	}

	km.Bind(Binding{Key: backend.KeyRune, Rune: 's', Action: ActionNone})
	if got := km.Lookup(backend.RuneEvent('s')); got != ActionNone {
		t.Errorf("rebinding should take precedence, got %q", got)
	}
}
