package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestDecodeStrict(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"array root", `[]`, ""},
		{"missing entries", `{"filename":"x"}`, "entries"},
		{"filename not string", `{"filename":1,"entries":[]}`, "filename"},
		{"key not string", `{"entries":[{"key":1,"value":{"kind":"category"}}]}`, "entries.0.key"},
		{"missing kind", `{"entries":[{"key":"a","value":{"value":"x"}}]}`, "entries.0.value.kind"},
		{"unknown kind", `{"entries":[{"key":"a","value":{"kind":"float"}}]}`, "entries.0.value.kind"},
		{"text value not string", `{"entries":[{"key":"a","value":{"kind":"text","value":3}}]}`, "entries.0.value.value"},
		{"negative maximum", `{"entries":[{"key":"a","value":{"kind":"text","value":"","maximum_size":-1}}]}`, "entries.0.value.maximum_size"},
		{"fractional integer", `{"entries":[{"key":"a","value":{"kind":"integer","value":1.5}}]}`, "entries.0.value.value"},
		{"integer as string", `{"entries":[{"key":"a","value":{"kind":"integer","value":"1"}}]}`, "entries.0.value.value"},
		{"boolean as number", `{"entries":[{"key":"a","value":{"kind":"boolean","value":1}}]}`, "entries.0.value.value"},
		{"option not string", `{"entries":[{"key":"a","value":{"kind":"color","options":["RED",2],"selected":0}}]}`, "entries.0.value.options.1"},
		{"negative selected", `{"entries":[{"key":"a","value":{"kind":"choice","options":["a"],"selected":-1}}]}`, "entries.0.value.selected"},
		{"selected past end", `{"entries":[{"key":"a","value":{"kind":"choice","options":["a","b"],"selected":2}}]}`, "entries.0.value.selected"},
		{"second entry bad", `{"entries":[{"key":"a","value":{"kind":"category"}},{"key":"b"}]}`, "entries.1.value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Decode error = %v, want *ParseError", err)
			}
			if pe.Field != tt.field {
				t.Errorf("Field = %q, want %q", pe.Field, tt.field)
			}
		})
	}
}

func TestDecodeAccepts(t *testing.T) {
	input := `{
		"filename": "/tmp/a.json",
		"entries": [
			{"key": "t", "value": {"kind": "text", "value": "v", "maximum_size": null}},
			{"key": "c", "value": {"kind": "choice", "options": [], "selected": 0}},
			{"key": "i", "value": {"kind": "integer", "value": 9007199254740993}}
		]
	}`

	doc, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.Filename != "/tmp/a.json" {
		t.Errorf("Filename = %q", doc.Filename)
	}
	if len(doc.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(doc.Entries))
	}
	if txt := doc.Entries[0].Value.(*Text); txt.MaximumSize != nil {
		t.Error("null maximum_size should decode as absent")
	}
	if got := doc.Entries[2].Value.(*Integer).Value; got != 9007199254740993 {
		t.Errorf("integer = %d, want 9007199254740993", got)
	}
}

func TestEncodeLayout(t *testing.T) {
	out, err := Encode("/tmp/x.json", []Entry{
		{Key: "A", Value: &Category{}},
		{Key: "x", Value: &Choice{Options: []string{"a", "b"}, Selected: 1}},
		{Key: "label", Value: &Text{Value: `say "hi"`, MaximumSize: MaxSize(32)}},
		{Key: "free", Value: &Text{Value: "x"}},
	})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	s := string(out)
	if !strings.HasPrefix(s, "{\n  \"filename\"") {
		t.Errorf("expected pretty output starting with filename, got:\n%s", s)
	}
	if strings.Index(s, `"filename"`) > strings.Index(s, `"entries"`) {
		t.Error("filename should precede entries")
	}

	doc := gjson.ParseBytes(out)
	if got := doc.Get("entries.#").Int(); got != 4 {
		t.Errorf("entries count = %d, want 4", got)
	}
	if got := doc.Get("entries.0.value.kind").String(); got != "category" {
		t.Errorf("kind tag = %q, want category", got)
	}
	if got := doc.Get("entries.1.value.selected").Int(); got != 1 {
		t.Errorf("selected = %d, want 1", got)
	}
	if got := doc.Get("entries.2.value.value").String(); got != `say "hi"` {
		t.Errorf("text value = %q", got)
	}
	if doc.Get("entries.3.value.maximum_size").Exists() {
		t.Error("absent maximum_size should be omitted")
	}
}

func TestEncodeNilValue(t *testing.T) {
	if _, err := Encode("x", []Entry{{Key: "broken"}}); err == nil {
		t.Error("expected error for entry without a value")
	}
}
