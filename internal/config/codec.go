package config

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// prettyOptions keeps fields in insertion order so the file mirrors display order.
var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Document is the decoded form of a configuration file.
type Document struct {
	Filename string
	Entries  []Entry
}

// Decode parses a configuration document. Decoding is strict: any malformed
// entry rejects the whole document.
func Decode(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Message: "invalid JSON"}
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &ParseError{Message: "document must be an object"}
	}

	doc := &Document{}
	if fn := root.Get("filename"); fn.Exists() {
		if fn.Type != gjson.String {
			return nil, &ParseError{Field: "filename", Message: "must be a string"}
		}
		doc.Filename = fn.Str
	}

	list := root.Get("entries")
	if !list.IsArray() {
		return nil, &ParseError{Field: "entries", Message: "must be an array"}
	}

	items := list.Array()
	doc.Entries = make([]Entry, 0, len(items))
	for i, item := range items {
		field := fmt.Sprintf("entries.%d", i)
		if !item.IsObject() {
			return nil, &ParseError{Field: field, Message: "entry must be an object"}
		}
		key := item.Get("key")
		if key.Type != gjson.String {
			return nil, &ParseError{Field: field + ".key", Message: "must be a string"}
		}
		value, err := decodeValue(item.Get("value"), field+".value")
		if err != nil {
			return nil, err
		}
		doc.Entries = append(doc.Entries, Entry{Key: key.Str, Value: value})
	}
	return doc, nil
}

func decodeValue(r gjson.Result, field string) (Value, error) {
	if !r.IsObject() {
		return nil, &ParseError{Field: field, Message: "value must be an object"}
	}
	kind := r.Get("kind")
	if kind.Type != gjson.String {
		return nil, &ParseError{Field: field + ".kind", Message: "missing kind tag"}
	}

	switch Kind(kind.Str) {
	case KindText:
		v := r.Get("value")
		if v.Type != gjson.String {
			return nil, &ParseError{Field: field + ".value", Message: "must be a string"}
		}
		t := &Text{Value: v.Str}
		if ms := r.Get("maximum_size"); ms.Exists() && ms.Type != gjson.Null {
			n, err := decodeCount(ms, field+".maximum_size")
			if err != nil {
				return nil, err
			}
			t.MaximumSize = MaxSize(n)
		}
		return t, nil

	case KindChoice, KindColor:
		options, err := decodeOptions(r.Get("options"), field+".options")
		if err != nil {
			return nil, err
		}
		selected, err := decodeCount(r.Get("selected"), field+".selected")
		if err != nil {
			return nil, err
		}
		if selected >= len(options) && !(len(options) == 0 && selected == 0) {
			return nil, &ParseError{
				Field:   field + ".selected",
				Message: fmt.Sprintf("index %d out of range for %d options", selected, len(options)),
			}
		}
		if Kind(kind.Str) == KindColor {
			return &Color{Options: options, Selected: selected}, nil
		}
		return &Choice{Options: options, Selected: selected}, nil

	case KindCategory:
		return &Category{}, nil

	case KindInteger:
		v := r.Get("value")
		if !isIntegral(v) {
			return nil, &ParseError{Field: field + ".value", Message: "must be an integer"}
		}
		return &Integer{Value: v.Int()}, nil

	case KindBoolean:
		v := r.Get("value")
		if !v.IsBool() {
			return nil, &ParseError{Field: field + ".value", Message: "must be a boolean"}
		}
		return &Boolean{Value: v.Bool()}, nil
	}

	return nil, &ParseError{Field: field + ".kind", Message: fmt.Sprintf("unknown kind %q", kind.Str)}
}

func decodeOptions(r gjson.Result, field string) ([]string, error) {
	if !r.IsArray() {
		return nil, &ParseError{Field: field, Message: "must be an array of strings"}
	}
	items := r.Array()
	options := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, &ParseError{Field: fmt.Sprintf("%s.%d", field, i), Message: "must be a string"}
		}
		options = append(options, item.Str)
	}
	return options, nil
}

// decodeCount reads a non-negative integer.
func decodeCount(r gjson.Result, field string) (int, error) {
	if !isIntegral(r) {
		return 0, &ParseError{Field: field, Message: "must be a non-negative integer"}
	}
	n := r.Int()
	if n < 0 {
		return 0, &ParseError{Field: field, Message: "must be a non-negative integer"}
	}
	return int(n), nil
}

func isIntegral(r gjson.Result) bool {
	return r.Type == gjson.Number && !strings.ContainsAny(r.Raw, ".eE")
}

// Encode renders entries as a pretty-printed document.
func Encode(filename string, entries []Entry) ([]byte, error) {
	doc := []byte(`{}`)
	doc, err := sjson.SetBytes(doc, "filename", filename)
	if err != nil {
		return nil, err
	}
	if doc, err = sjson.SetRawBytes(doc, "entries", []byte(`[]`)); err != nil {
		return nil, err
	}

	for _, e := range entries {
		item, err := sjson.SetBytes([]byte(`{}`), "key", e.Key)
		if err != nil {
			return nil, err
		}
		value, err := encodeValue(e.Value)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Key, err)
		}
		if item, err = sjson.SetRawBytes(item, "value", value); err != nil {
			return nil, err
		}
		if doc, err = sjson.SetRawBytes(doc, "entries.-1", item); err != nil {
			return nil, err
		}
	}

	return pretty.PrettyOptions(doc, prettyOptions), nil
}

func encodeValue(v Value) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch v := v.(type) {
	case *Text:
		out, err = setField(`{"kind":"text"}`, "value", v.Value)
		if err == nil && v.MaximumSize != nil {
			out, err = sjson.SetBytes(out, "maximum_size", *v.MaximumSize)
		}
	case *Choice:
		out, err = encodeOptions(KindChoice, v.Options, v.Selected)
	case *Color:
		out, err = encodeOptions(KindColor, v.Options, v.Selected)
	case *Category:
		out = []byte(`{"kind":"category"}`)
	case *Integer:
		out, err = setField(`{"kind":"integer"}`, "value", v.Value)
	case *Boolean:
		out, err = setField(`{"kind":"boolean"}`, "value", v.Value)
	case nil:
		err = fmt.Errorf("missing value")
	}
	return out, err
}

func encodeOptions(kind Kind, options []string, selected int) ([]byte, error) {
	out, err := setField(`{}`, "kind", string(kind))
	if err != nil {
		return nil, err
	}
	if out, err = sjson.SetRawBytes(out, "options", []byte(`[]`)); err != nil {
		return nil, err
	}
	for _, o := range options {
		if out, err = sjson.SetBytes(out, "options.-1", o); err != nil {
			return nil, err
		}
	}
	return sjson.SetBytes(out, "selected", selected)
}

func setField(base, path string, value any) ([]byte, error) {
	return sjson.SetBytes([]byte(base), path, value)
}
