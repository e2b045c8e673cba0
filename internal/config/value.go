package config

import "unicode/utf8"

// Kind names the closed set of value kinds an entry can hold.
// The string form is the "kind" tag of the persisted document.
type Kind string

// Value kinds.
const (
	KindText     Kind = "text"
	KindChoice   Kind = "choice"
	KindColor    Kind = "color"
	KindCategory Kind = "category"
	KindInteger  Kind = "integer"
	KindBoolean  Kind = "boolean"
)

// DefaultTextLimit is the length cap applied by the editor to Text values
// without a declared maximum size.
const DefaultTextLimit = 4096

// Value is the payload of an entry. The set of implementations is closed;
// switches over it list every case.
//
//sumtype:decl
type Value interface {
	Kind() Kind
	isValue()
}

// Text is a free-form string with an optional length cap in characters.
type Text struct {
	Value       string
	MaximumSize *int
}

// Choice is one selection out of an ordered option list.
type Choice struct {
	Options  []string
	Selected int
}

// Color is a Choice whose option names are rendered in their own color.
type Color struct {
	Options  []string
	Selected int
}

// Category is a non-editable section header.
type Category struct{}

// Integer is a signed 64-bit number.
type Integer struct {
	Value int64
}

// Boolean is a true/false flag.
type Boolean struct {
	Value bool
}

func (*Text) Kind() Kind     { return KindText }
func (*Choice) Kind() Kind   { return KindChoice }
func (*Color) Kind() Kind    { return KindColor }
func (*Category) Kind() Kind { return KindCategory }
func (*Integer) Kind() Kind  { return KindInteger }
func (*Boolean) Kind() Kind  { return KindBoolean }

func (*Text) isValue()     {}
func (*Choice) isValue()   {}
func (*Color) isValue()    {}
func (*Category) isValue() {}
func (*Integer) isValue()  {}
func (*Boolean) isValue()  {}

// MaxSize returns a pointer suitable for Text.MaximumSize.
func MaxSize(n int) *int {
	return &n
}

// Limit returns the effective length cap: the declared maximum or DefaultTextLimit.
func (t *Text) Limit() int {
	if t.MaximumSize != nil {
		return *t.MaximumSize
	}
	return DefaultTextLimit
}

// Current returns the selected option, or false when the index is out of range.
func (c *Choice) Current() (string, bool) {
	return optionAt(c.Options, c.Selected)
}

// Current returns the selected option, or false when the index is out of range.
func (c *Color) Current() (string, bool) {
	return optionAt(c.Options, c.Selected)
}

func optionAt(options []string, i int) (string, bool) {
	if i < 0 || i >= len(options) {
		return "", false
	}
	return options[i], true
}

// Entry is a keyed value. Entries are kept in display order.
type Entry struct {
	Key   string
	Value Value
}

// IsCategory reports whether the entry is a section header.
func (e Entry) IsCategory() bool {
	_, ok := e.Value.(*Category)
	return ok
}

// Options returns the option list and selection of a Choice or Color entry.
func (e Entry) Options() (options []string, selected int, ok bool) {
	switch v := e.Value.(type) {
	case *Choice:
		return v.Options, v.Selected, true
	case *Color:
		return v.Options, v.Selected, true
	case *Text, *Category, *Integer, *Boolean:
		return nil, 0, false
	}
	return nil, 0, false
}

// charCount counts characters the way the length caps do.
func charCount(s string) int {
	return utf8.RuneCountInString(s)
}
