package view

import (
	"strings"

	"github.com/dshills/tac/internal/renderer/core"
)

// Span is a run of text in one style.
type Span struct {
	Text  string
	Style core.Style
}

// Line is a sequence of spans starting at (Row, Col).
type Line struct {
	Row   int
	Col   int
	Spans []Span
}

// Width returns the display width of the line in columns.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += core.StringWidth(s.Text)
	}
	return w
}

// Frame is a complete picture of the screen, independent of any terminal.
type Frame struct {
	Width, Height int

	// Background, when set, fills the whole screen before lines are drawn.
	Background *core.Style

	Lines []Line

	CursorVisible    bool
	CursorX, CursorY int
}

// NewFrame creates an empty frame of the given size.
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height}
}

// Print adds a single-span line.
func (f *Frame) Print(row, col int, text string, style core.Style) {
	f.Lines = append(f.Lines, Line{Row: row, Col: col, Spans: []Span{{Text: text, Style: style}}})
}

// Add appends a line.
func (f *Frame) Add(l Line) {
	f.Lines = append(f.Lines, l)
}

// SetRow replaces everything on row with text starting at column 0.
func (f *Frame) SetRow(row int, text string, style core.Style) {
	kept := f.Lines[:0]
	for _, l := range f.Lines {
		if l.Row != row {
			kept = append(kept, l)
		}
	}
	f.Lines = kept
	f.Print(row, 0, text, style)
}

// ShowCursor places the terminal cursor.
func (f *Frame) ShowCursor(x, y int) {
	f.CursorVisible = true
	f.CursorX = x
	f.CursorY = y
}

// Row returns the plain text of a row, with gaps filled by spaces and
// trailing space trimmed. Later lines overwrite earlier ones.
func (f *Frame) Row(row int) string {
	var lines []Line
	for _, l := range f.Lines {
		if l.Row == row {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	var buf []rune
	for _, l := range lines {
		col := l.Col
		for _, s := range l.Spans {
			for _, r := range s.Text {
				if col >= 0 {
					for len(buf) <= col {
						buf = append(buf, ' ')
					}
					buf[col] = r
				}
				col++
			}
		}
	}
	return strings.TrimRight(string(buf), " ")
}

// StyleAt returns the style of the last span covering (row, col).
func (f *Frame) StyleAt(row, col int) (core.Style, bool) {
	var (
		style core.Style
		found bool
	)
	for _, l := range f.Lines {
		if l.Row != row {
			continue
		}
		c := l.Col
		for _, s := range l.Spans {
			n := len([]rune(s.Text))
			if col >= c && col < c+n {
				style, found = s.Style, true
			}
			c += n
		}
	}
	return style, found
}
