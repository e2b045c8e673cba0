// Package view lays out the configuration list as a Frame: header, help
// line and a cursor-centered list of entries. It never touches a terminal.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/tac/internal/config"
	"github.com/dshills/tac/internal/renderer/core"
)

// Screen regions.
const (
	// ListTop is the first row of the list region.
	ListTop = 3
	// BottomReserve is the number of rows kept free below the list region
	// for the status and help lines.
	BottomReserve = 2
	// KeyColumn is the width the key is padded to in entry lines.
	KeyColumn = 20
)

const (
	helpAutosave = "↑/↓: move   Enter/e: edit text/int / next choice   ←/→: change choice/color/bool   Esc: quit"
	helpManual   = "↑/↓: move   Enter/e: edit text/int / next choice   ←/→: change choice/color/bool   s: save   Esc: quit"
)

// Styles used by the layout.
var (
	CategoryStyle = core.DefaultStyle().WithForeground(core.ColorGreen).Reverse()
	SelectedStyle = core.DefaultStyle().Reverse()
	NormalStyle   = core.DefaultStyle()
)

// Model is everything the layout needs from the session.
type Model struct {
	Entries  []config.Entry
	Selected int
	Path     string
	Autosave bool
}

// Header returns the title row text.
func Header(path string) string {
	return "Key/Value editor  |  file: " + path
}

// Help returns the key help row text.
func Help(autosave bool) string {
	if autosave {
		return helpAutosave
	}
	return helpManual
}

// Repr renders the value part of an entry line.
func Repr(v config.Value) string {
	switch v := v.(type) {
	case *config.Text:
		return `"` + v.Value + `"`
	case *config.Choice:
		return bracketed(v.Current())
	case *config.Color:
		return bracketed(v.Current())
	case *config.Integer:
		return strconv.FormatInt(v.Value, 10)
	case *config.Boolean:
		return "[" + strconv.FormatBool(v.Value) + "]"
	case *config.Category:
		return ""
	}
	return ""
}

func bracketed(option string, ok bool) string {
	if !ok {
		option = "<?>"
	}
	return "[" + option + "]"
}

// EntryLine renders an entry the way the list shows it. Categories are the
// bare key.
func EntryLine(e config.Entry) string {
	if e.IsCategory() {
		return e.Key
	}
	return fmt.Sprintf("%-*s = %s", KeyColumn, e.Key, Repr(e.Value))
}

// ListBounds returns the first and last row of the list region and the row
// the selected entry is drawn on.
func ListBounds(height int) (top, bottom, center int) {
	top = ListTop
	bottom = height - 1 - BottomReserve
	center = height / 2
	if center < top {
		center = top
	}
	if center > bottom {
		center = bottom
	}
	return top, bottom, center
}

// Layout builds the browsing frame.
func Layout(m Model, width, height int) *Frame {
	f := NewFrame(width, height)
	f.Print(0, 0, Header(m.Path), NormalStyle)
	f.Print(1, 0, Help(m.Autosave), NormalStyle)

	lines := make([]string, len(m.Entries))
	maxWidth := 0
	for i, e := range m.Entries {
		lines[i] = EntryLine(e)
		if w := core.StringWidth(lines[i]); w > maxWidth {
			maxWidth = w
		}
	}

	startCol := 0
	if width > maxWidth {
		startCol = (width - maxWidth) / 2
	}

	top, bottom, center := ListBounds(height)
	for i, e := range m.Entries {
		row := center + (i - m.Selected)
		if row < top || row > bottom {
			continue
		}
		selected := i == m.Selected

		switch v := e.Value.(type) {
		case *config.Category:
			f.Print(row, startCol, categoryBar(e.Key, maxWidth), CategoryStyle)
		case *config.Color:
			f.Add(colorLine(row, startCol, e.Key, v, selected))
		case *config.Text, *config.Choice, *config.Integer, *config.Boolean:
			style := NormalStyle
			if selected {
				style = SelectedStyle
			}
			f.Print(row, startCol, lines[i], style)
		}
	}
	return f
}

// categoryBar centers key in a bar at least as wide as the widest entry line.
func categoryBar(key string, maxWidth int) string {
	keyWidth := core.StringWidth(key)
	barWidth := max(maxWidth, keyWidth)
	left := (barWidth - keyWidth) / 2
	right := barWidth - keyWidth - left
	return strings.Repeat(" ", left) + key + strings.Repeat(" ", right)
}

// colorLine draws the option name in its own color. Prefix and suffix take
// the selection highlight; the name never does.
func colorLine(row, col int, key string, v *config.Color, selected bool) Line {
	frameStyle := NormalStyle
	if selected {
		frameStyle = SelectedStyle
	}
	prefix := fmt.Sprintf("%-*s = ", KeyColumn, key)

	name, ok := v.Current()
	nameStyle := ColorStyle(name)
	if !ok {
		name, nameStyle = "<?>", NormalStyle
	}
	return Line{Row: row, Col: col, Spans: []Span{
		{Text: prefix + "[", Style: frameStyle},
		{Text: name, Style: nameStyle},
		{Text: "]", Style: frameStyle},
	}}
}

// ColorStyle returns the style an option name is painted with. BLACK is
// drawn on white to stay readable; unknown names use the default style.
func ColorStyle(name string) core.Style {
	c, ok := core.ColorFromName(name)
	if !ok {
		return NormalStyle
	}
	style := NormalStyle.WithForeground(c)
	if c.Equals(core.ColorBlack) {
		style = style.WithBackground(core.ColorWhite)
	}
	return style
}
