// Package screen paints view frames onto a backend and reads keys from it.
package screen

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/tac/internal/renderer/backend"
	"github.com/dshills/tac/internal/renderer/core"
	"github.com/dshills/tac/internal/renderer/view"
)

// Screen draws frames through a backend.
type Screen struct {
	backend backend.Backend
}

// New wraps an initialized backend.
func New(b backend.Backend) *Screen {
	return &Screen{backend: b}
}

// Backend returns the underlying backend.
func (s *Screen) Backend() backend.Backend {
	return s.backend
}

// Size returns the current terminal size.
func (s *Screen) Size() (width, height int) {
	return s.backend.Size()
}

// Render replaces the screen contents with f and flushes.
func (s *Screen) Render(f *view.Frame) {
	width, height := s.backend.Size()

	if f.Background != nil {
		s.backend.Fill(core.Cell{Rune: ' ', Width: 1, Style: *f.Background})
	} else {
		s.backend.Clear()
	}

	for _, line := range f.Lines {
		if line.Row < 0 || line.Row >= height {
			continue
		}
		x := line.Col
		for _, span := range line.Spans {
			x = s.paint(x, line.Row, width, span)
			if x >= width {
				break
			}
		}
	}

	if f.CursorVisible {
		s.backend.ShowCursor(f.CursorX, f.CursorY)
	} else {
		s.backend.HideCursor()
	}
	s.backend.Show()
}

// paint draws one span starting at column x and returns the next column.
// Clusters that would cross the right edge are dropped.
func (s *Screen) paint(x, y, width int, span view.Span) int {
	rest := span.Text
	state := -1
	for len(rest) > 0 {
		var (
			cluster string
			w       int
		)
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if w == 0 {
			continue
		}
		if x+w > width {
			return width
		}
		if x >= 0 {
			r := []rune(cluster)[0]
			s.backend.SetCell(x, y, core.Cell{Rune: r, Width: w, Style: span.Style})
		}
		x += w
	}
	return x
}

// ReadKey returns the next event. When blocking is false and nothing is
// queued it returns false at once.
func (s *Screen) ReadKey(blocking bool) (backend.Event, bool) {
	if !blocking && !s.backend.HasPendingEvent() {
		return backend.Event{}, false
	}
	return s.backend.PollEvent(), true
}

// Post queues a synthetic event.
func (s *Screen) Post(ev backend.Event) {
	s.backend.PostEvent(ev)
}
