package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/encoding"

	"github.com/dshills/tac/internal/renderer/core"
)

func init() {
	// Legacy (non UTF-8) locales.
	encoding.Register()
}

// Terminal implements Backend on a tcell screen.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a terminal backend on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// locked runs fn on the screen while holding the mutex.
func (t *Terminal) locked(fn func(s tcell.Screen)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.screen)
}

func (t *Terminal) Init() error {
	var err error
	t.locked(func(s tcell.Screen) {
		if err = s.Init(); err != nil {
			return
		}
		s.SetStyle(tcell.StyleDefault)
		s.HideCursor()
	})
	return err
}

func (t *Terminal) Shutdown() {
	t.locked(func(s tcell.Screen) { s.Fini() })
}

func (t *Terminal) Size() (width, height int) {
	t.locked(func(s tcell.Screen) { width, height = s.Size() })
	return width, height
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.locked(func(s tcell.Screen) {
		s.SetContent(x, y, cell.Rune, nil, toTcellStyle(cell.Style))
	})
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	var cell core.Cell
	t.locked(func(s tcell.Screen) {
		r, _, style, width := s.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
		cell = core.Cell{Rune: r, Width: width, Style: fromTcellStyle(style)}
	})
	return cell
}

func (t *Terminal) Fill(cell core.Cell) {
	t.locked(func(s tcell.Screen) { s.Fill(cell.Rune, toTcellStyle(cell.Style)) })
}

func (t *Terminal) Clear() {
	t.locked(func(s tcell.Screen) { s.Clear() })
}

func (t *Terminal) Show() {
	t.locked(func(s tcell.Screen) { s.Show() })
}

func (t *Terminal) ShowCursor(x, y int) {
	t.locked(func(s tcell.Screen) { s.ShowCursor(x, y) })
}

func (t *Terminal) HideCursor() {
	t.locked(func(s tcell.Screen) { s.HideCursor() })
}

// PollEvent blocks without holding the mutex so that Shutdown and PostEvent
// can run from other goroutines.
func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		// Screen finalized.
		return Event{Type: EventInterrupt}
	}
	return fromTcellEvent(ev)
}

func (t *Terminal) HasPendingEvent() bool {
	return t.screen.HasPendingEvent()
}

func (t *Terminal) PostEvent(event Event) {
	var ev tcell.Event
	switch event.Type {
	case EventKey:
		ev = tcell.NewEventKey(toTcellKey(event.Key), event.Rune, toTcellMod(event.Mod))
	case EventInterrupt:
		ev = tcell.NewEventInterrupt(nil)
	default:
		return
	}
	_ = t.screen.PostEvent(ev) // dropped when the queue is full
}

// keyTable pairs tcell keys with ours. The first row for a Key is the one
// used when posting.
var keyTable = []struct {
	tc  tcell.Key
	key Key
}{
	{tcell.KeyRune, KeyRune},
	{tcell.KeyEscape, KeyEscape},
	{tcell.KeyEnter, KeyEnter},
	{tcell.KeyLF, KeyEnter},
	{tcell.KeyTab, KeyTab},
	{tcell.KeyBackspace2, KeyBackspace},
	{tcell.KeyBackspace, KeyBackspace},
	{tcell.KeyUp, KeyUp},
	{tcell.KeyDown, KeyDown},
	{tcell.KeyLeft, KeyLeft},
	{tcell.KeyRight, KeyRight},
	{tcell.KeyCtrlC, KeyCtrlC},
}

var modTable = []struct {
	tc  tcell.ModMask
	mod ModMask
}{
	{tcell.ModShift, ModShift},
	{tcell.ModCtrl, ModCtrl},
	{tcell.ModAlt, ModAlt},
}

var attrTable = []struct {
	tc   tcell.AttrMask
	attr core.Attribute
}{
	{tcell.AttrBold, core.AttrBold},
	{tcell.AttrDim, core.AttrDim},
	{tcell.AttrUnderline, core.AttrUnderline},
	{tcell.AttrReverse, core.AttrReverse},
}

func fromTcellKey(k tcell.Key) Key {
	for _, row := range keyTable {
		if row.tc == k {
			return row.key
		}
	}
	return KeyNone
}

func toTcellKey(k Key) tcell.Key {
	for _, row := range keyTable {
		if row.key == k {
			return row.tc
		}
	}
	return tcell.KeyRune
}

func fromTcellMod(m tcell.ModMask) ModMask {
	var out ModMask
	for _, row := range modTable {
		if m&row.tc != 0 {
			out |= row.mod
		}
	}
	return out
}

func toTcellMod(m ModMask) tcell.ModMask {
	var out tcell.ModMask
	for _, row := range modTable {
		if m.Has(row.mod) {
			out |= row.tc
		}
	}
	return out
}

func toTcellStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.Foreground.IsDefault() {
		style = style.Foreground(toTcellColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(toTcellColor(s.Background))
	}

	var attrs tcell.AttrMask
	for _, row := range attrTable {
		if s.Attributes.Has(row.attr) {
			attrs |= row.tc
		}
	}
	return style.Attributes(attrs)
}

func fromTcellStyle(ts tcell.Style) core.Style {
	fg, bg, attrs := ts.Decompose()
	s := core.Style{
		Foreground: fromTcellColor(fg),
		Background: fromTcellColor(bg),
	}
	for _, row := range attrTable {
		if attrs&row.tc != 0 {
			s.Attributes |= row.attr
		}
	}
	return s
}

func toTcellColor(c core.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func fromTcellColor(tc tcell.Color) core.Color {
	switch {
	case tc == tcell.ColorDefault:
		return core.ColorDefault
	case tc >= tcell.ColorValid && tc < tcell.ColorIsRGB:
		return core.ColorFromIndex(uint8(tc - tcell.ColorValid))
	}
	r, g, b := tc.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

func fromTcellEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  fromTcellKey(e.Key()),
			Rune: e.Rune(),
			Mod:  fromTcellMod(e.Modifiers()),
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}
	}
	return Event{Type: EventNone}
}
