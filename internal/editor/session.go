package editor

import (
	"context"
	"errors"
	"time"

	"github.com/dshills/tac/internal/config"
	"github.com/dshills/tac/internal/logging"
	"github.com/dshills/tac/internal/renderer/backend"
	"github.com/dshills/tac/internal/renderer/statusline"
	"github.com/dshills/tac/internal/renderer/view"
)

// DefaultIdleDelay is the pause after a key the session does not handle.
const DefaultIdleDelay = 10 * time.Millisecond

// Status messages for the save command.
const (
	StatusSaved      = "Saved configuration."
	StatusSaveFailed = "Save failed: "
)

// Display is the terminal surface a session draws on and reads keys from.
type Display interface {
	Size() (width, height int)
	Render(f *view.Frame)
	ReadKey(blocking bool) (backend.Event, bool)
}

// Store is the configuration the session edits.
type Store interface {
	config.Writer
	Entries() []config.Entry
	Path() string
	Autosave() bool
	Save() error
}

// State is the session's input mode.
type State int

const (
	// StateBrowsing routes keys to navigation and inline field editors.
	StateBrowsing State = iota
	// StateEditing routes keys to the open line editor.
	StateEditing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Options configures a Session.
type Options struct {
	// IdleDelay is slept after an unhandled key. Zero uses DefaultIdleDelay.
	IdleDelay time.Duration

	// Keymap overrides the browsing bindings.
	Keymap *Keymap

	Logger *logging.Logger
}

// Session is the interactive editor. It runs on the caller's goroutine and
// is not safe for concurrent use.
type Session struct {
	store   Store
	display Display
	nav     *Navigator
	status  *statusline.StatusLine
	keymap  *Keymap
	modal   *LineEditor
	idle    time.Duration
	logger  *logging.Logger
	done    bool
}

// NewSession creates a session over store drawing on display.
func NewSession(store Store, display Display, opts Options) *Session {
	s := &Session{
		store:   store,
		display: display,
		nav:     NewNavigator(store.Entries()),
		status:  statusline.New(store.Autosave()),
		keymap:  opts.Keymap,
		idle:    opts.IdleDelay,
		logger:  opts.Logger,
	}
	if s.keymap == nil {
		s.keymap = DefaultKeymap()
	}
	if s.idle <= 0 {
		s.idle = DefaultIdleDelay
	}
	if s.logger == nil {
		s.logger = logging.NullLogger
	}
	s.logger = s.logger.WithComponent("editor")
	return s
}

// State returns the current input mode.
func (s *Session) State() State {
	if s.modal != nil {
		return StateEditing
	}
	return StateBrowsing
}

// Selected returns the index of the selected entry.
func (s *Session) Selected() int {
	return s.nav.Selected()
}

// Status returns the status line.
func (s *Session) Status() *statusline.StatusLine {
	return s.status
}

// Modal returns the open line editor, or nil while browsing.
func (s *Session) Modal() *LineEditor {
	return s.modal
}

// Done reports whether the quit command was handled.
func (s *Session) Done() bool {
	return s.done
}

// Run draws the list and handles keys until the user quits or ctx ends.
// Quitting returns nil. An interrupt event returns ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug("session started: %d entries", len(s.store.Entries()))
	s.Draw()
	for !s.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, ok := s.display.ReadKey(true)
		if !ok {
			continue
		}
		if ev.Type == backend.EventInterrupt {
			return ctx.Err()
		}
		if s.HandleEvent(ev) {
			s.Draw()
		} else if ev.Type == backend.EventKey {
			time.Sleep(s.idle)
		}
	}
	s.logger.Debug("session ended")
	return nil
}

// Draw renders the current state.
func (s *Session) Draw() {
	w, h := s.display.Size()
	s.display.Render(s.Frame(w, h))
}

// Frame builds the picture for a width x height screen.
func (s *Session) Frame(width, height int) *view.Frame {
	f := view.Layout(view.Model{
		Entries:  s.store.Entries(),
		Selected: s.nav.Selected(),
		Path:     s.store.Path(),
		Autosave: s.store.Autosave(),
	}, width, height)
	if s.modal != nil {
		s.modal.Render(f)
		return f
	}
	s.status.Render(f)
	return f
}

// HandleEvent applies one event and reports whether the screen needs a
// redraw.
func (s *Session) HandleEvent(ev backend.Event) bool {
	switch ev.Type {
	case backend.EventResize:
		return true
	case backend.EventKey:
		if s.modal != nil {
			return s.handleModal(ev)
		}
		return s.handleBrowsing(ev)
	default:
		return false
	}
}

func (s *Session) handleModal(ev backend.Event) bool {
	switch s.modal.HandleKey(ev) {
	case EditCommit:
		le := s.modal
		s.modal = nil
		s.report(le.Commit(s.store))
	case EditCancel:
		s.modal = nil
	case EditContinue:
	}
	return true
}

func (s *Session) handleBrowsing(ev backend.Event) bool {
	action := s.keymap.Lookup(ev)
	if action == ActionNone {
		return false
	}
	s.status.ClearMessage()

	entry, ok := s.nav.Current()
	switch action {
	case ActionUp:
		s.nav.Up()
	case ActionDown:
		s.nav.Down()
	case ActionActivate:
		if !ok {
			break
		}
		switch entry.Value.(type) {
		case *config.Choice, *config.Color, *config.Boolean:
			_, err := Adjust(s.store, entry, 1)
			s.report(err)
		case *config.Text, *config.Integer, *config.Category:
			s.openModal(entry)
		}
	case ActionPrev, ActionNext:
		if !ok {
			break
		}
		delta := 1
		if action == ActionPrev {
			delta = -1
		}
		_, err := Adjust(s.store, entry, delta)
		s.report(err)
	case ActionEdit:
		if ok {
			s.openModal(entry)
		}
	case ActionSave:
		s.save()
	case ActionQuit:
		s.done = true
	}
	return true
}

// openModal starts a line editor, or shows the hint for kinds without one.
func (s *Session) openModal(e config.Entry) {
	if le, ok := NewLineEditor(e); ok {
		s.modal = le
		return
	}
	if hint, ok := Hint(e); ok {
		s.status.SetMessage(hint, statusline.MessageInfo)
	}
}

func (s *Session) save() {
	if err := s.store.Save(); err != nil {
		s.logger.Error("save failed: %v", err)
		s.status.SetMessage(StatusSaveFailed+err.Error(), statusline.MessageError)
		return
	}
	s.status.SetMessage(StatusSaved, statusline.MessageInfo)
}

// report surfaces a setter error. Persist failures keep the new value and
// are shown like a failed save; rejections are only logged.
func (s *Session) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, config.ErrPersist) {
		s.status.SetMessage(StatusSaveFailed+err.Error(), statusline.MessageError)
		return
	}
	s.logger.Warn("edit rejected: %v", err)
	s.status.SetMessage(err.Error(), statusline.MessageWarning)
}
