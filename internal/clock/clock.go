// Package clock draws an analog clock face in the terminal and reacts to the
// keyboard shortcuts stored in the configuration. Escape hands the terminal
// to the configuration editor until it is closed again.
package clock

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dshills/tac/internal/config"
	"github.com/dshills/tac/internal/editor"
	"github.com/dshills/tac/internal/logging"
	"github.com/dshills/tac/internal/renderer/backend"
	"github.com/dshills/tac/internal/renderer/view"
)

// ErrQuit is returned by Run when the quit shortcut is pressed.
var ErrQuit = errors.New("quit requested")

// Frame delays.
const (
	SweepDelay = 30 * time.Millisecond
	TickDelay  = 66 * time.Millisecond
)

// Store is the configuration the clock reads and adjusts.
type Store interface {
	editor.Store
	config.Reader
}

// Options configures a Clock.
type Options struct {
	// Now returns the time to display. Defaults to time.Now.
	Now func() time.Time

	// Editor configures the session opened with Escape.
	Editor editor.Options

	Logger *logging.Logger
}

// Clock is the display loop.
type Clock struct {
	store   Store
	display editor.Display
	now     func() time.Time
	editor  editor.Options
	logger  *logging.Logger
}

// New creates a clock over store drawing on display.
func New(store Store, display editor.Display, opts Options) *Clock {
	c := &Clock{
		store:   store,
		display: display,
		now:     opts.Now,
		editor:  opts.Editor,
		logger:  opts.Logger,
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = logging.NullLogger
	}
	if c.editor.Logger == nil {
		c.editor.Logger = c.logger
	}
	c.logger = c.logger.WithComponent("clock")
	return c
}

// Frame lays out the face at the current time.
func (c *Clock) Frame(width, height int) *view.Frame {
	return Draw(Resolve(c.store), c.now(), width, height)
}

// Delay returns the pause between frames for the current seconds mode.
func (c *Clock) Delay() time.Duration {
	if Resolve(c.store).Sweeping() {
		return SweepDelay
	}
	return TickDelay
}

// Run draws frames and polls the keyboard until the quit shortcut, an
// interrupt, or ctx ends. The quit shortcut returns ErrQuit.
func (c *Clock) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		w, h := c.display.Size()
		c.display.Render(c.Frame(w, h))

		if ev, ok := c.display.ReadKey(false); ok {
			if ev.Type == backend.EventInterrupt {
				return ctx.Err()
			}
			if err := c.HandleKey(ctx, ev); err != nil {
				return err
			}
		}

		timer := time.NewTimer(c.Delay())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// HandleKey applies one key. It returns ErrQuit for the quit shortcut and
// the editor's error when the session it opened was interrupted.
func (c *Clock) HandleKey(ctx context.Context, ev backend.Event) error {
	if ev.Type != backend.EventKey {
		return nil
	}
	if ev.Key == backend.KeyEscape {
		return c.openEditor(ctx)
	}
	if ev.Key != backend.KeyRune {
		return nil
	}

	switch {
	case c.matches(config.KeyShortcutQuit, ev.Rune):
		return ErrQuit
	case c.matches(config.KeyShortcutSeconds, ev.Rune):
		c.cycle(config.KeyDisplaySeconds)
	case c.matches(config.KeyShortcutBorder, ev.Rune):
		c.cycle(config.KeyClockBorder)
	case c.matches(config.KeyShortcutNumbers, ev.Rune):
		c.cycle(config.KeyNumbers)
	case ev.Rune == 'm' || ev.Rune == 'M':
		c.check(c.store.SetBool(config.KeyContinuousMinutes, !c.store.GetBool(config.KeyContinuousMinutes)))
	case ev.Rune == '+' || ev.Rune == '-':
		c.adjustWidth(ev.Rune)
	}
	return nil
}

func (c *Clock) openEditor(ctx context.Context) error {
	c.logger.Debug("opening editor")
	err := editor.NewSession(c.store, c.display, c.editor).Run(ctx)
	c.logger.Debug("editor closed")
	return err
}

// matches compares r with the shortcut stored under key, ignoring case.
func (c *Clock) matches(key string, r rune) bool {
	shortcut, ok := c.store.GetString(key)
	return ok && shortcut != "" && strings.EqualFold(shortcut, string(r))
}

// cycle advances a choice, wrapping to the first option past the end.
func (c *Clock) cycle(key string) {
	_, err := c.store.SetOption(key, c.store.GetOption(key)+1)
	if errors.Is(err, config.ErrOutOfRange) {
		_, err = c.store.SetOption(key, 0)
	}
	c.check(err)
}

// adjustWidth widens or narrows the face, keeping the extra width within
// the vertical radius.
func (c *Clock) adjustWidth(r rune) {
	w, h := c.display.Size()
	_, b := Radii(w, h, 0)
	width := c.store.GetInt(config.KeyClockWidth)
	switch {
	case r == '+' && width < int64(b):
		c.check(c.store.SetInt(config.KeyClockWidth, width+1))
	case r == '-' && width > -int64(b):
		c.check(c.store.SetInt(config.KeyClockWidth, width-1))
	}
}

func (c *Clock) check(err error) {
	if err != nil {
		c.logger.Warn("setting not applied: %v", err)
	}
}
