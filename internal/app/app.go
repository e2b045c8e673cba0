// Package app wires the configuration store, the terminal and the two
// interactive loops (clock and editor) together and manages the terminal's
// lifecycle.
package app

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/tac/internal/clock"
	"github.com/dshills/tac/internal/config"
	"github.com/dshills/tac/internal/editor"
	"github.com/dshills/tac/internal/logging"
	"github.com/dshills/tac/internal/renderer/backend"
	"github.com/dshills/tac/internal/renderer/screen"
)

// Mode selects the loop Run starts with.
type Mode int

const (
	// ModeClock shows the clock; Escape opens the editor.
	ModeClock Mode = iota
	// ModeEditor opens the editor directly and exits when it closes.
	ModeEditor
)

// Options configures the application.
type Options struct {
	// ConfigPath is the key/value document to load and save.
	ConfigPath string

	// Autosave writes the document after every change.
	Autosave bool

	// Mode is the loop to run.
	Mode Mode

	// LogLevel sets the logging verbosity.
	LogLevel string

	// LogOutput receives log output. Nil discards it once the terminal is
	// taken over.
	LogOutput io.Writer

	// Diagnostics receives load warnings when LogOutput is nil. Nil means
	// os.Stderr.
	Diagnostics io.Writer

	// TerminalReady skips backend Init and Shutdown when the caller already
	// owns the terminal.
	TerminalReady bool

	// Now overrides the clock's time source.
	Now func() time.Time
}

// Application holds the store and the terminal for one run.
type Application struct {
	mu sync.Mutex

	store   *config.Config
	backend backend.Backend
	logger  *logging.Logger
	metrics *Metrics

	running atomic.Bool
	cancel  context.CancelFunc

	opts Options
}

// New loads the configuration and prepares the application. A missing or
// malformed document falls back to the defaults.
func New(opts Options) (*Application, error) {
	if opts.Mode != ModeClock && opts.Mode != ModeEditor {
		return nil, &InitError{Component: "options", Err: ErrUnknownMode}
	}

	logger := logging.NullLogger
	if opts.LogOutput != nil {
		logger = logging.NewLogger(logging.LoggerConfig{
			Level:  logging.ParseLogLevel(opts.LogLevel),
			Output: opts.LogOutput,
			Prefix: "tac",
		})
	}

	app := &Application{
		logger:  logger,
		metrics: NewMetrics(),
		opts:    opts,
	}
	// Load runs before the terminal is ours, so its warnings always reach
	// the user.
	loadLogger := logger
	if opts.LogOutput == nil {
		cfg := logging.DefaultLoggerConfig()
		if opts.Diagnostics != nil {
			cfg.Output = opts.Diagnostics
		}
		loadLogger = logging.NewLogger(cfg)
	}
	app.store = config.Load(opts.ConfigPath,
		config.WithAutosave(opts.Autosave),
		config.WithLogger(loadLogger),
	)
	app.store.SetLogger(logger)
	logger.Info("configuration %s: %d entries", opts.ConfigPath, app.store.Len())
	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run takes over the terminal and runs the selected loop until the user
// quits, Shutdown is called, or ctx ends. A user quit returns ErrQuit.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	ctx, cancel := context.WithCancel(ctx)
	app.cancel = cancel
	app.mu.Unlock()
	defer cancel()

	if b == nil {
		return &InitError{Component: "backend", Err: ErrNoBackend}
	}
	if !app.opts.TerminalReady {
		if err := b.Init(); err != nil {
			return &InitError{Component: "backend", Err: err}
		}
		defer b.Shutdown()
	}

	display := &meteredDisplay{Display: screen.New(b), metrics: app.metrics}
	editorOpts := editor.Options{Logger: app.logger}

	var err error
	switch app.opts.Mode {
	case ModeEditor:
		err = editor.NewSession(app.store, display, editorOpts).Run(ctx)
		if err == nil {
			err = ErrQuit
		}
	case ModeClock:
		err = clock.New(app.store, display, clock.Options{
			Now:    app.opts.Now,
			Editor: editorOpts,
			Logger: app.logger,
		}).Run(ctx)
	}

	s := app.metrics.Snapshot()
	app.logger.Debug("run finished: %d frames (avg %v, max %v), %d keys, %d resizes",
		s.Frames, s.AvgFrameTime, s.MaxFrameTime, s.Keys, s.Resizes)

	// Shutdown cancels ctx; report that as a normal quit.
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return ErrQuit
	}
	if err != nil && !errors.Is(err, ErrQuit) {
		return NewOperationError("run", app.opts.ConfigPath, err)
	}
	return err
}

// Shutdown stops a running loop. It is safe to call from another goroutine,
// such as a signal handler.
func (app *Application) Shutdown() {
	app.mu.Lock()
	cancel, b := app.cancel, app.backend
	app.mu.Unlock()

	if !app.running.Load() || cancel == nil {
		return
	}
	cancel()
	if b != nil {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration store.
func (app *Application) Config() *config.Config {
	return app.store
}

// Metrics returns the run metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.logger
}
