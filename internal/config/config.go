package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dshills/tac/internal/logging"
)

// DefaultFilename is the document name used in the home directory.
const DefaultFilename = ".tac.json"

// DefaultPath returns $HOME/.tac.json, or DefaultFilename in the working
// directory when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultFilename
	}
	return filepath.Join(home, DefaultFilename)
}

// Reader is the read side of the store, used by the clock face.
type Reader interface {
	GetString(key string) (string, bool)
	GetOption(key string) int
	GetInt(key string) int64
	GetBool(key string) bool
}

// Writer is the mutation side of the store.
type Writer interface {
	SetOption(key string, idx int) (int, error)
	SetInt(key string, v int64) error
	SetBool(key string, v bool) error
	SetString(key string, v string) error
}

// Config is an ordered list of typed entries bound to a file path.
// It is not safe for concurrent use.
type Config struct {
	path     string
	entries  []Entry
	autosave bool
	logger   *logging.Logger
}

// Option configures a Config instance.
type Option func(*Config)

// WithAutosave controls whether successful setter calls rewrite the file.
// Autosave is on by default.
func WithAutosave(enable bool) Option {
	return func(c *Config) {
		c.autosave = enable
	}
}

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}

// New creates a Config over the given entries.
func New(path string, entries []Entry, opts ...Option) *Config {
	c := &Config{
		path:     path,
		entries:  entries,
		autosave: true,
		logger:   logging.NullLogger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent("config")
	return c
}

// Default creates a Config holding the built-in clock schema.
func Default(path string, opts ...Option) *Config {
	return New(path, DefaultEntries(), opts...)
}

// Load reads the document at path. A missing file yields the defaults; an
// unreadable or malformed file is reported through the logger and also
// yields the defaults. Load never fails.
func Load(path string, opts ...Option) *Config {
	c := Default(path, opts...)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("Failed to read config (using defaults): %v", err)
		}
		return c
	}

	doc, err := Decode(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		c.logger.Warn("Failed to parse JSON (using defaults): %v", err)
		return c
	}

	c.entries = doc.Entries
	c.logger.Debug("loaded %d entries from %s", len(c.entries), path)
	return c
}

// Path returns the file the store saves to.
func (c *Config) Path() string {
	return c.path
}

// Autosave reports whether setters persist immediately.
func (c *Config) Autosave() bool {
	return c.autosave
}

// Entries returns the entries in display order. Callers must not mutate values;
// use the setters instead.
func (c *Config) Entries() []Entry {
	return c.entries
}

// Len returns the number of entries.
func (c *Config) Len() int {
	return len(c.entries)
}

// Entry returns the entry at index i.
func (c *Config) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Save writes the whole document to Path, overwriting it in place.
func (c *Config) Save() error {
	data, err := Encode(c.path, c.entries)
	if err != nil {
		return c.saveFailed("encode", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return c.saveFailed("write", err)
	}
	c.logger.Debug("saved %d entries to %s", len(c.entries), c.path)
	return nil
}

func (c *Config) saveFailed(op string, err error) error {
	perr := &PersistError{Path: c.path, Op: op, Err: err}
	c.logger.Error("save failed: %v", perr)
	return perr
}

// SetLogger replaces the logger used for save diagnostics.
func (c *Config) SetLogger(l *logging.Logger) {
	if l == nil {
		l = logging.NullLogger
	}
	c.logger = l.WithComponent("config")
}

func (c *Config) lookup(key string) *Entry {
	for i := range c.entries {
		if c.entries[i].Key == key {
			return &c.entries[i]
		}
	}
	return nil
}

// GetString returns the textual form of an entry. Category entries, missing
// keys and selections out of range are absent.
func (c *Config) GetString(key string) (string, bool) {
	e := c.lookup(key)
	if e == nil {
		return "", false
	}
	switch v := e.Value.(type) {
	case *Text:
		return v.Value, true
	case *Choice:
		return v.Current()
	case *Color:
		return v.Current()
	case *Integer:
		return strconv.FormatInt(v.Value, 10), true
	case *Boolean:
		return strconv.FormatBool(v.Value), true
	case *Category:
		return "", false
	}
	return "", false
}

// GetOption returns the selected index of a Choice or Color entry, else 0.
func (c *Config) GetOption(key string) int {
	e := c.lookup(key)
	if e == nil {
		return 0
	}
	_, selected, ok := e.Options()
	if !ok {
		return 0
	}
	return selected
}

// GetInt returns the value of an Integer entry, else 0.
func (c *Config) GetInt(key string) int64 {
	if e := c.lookup(key); e != nil {
		if v, ok := e.Value.(*Integer); ok {
			return v.Value
		}
	}
	return 0
}

// GetBool returns the value of a Boolean entry, else false.
func (c *Config) GetBool(key string) bool {
	if e := c.lookup(key); e != nil {
		if v, ok := e.Value.(*Boolean); ok {
			return v.Value
		}
	}
	return false
}

// SetOption selects option idx of a Choice or Color entry and returns it.
func (c *Config) SetOption(key string, idx int) (int, error) {
	e, err := c.find(key)
	if err != nil {
		return 0, err
	}
	options, _, ok := e.Options()
	if !ok {
		return 0, &TypeError{Key: key, Expected: "choice or color", Actual: e.Value.Kind()}
	}
	if idx < 0 || idx >= len(options) {
		return 0, &RangeError{Key: key, Index: idx, Len: len(options)}
	}

	switch v := e.Value.(type) {
	case *Choice:
		v.Selected = idx
	case *Color:
		v.Selected = idx
	case *Text, *Category, *Integer, *Boolean:
	}
	return idx, c.persist()
}

// SetInt sets the value of an Integer entry.
func (c *Config) SetInt(key string, v int64) error {
	e, err := c.find(key)
	if err != nil {
		return err
	}
	iv, ok := e.Value.(*Integer)
	if !ok {
		return &TypeError{Key: key, Expected: string(KindInteger), Actual: e.Value.Kind()}
	}
	iv.Value = v
	return c.persist()
}

// SetBool sets the value of a Boolean entry.
func (c *Config) SetBool(key string, v bool) error {
	e, err := c.find(key)
	if err != nil {
		return err
	}
	bv, ok := e.Value.(*Boolean)
	if !ok {
		return &TypeError{Key: key, Expected: string(KindBoolean), Actual: e.Value.Kind()}
	}
	bv.Value = v
	return c.persist()
}

// SetString sets the value of a Text entry. A value longer than the declared
// maximum size is rejected; a value of exactly the maximum is accepted.
func (c *Config) SetString(key string, v string) error {
	e, err := c.find(key)
	if err != nil {
		return err
	}
	tv, ok := e.Value.(*Text)
	if !ok {
		return &TypeError{Key: key, Expected: string(KindText), Actual: e.Value.Kind()}
	}
	if tv.MaximumSize != nil {
		if n := charCount(v); n > *tv.MaximumSize {
			return &LengthError{Key: key, Length: n, Max: *tv.MaximumSize}
		}
	}
	tv.Value = v
	return c.persist()
}

func (c *Config) find(key string) (*Entry, error) {
	e := c.lookup(key)
	if e == nil {
		return nil, &NotFoundError{Key: key}
	}
	return e, nil
}

// persist saves after a mutation when autosave is on. A failed save keeps the
// in-memory change.
func (c *Config) persist() error {
	if !c.autosave {
		return nil
	}
	return c.Save()
}
