// Package config provides the typed key/value store behind the clock settings.
//
// A configuration is an ordered list of entries. Each entry carries one value
// from a closed set of kinds:
//
//	text      free-form string, optional maximum size in characters
//	choice    one option out of an ordered list
//	color     a choice whose option names are color names
//	category  non-editable section header
//	integer   signed 64-bit number
//	boolean   true/false
//
// Entry order is display order and survives a load/save round trip. The key
// set is fixed once loaded; setters only change values, never add or remove
// entries.
//
// # Persistence
//
// The store is a single JSON document:
//
//	{
//	  "filename": "/home/u/.tac.json",
//	  "entries": [
//	    {"key": "Colors", "value": {"kind": "category"}},
//	    {"key": "clock width", "value": {"kind": "integer", "value": 5}}
//	  ]
//	}
//
// Load never fails: a missing, unreadable or malformed file yields the
// built-in defaults and a warning on the logger. Save rewrites the whole file
// in place. When autosave is on (the default) every successful setter saves
// immediately.
//
// # Basic Usage
//
//	cfg := config.Load(path, config.WithLogger(logger))
//	width := cfg.GetInt(config.KeyClockWidth)
//	if _, err := cfg.SetOption(config.KeyClockBorder, 2); err != nil {
//	    // handle ErrOutOfRange, ErrTypeMismatch, ErrPersist...
//	}
package config
