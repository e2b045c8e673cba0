package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrSettingNotFound indicates no entry has the requested key.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrTypeMismatch indicates the entry holds a different kind of value.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOutOfRange indicates an option index outside the option list.
	ErrOutOfRange = errors.New("option index out of range")

	// ErrTooLong indicates a text value longer than its declared maximum.
	ErrTooLong = errors.New("text exceeds maximum size")

	// ErrPersist indicates the document could not be written back to disk.
	ErrPersist = errors.New("persist failed")

	// ErrUnknownFormat indicates an unsupported export format.
	ErrUnknownFormat = errors.New("unknown export format")
)

// ParseError represents an error while decoding a configuration document.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Field locates the offending value inside the document (e.g. "entries.3.value.kind").
	Field string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "document"
	}
	if e.Field != "" {
		return fmt.Sprintf("parse error in %s at %s: %s", path, e.Field, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when no entry has the requested key.
type NotFoundError struct {
	Key string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("setting not found: %q", e.Key)
}

// Is implements error matching for NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrSettingNotFound
}

// TypeError is returned when a setter targets an entry of another kind.
type TypeError struct {
	// Key is the entry key.
	Key string
	// Expected is the expected kind name.
	Expected string
	// Actual is the kind actually stored.
	Actual Kind
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %q: expected %s, got %s", e.Key, e.Expected, e.Actual)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// RangeError is returned when an option index is outside [0, Len).
type RangeError struct {
	Key   string
	Index int
	Len   int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("option index %d for %q out of range [0, %d)", e.Index, e.Key, e.Len)
}

// Is implements error matching for RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// LengthError is returned when a text value exceeds its declared maximum size.
type LengthError struct {
	Key    string
	Length int
	Max    int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("value for %q has %d characters, maximum is %d", e.Key, e.Length, e.Max)
}

// Is implements error matching for LengthError.
func (e *LengthError) Is(target error) bool {
	return target == ErrTooLong
}

// PersistError wraps a failure to encode or write the document.
type PersistError struct {
	// Path is the destination file.
	Path string
	// Op is "encode" or "write".
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *PersistError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PersistError) Unwrap() error {
	return e.Err
}

// Is implements error matching for PersistError.
func (e *PersistError) Is(target error) bool {
	return target == ErrPersist
}
