package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrNotAnObject          = errors.New("document root is not an object")
	ErrUnsupportedValue     = errors.New("value is neither a string nor a nested object")
	ErrClipboardUnavailable = errors.New("no system clipboard available")
)

// LoadError wraps any failure while reading or decoding a catalog
// document. A LoadError on the source document is fatal at startup.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError wraps any failure while writing the output document.
// Recoverable: surfaced as a status message, never ends the session.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// ClipboardError wraps a failed clipboard operation. Recoverable in
// the same way as SaveError.
type ClipboardError struct {
	Op  string
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard %s: %v", e.Op, e.Err)
}

func (e *ClipboardError) Unwrap() error { return e.Err }
