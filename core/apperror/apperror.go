// Package apperror defines the user-facing error taxonomy.
// Every failure reported to the user carries one of these kinds so the
// presentation layer can title its dialogs without inspecting messages.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	// KindLoad indicates a bad path or an undecodable image.
	KindLoad Kind = iota
	// KindOCREngine indicates the OCR engine is missing or its invocation failed.
	KindOCREngine
	// KindSave indicates a filesystem write failure or nothing to save.
	KindSave
	// KindState indicates an invalid tab reference or a violated precondition.
	KindState
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindLoad:
		return "LoadError"
	case KindOCREngine:
		return "OcrEngineError"
	case KindSave:
		return "SaveError"
	case KindState:
		return "StateError"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Title returns a short human-readable title for dialogs.
func (k Kind) Title() string {
	switch k {
	case KindLoad:
		return "Failed to load image"
	case KindOCREngine:
		return "OCR processing failed"
	case KindSave:
		return "Failed to save"
	case KindState:
		return "Invalid tab"
	default:
		return "Error"
	}
}

// Error is an error tagged with a Kind and the operation that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error. A nil err is replaced by a generic message.
func New(kind Kind, op string, err error) *Error {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Load wraps err as a KindLoad error.
func Load(op string, err error) *Error {
	return New(KindLoad, op, err)
}

// OCREngine wraps err as a KindOCREngine error.
func OCREngine(op string, err error) *Error {
	return New(KindOCREngine, op, err)
}

// Save wraps err as a KindSave error.
func Save(op string, err error) *Error {
	return New(KindSave, op, err)
}

// State wraps err as a KindState error.
func State(op string, err error) *Error {
	return New(KindState, op, err)
}

// Is reports whether any error in err's chain is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}
