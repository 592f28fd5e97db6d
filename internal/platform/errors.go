package platform

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind string

const (
	// KindInvalidInput covers bad project names, missing arguments and
	// unsupported item types.
	KindInvalidInput Kind = "invalid input"
	// KindFilesystem covers failures to create, read or parse files.
	KindFilesystem Kind = "filesystem"
)

// Error is a classified failure. Cause may be nil.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// InvalidInput returns a KindInvalidInput error. Cause may be a sentinel so
// callers can still match it with errors.Is.
func InvalidInput(cause error, format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Filesystem returns a KindFilesystem error naming the operation and path.
func Filesystem(op, path string, cause error) error {
	return &Error{Kind: KindFilesystem, Message: fmt.Sprintf("%s %s", op, path), Cause: cause}
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// IsInvalidInput reports whether err is classified as KindInvalidInput.
func IsInvalidInput(err error) bool { return KindOf(err) == KindInvalidInput }

// IsFilesystem reports whether err is classified as KindFilesystem.
func IsFilesystem(err error) bool { return KindOf(err) == KindFilesystem }
