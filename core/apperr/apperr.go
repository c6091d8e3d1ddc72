package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind string

const (
	// KindParse marks malformed price, quantity, date, identifier or row text.
	KindParse Kind = "PARSE_ERROR"
	// KindLookup marks a well-formed identifier that is not in the known set.
	KindLookup Kind = "LOOKUP_ERROR"
	// KindEmptyStore marks an export attempted against an empty inventory.
	KindEmptyStore Kind = "EMPTY_STORE"
)

// Error is a recoverable application error. None of the kinds are fatal;
// callers report the message and carry on.
type Error struct {
	parent error
	kind   Kind
	field  string
	msg    string
}

// ErrEmptyStore is returned by exports when there is nothing to write.
var ErrEmptyStore = &Error{kind: KindEmptyStore, msg: "nothing to export"}

// New initializes an Error.
//
// field example: price
func New(kind Kind, field, msg string) *Error {
	return &Error{kind: kind, field: field, msg: msg}
}

// NewParse creates a KindParse error for the given field.
func NewParse(field, msg string) *Error {
	return New(KindParse, field, msg)
}

// NewLookup creates a KindLookup error for the given field.
func NewLookup(field, msg string) *Error {
	return New(KindLookup, field, msg)
}

// Error returns the error message.
func (e *Error) Error() string {
	prefix := string(e.kind)
	if e.field != "" {
		prefix = e.field
	}
	if e.parent != nil {
		return fmt.Sprintf("%s: %s (%v)", prefix, e.msg, e.parent)
	}
	return fmt.Sprintf("%s: %s", prefix, e.msg)
}

// WrapParent returns a copy of e with an underlying error attached.
func (e *Error) WrapParent(parent error) *Error {
	if parent == nil {
		return e
	}
	cp := *e
	cp.parent = parent
	return &cp
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.parent
}

// Is reports whether target is an *Error of the same kind, field and message.
// It lets wrapped copies of sentinels such as ErrEmptyStore match errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.field == t.field && e.msg == t.msg
}

// Kind returns the error kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// Field returns the input field the error refers to, if any.
func (e *Error) Field() string {
	return e.field
}

// Msg returns the user-facing message.
func (e *Error) Msg() string {
	return e.msg
}

// IsKind reports whether err (or anything it wraps) is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == k
	}
	return false
}
