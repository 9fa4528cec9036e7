package service

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failed registration attempt.
type Kind int

const (
	// KindValidation means the caller sent malformed input.
	KindValidation Kind = iota + 1
	// KindUnexpected means storage, the transaction machinery or email delivery failed.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Error is the outcome of a failed attempt. Validation errors carry no cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Cause }

func validationError(err error) *Error {
	return &Error{Kind: KindValidation, Message: err.Error()}
}

func unexpectedError(msg string, cause error) *Error {
	return &Error{Kind: KindUnexpected, Message: msg, Cause: cause}
}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }

func IsUnexpected(err error) bool { return KindOf(err) == KindUnexpected }

// ErrorChain renders err followed by one "Caused by" entry per wrapped layer.
func ErrorChain(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(&b, "Caused by:\n\t%s\n", cause)
	}
	return b.String()
}
