package errs

import (
	"errors"
	"fmt"
)

// Kind groups pipeline errors into the four categories callers handle.
type Kind string

const (
	KindValidation Kind = "validation"
	KindExternal   Kind = "external_service"
	KindMuxing     Kind = "muxing"
	KindPipeline   Kind = "pipeline"
)

// Error carries a stable machine-readable code, a human message and an
// actionable hint alongside the usual wrapped cause.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Hint    string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(kind Kind, code, message, hint string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Hint: hint, cause: cause}
}

func Validation(code, message, hint string) *Error {
	return newError(KindValidation, code, message, hint, nil)
}

func ValidationWrap(cause error, code, message, hint string) *Error {
	return newError(KindValidation, code, message, hint, cause)
}

func External(code, message, hint string) *Error {
	return newError(KindExternal, code, message, hint, nil)
}

func ExternalWrap(cause error, code, message, hint string) *Error {
	return newError(KindExternal, code, message, hint, cause)
}

func Muxing(cause error, code, message, hint string) *Error {
	return newError(KindMuxing, code, message, hint, cause)
}

func Pipeline(cause error, code, message, hint string) *Error {
	return newError(KindPipeline, code, message, hint, cause)
}

// CodeOf returns the stable code of err, or empty when err is not an *Error.
func CodeOf(err error) string {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return ""
}

// KindOf returns the kind of err, defaulting to KindPipeline for foreign errors.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindPipeline
}

// AsError unwraps err looking for an *Error.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
