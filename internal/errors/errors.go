package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error is a coded failure. Message describes this layer; Cause holds the
// error it wraps, if any.
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	var other *Error
	return errors.As(target, &other) && other.Code == e.Code
}

// WithMeta attaches a key to the error and returns it for chaining
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// wrap builds an *Error around err. A nil code keeps the code of the
// nearest *Error in err's chain, or Internal for foreign errors. Metadata
// from the chain is copied so later WithMeta calls stay local.
func wrap(err error, code *Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeInternal, Message: message, Cause: err}

	var inner *Error
	if errors.As(err, &inner) {
		wrapped.Code = inner.Code
		if len(inner.Meta) > 0 {
			wrapped.Meta = maps.Clone(inner.Meta)
		}
	}
	if code != nil {
		wrapped.Code = *code
	}

	return wrapped
}

// Wrap adds message to err and keeps its code. Returns nil for a nil err.
func Wrap(err error, message string) *Error {
	return wrap(err, nil, message)
}

// Wrapf is Wrap with a format string
func Wrapf(err error, format string, args ...interface{}) *Error {
	return wrap(err, nil, fmt.Sprintf(format, args...))
}

// WrapWithCode adds message to err and reclassifies it as code
func WrapWithCode(err error, code Code, message string) *Error {
	return wrap(err, &code, message)
}

// WrapWithCodef is WrapWithCode with a format string
func WrapWithCodef(err error, code Code, format string, args ...interface{}) *Error {
	return wrap(err, &code, fmt.Sprintf(format, args...))
}

// NotFound reports a key with nothing stored under it
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// InvalidArgument reports bad caller input: flags, arguments or config
func InvalidArgument(message string) *Error {
	return &Error{Code: CodeInvalidArgument, Message: message}
}

func InvalidArgumentf(format string, args ...interface{}) *Error {
	return InvalidArgument(fmt.Sprintf(format, args...))
}

// SchemaViolation reports a catalogue or table outside the supported format
func SchemaViolation(message string) *Error {
	return &Error{Code: CodeSchemaViolation, Message: message}
}

func SchemaViolationf(format string, args ...interface{}) *Error {
	return SchemaViolation(fmt.Sprintf(format, args...))
}

// FailedPrecondition reports an operation that cannot run in the current state
func FailedPrecondition(message string) *Error {
	return &Error{Code: CodeFailedPrecondition, Message: message}
}

func FailedPreconditionf(format string, args ...interface{}) *Error {
	return FailedPrecondition(fmt.Sprintf(format, args...))
}

// Unavailable reports a backing store that could not complete the request
func Unavailable(message string) *Error {
	return &Error{Code: CodeUnavailable, Message: message}
}

func Unavailablef(format string, args ...interface{}) *Error {
	return Unavailable(fmt.Sprintf(format, args...))
}

func Internal(message string) *Error {
	return &Error{Code: CodeInternal, Message: message}
}

func Internalf(format string, args ...interface{}) *Error {
	return Internal(fmt.Sprintf(format, args...))
}
