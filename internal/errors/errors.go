package errors

import (
	"errors"
	"fmt"
)

// Error is a failure with a Code, a message that can be shown as is, and
// optional metadata such as the item or player involved.
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the cause, so errors.Is reaches sentinels like io.EOF.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error with the same code.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// WithMeta records key on the error and returns it.
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates an error with code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap adds message to err. The code and metadata of a wrapped *Error are
// kept; anything else becomes Internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	code := CodeInternal
	var inner *Error
	if errors.As(err, &inner) {
		code = inner.Code
	}
	return wrap(err, code, message)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode adds message to err and gives the result code.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return wrap(err, code, message)
}

// WrapWithCodef is WrapWithCode with a formatted message.
func WrapWithCodef(err error, code Code, format string, args ...interface{}) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

func wrap(err error, code Code, message string) *Error {
	out := &Error{Code: code, Message: message, Cause: err}
	var inner *Error
	if errors.As(err, &inner) {
		for k, v := range inner.Meta {
			out.WithMeta(k, v)
		}
	}
	return out
}

// NotFound reports a missing item, player, monster or catalog entry.
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf is NotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) *Error {
	return New(CodeNotFound, fmt.Sprintf(format, args...))
}

// InvalidArgument reports a bad request or a bad definition.
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf is InvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return New(CodeInvalidArgument, fmt.Sprintf(format, args...))
}

// Internal reports a failure the player cannot do anything about.
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// FailedPrecondition reports an operation asked of state that breaks its
// contract, such as starting a battle with a participant that is already dead.
func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// FailedPreconditionf is FailedPrecondition with a formatted message.
func FailedPreconditionf(format string, args ...interface{}) *Error {
	return New(CodeFailedPrecondition, fmt.Sprintf(format, args...))
}

// Unimplemented reports a variant definition that lacks a required capability.
func Unimplemented(message string) *Error {
	return New(CodeUnimplemented, message)
}

// Unimplementedf is Unimplemented with a formatted message.
func Unimplementedf(format string, args ...interface{}) *Error {
	return New(CodeUnimplemented, fmt.Sprintf(format, args...))
}

// DataLoss reports saved state that can no longer be read.
func DataLoss(message string) *Error {
	return New(CodeDataLoss, message)
}

// DataLossf is DataLoss with a formatted message.
func DataLossf(format string, args ...interface{}) *Error {
	return New(CodeDataLoss, fmt.Sprintf(format, args...))
}
