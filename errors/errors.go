package errors

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/neuronlabs/jsonapi/errors/class"
)

// Error is the common error definition used in the jsonapi project.
type Error struct {
	// ID is a unique error instance identification number.
	ID uuid.UUID

	// Class defines the error classification.
	Class class.Class

	// Detail contains the detailed information.
	Detail string

	// InternalMessage is a message used as a string for the
	// golang error interface implementation.
	InternalMessage string

	// Operation is the operation name when the error occurred.
	Operation string
}

// New creates new error message with given 'class' and message 'message'.
func New(c class.Class, message string) *Error {
	return &Error{
		ID:              uuid.New(),
		Class:           c,
		InternalMessage: message,
	}
}

// Newf creates new error instance with provided 'class' with formatted message.
func Newf(c class.Class, format string, args ...interface{}) *Error {
	return &Error{
		ID:              uuid.New(),
		Class:           c,
		InternalMessage: fmt.Sprintf(format, args...),
	}
}

// Error implements error interface.
func (e *Error) Error() string {
	return e.InternalMessage
}

// SetClass sets the error Class 'c' and returns itself.
func (e *Error) SetClass(c class.Class) *Error {
	e.Class = c
	return e
}

// SetDetail sets the error 'detail' and returns itself.
func (e *Error) SetDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// SetDetailf sets the error's formatted detail with provided and returns itself.
func (e *Error) SetDetailf(format string, args ...interface{}) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// SetOperation sets the error's operation and returns error by itself.
func (e *Error) SetOperation(operation string) *Error {
	e.Operation = operation
	return e
}

// WrapDetail wraps the 'detail' for given error. Wrapping appends the new
// detail to the front of error detail message.
func (e *Error) WrapDetail(detail string) *Error {
	return e.wrapDetail(detail)
}

// WrapDetailf wraps the detail with provided formatting for given error.
func (e *Error) WrapDetailf(format string, args ...interface{}) *Error {
	return e.wrapDetail(fmt.Sprintf(format, args...))
}

func (e *Error) wrapDetail(detail string) *Error {
	if e.Detail == "" {
		e.Detail = detail
	} else {
		e.Detail = detail + " " + e.Detail
	}
	return e
}

// IsClass checks if the error 'err' is the *Error with given class 'c'.
func IsClass(err error, c class.Class) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Class == c
}

// IsMajor checks if the error 'err' is the *Error composed of major 'm'.
func IsMajor(err error, m class.Major) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Class.IsMajor(m)
}
