package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// MultipleErrors is the wrapper over the error objects slice.
// It implements the error interface.
type MultipleErrors []*ErrorObject

// Error implements error interface.
func (m MultipleErrors) Error() string {
	sb := &strings.Builder{}
	for i, e := range m {
		sb.WriteString(e.Error())
		if i != len(m)-1 {
			sb.WriteString(",")
		}
	}
	return sb.String()
}

// ErrorObject is a struct representing a JSON API error object.
// More info can be found at: 'https://jsonapi.org/format/#error-objects'.
type ErrorObject struct {
	// ID is a unique identifier for this particular occurrence of a problem.
	ID string `json:"id,omitempty"`

	// Title is a short, human-readable summary of the problem that SHOULD NOT change from occurrence to occurrence of the problem, except for purposes of localization.
	Title string `json:"title,omitempty"`

	// Detail is a human-readable explanation specific to this occurrence of the problem. Like title, this field’s value can be localized.
	Detail string `json:"detail,omitempty"`

	// Status is the HTTP status code applicable to this problem, expressed as a string value.
	Status string `json:"status,omitempty"`

	// Code is an application-specific error code, expressed as a string value.
	Code string `json:"code,omitempty"`

	// Source is an object containing references to the source of the error.
	Source *ErrorSource `json:"source,omitempty"`

	// Meta is an object containing non-standard meta-information about the error.
	Meta map[string]interface{} `json:"meta,omitempty"`

	// Err is a non published message container for logging purpose.
	Err error `json:"-"`

	// status is the integer type status
	status int
}

// ErrorSource references the source of the error object.
type ErrorSource struct {
	// Pointer is a JSON pointer to the associated entity in the request
	// document, i.e. '/data/attributes/title'.
	Pointer string `json:"pointer,omitempty"`

	// Parameter is a string indicating which URI query parameter caused the error.
	Parameter string `json:"parameter,omitempty"`
}

// Copy returns the new object that is a copy of given error object.
func (e ErrorObject) Copy() *ErrorObject {
	err := e
	if e.Source != nil {
		src := *e.Source
		err.Source = &src
	}
	return &err
}

// Error implements the error interface.
func (e *ErrorObject) Error() string {
	return fmt.Sprintf("ErrorObject: %s %s", e.Title, e.Detail)
}

// WithDetail sets the detail for given error and then returns the error.
func (e *ErrorObject) WithDetail(detail string) *ErrorObject {
	e.Detail = detail
	return e
}

// WithDetailf sets the formatted detail for given error and returns the error.
func (e *ErrorObject) WithDetailf(format string, args ...interface{}) *ErrorObject {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithPointer sets the error source pointer and returns the error.
func (e *ErrorObject) WithPointer(pointer string) *ErrorObject {
	if e.Source == nil {
		e.Source = &ErrorSource{}
	}
	e.Source.Pointer = pointer
	return e
}

// WithParameter sets the error source parameter and returns the error.
func (e *ErrorObject) WithParameter(parameter string) *ErrorObject {
	if e.Source == nil {
		e.Source = &ErrorSource{}
	}
	e.Source.Parameter = parameter
	return e
}

// WithStatus sets the ErrorObject status.
func (e *ErrorObject) WithStatus(status int) *ErrorObject {
	e.status = status
	e.Status = strconv.Itoa(status)
	return e
}

// AddMeta adds the meta data for given error. Checks if an object has inited meta field.
func (e *ErrorObject) AddMeta(key string, value interface{}) {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
}

// IntStatus returns integer status of the error.
func (e *ErrorObject) IntStatus() int {
	return e.status
}
