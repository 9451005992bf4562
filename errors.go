// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mjson

import (
	"errors"
	"fmt"
)

var (
	// ErrReadOnly is reported by mutating methods of a read-only view of an
	// array or object.
	ErrReadOnly = errors.New("value is read-only")

	// ErrNotInteger is reported by integral number accessors when the number
	// has a fraction or an exponent.
	ErrNotInteger = errors.New("not an integer")

	// ErrOutOfRange is reported by number accessors when the number does not
	// fit the requested type.
	ErrOutOfRange = errors.New("value out of range")

	// ErrCycle is reported when adding a value to an array or object would
	// make it contain itself.
	ErrCycle = errors.New("value would contain itself")
)

// SyntaxError is the concrete type of errors reported by the parser for
// input that is not valid JSON.
type SyntaxError struct {
	Message string // a description of the problem
	Offset  int    // byte offset of the error, 0-based

	// The line and column of the error. At the end of the input the location
	// is just past the last byte.
	LineCol
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %v", e.Message, e.LineCol)
}

// TypeError is reported when a Value is converted to a type that does not
// match its kind.
type TypeError struct {
	Kind Kind   // the actual kind of the value
	Want string // the requested conversion
}

// Error satisfies the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("cannot convert %v to %s", e.Kind, e.Want)
}

// NumberError is reported when a Number cannot be represented as the
// requested Go type. The underlying error is ErrNotInteger or ErrOutOfRange.
type NumberError struct {
	Text string // the number as written
	Type string // the requested type, e.g., "int32"
	Err  error
}

// Error satisfies the error interface.
func (e *NumberError) Error() string {
	return fmt.Sprintf("number %s as %s: %v", e.Text, e.Type, e.Err)
}

// Unwrap supports error wrapping.
func (e *NumberError) Unwrap() error { return e.Err }
