// Released under an MIT license. See LICENSE.

// Package errs provides reckon's error types.
//
// Validation and Operation failures are recoverable: the calculator
// reports them and the session continues. UnknownOperation surfaces
// when a command name maps to no operation.
package errs

import "errors"

// Validation reports operand input that is malformed or outside an
// operation's domain of definition.
type Validation struct {
	msg string
}

// NewValidation creates a new Validation error.
func NewValidation(msg string) error {
	return &Validation{msg: msg}
}

func (e *Validation) Error() string {
	return e.msg
}

// Operation reports an arithmetic failure in a structurally valid
// operation, division by zero for example.
type Operation struct {
	msg string
}

// NewOperation creates a new Operation error.
func NewOperation(msg string) error {
	return &Operation{msg: msg}
}

func (e *Operation) Error() string {
	return e.msg
}

// UnknownOperation reports a name that maps to no operation.
type UnknownOperation struct {
	Name string
}

func (e *UnknownOperation) Error() string {
	return "unknown operation: '" + e.Name + "'"
}

// IsValidation returns true if err is a Validation error.
func IsValidation(err error) bool {
	var t *Validation

	return errors.As(err, &t)
}

// IsOperation returns true if err is an Operation error.
func IsOperation(err error) bool {
	var t *Operation

	return errors.As(err, &t)
}

// IsUnknownOperation returns true if err is an UnknownOperation error.
func IsUnknownOperation(err error) bool {
	var t *UnknownOperation

	return errors.As(err, &t)
}
