package environment

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPrefix = errors.New("prefix must be upper case")
	ErrInvalidName   = errors.New("variable name must be upper case")
	ErrMissing       = errors.New("variable not defined")
	ErrUndeclared    = errors.New("variable not declared in this registry")
	ErrTypeMismatch  = errors.New("variable has a different type")
)

// Error ties one of the sentinel errors to the variable it concerns.
type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("environment: %q: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func keyError(key string, err error) error {
	return &Error{Key: key, Err: err}
}
