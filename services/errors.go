package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no transaction has the requested id.
var ErrNotFound = errors.New("transaction not found")

// ValidationError reports a transaction field that is missing or invalid.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// InvalidParameterError reports a malformed or missing query parameter.
type InvalidParameterError struct {
	Param   string
	Message string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s %s", e.Param, e.Message)
}

// StoreError wraps any failure returned by the database.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
