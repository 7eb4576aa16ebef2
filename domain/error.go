// Package domain defines error types for the shop ledger.
package domain

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a product with the given ID is not found
type NotFoundError struct {
	ProductID string
}

// Error implements the error interface for NotFoundError
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product not found: id=%s", e.ProductID)
}

// Is allows proper error type checking with errors.Is()
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// ValidationError is returned when command input fails validation
type ValidationError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// InvariantViolationError is returned when an operation would leave the
// catalog in an inconsistent state, e.g. stock below already-recorded sales
type InvariantViolationError struct {
	ProductID string
	Reason    string
}

// Error implements the error interface for InvariantViolationError
func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation: id=%s, reason=%s", e.ProductID, e.Reason)
}

// Is allows proper error type checking with errors.Is()
func (e *InvariantViolationError) Is(target error) bool {
	_, ok := target.(*InvariantViolationError)
	return ok
}

// PersistenceError wraps a durable-slot read or write failure. It is logged
// and recovered, never fatal: reads fall back to the seed catalog, writes
// leave the in-memory snapshot authoritative.
type PersistenceError struct {
	Op  string
	Err error
}

// Error implements the error interface for PersistenceError
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s failed: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying failure for errors.Is/As chains
func (e *PersistenceError) Unwrap() error { return e.Err }

// Is allows proper error type checking with errors.Is()
func (e *PersistenceError) Is(target error) bool {
	_, ok := target.(*PersistenceError)
	return ok
}

// SuggestionUnavailableError is returned when the suggestion service has no
// credential configured or the upstream call fails. Callers show fallback
// text instead of propagating it.
type SuggestionUnavailableError struct {
	Reason string
	Err    error
}

// Error implements the error interface for SuggestionUnavailableError
func (e *SuggestionUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("suggestion unavailable: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("suggestion unavailable: %s", e.Reason)
}

// Unwrap exposes the underlying failure for errors.Is/As chains
func (e *SuggestionUnavailableError) Unwrap() error { return e.Err }

// Is allows proper error type checking with errors.Is()
func (e *SuggestionUnavailableError) Is(target error) bool {
	_, ok := target.(*SuggestionUnavailableError)
	return ok
}

// Helper functions for creating errors with context

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(productID string) error {
	return &NotFoundError{ProductID: productID}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, reason string, value interface{}) error {
	return &ValidationError{
		Field:  field,
		Reason: reason,
		Value:  value,
	}
}

// NewInvariantViolationError creates a new InvariantViolationError
func NewInvariantViolationError(productID, reason string) error {
	return &InvariantViolationError{ProductID: productID, Reason: reason}
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// NewSuggestionUnavailableError creates a new SuggestionUnavailableError
func NewSuggestionUnavailableError(reason string, err error) error {
	return &SuggestionUnavailableError{Reason: reason, Err: err}
}

// Type assertion helpers for use with errors.As()

// IsNotFoundError checks if an error is a NotFoundError
func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidationError checks if an error is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInvariantViolationError checks if an error is an InvariantViolationError
func IsInvariantViolationError(err error) bool {
	var iv *InvariantViolationError
	return errors.As(err, &iv)
}

// IsPersistenceError checks if an error is a PersistenceError
func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// IsSuggestionUnavailableError checks if an error is a SuggestionUnavailableError
func IsSuggestionUnavailableError(err error) bool {
	var su *SuggestionUnavailableError
	return errors.As(err, &su)
}
