package errs

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden           = errors.New("forbidden")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrConflict            = errors.New("conflict")
	ErrSequenceOverflow    = errors.New("sequence overflow")
	ErrGenerationExhausted = errors.New("generation exhausted")
	ErrMismatch            = errors.New("value mismatch")
)

// ForbiddenError reports an actor that may not perform the operation:
// inactive accounts, self-deletion, role restrictions.
type ForbiddenError struct {
	Reason string
	Cause  error
}

func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrForbidden, e.Reason), e.Cause)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// UnauthorizedError reports failed credential or token checks.
type UnauthorizedError struct {
	Reason string
	Cause  error
}

func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

func NewUnauthorizedErrorWithCause(reason string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrUnauthorized, e.Reason), e.Cause)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// ConflictError covers uniqueness violations and forbidden state transitions.
type ConflictError struct {
	Reason string
	Cause  error
}

func NewConflictError(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

func NewConflictErrorWithCause(reason string, cause error) *ConflictError {
	return &ConflictError{Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrConflict, e.Reason), e.Cause)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// SequenceOverflowError reports an exhausted numeric sequence, e.g. a box
// serial past 99999.
type SequenceOverflowError struct {
	ParamName string
	Value     int
	Max       int
}

func NewSequenceOverflowError(paramName string, value, maxValue int) *SequenceOverflowError {
	return &SequenceOverflowError{ParamName: paramName, Value: value, Max: maxValue}
}

func (e *SequenceOverflowError) Error() string {
	return fmt.Sprintf("%s: %s %d exceeds maximum (%d)", ErrSequenceOverflow, e.ParamName, e.Value, e.Max)
}

func (e *SequenceOverflowError) Unwrap() error {
	return ErrSequenceOverflow
}

// GenerationExhaustedError reports that a bounded retry loop could not
// produce a unique identifier.
type GenerationExhaustedError struct {
	ParamName string
	Attempts  int
}

func NewGenerationExhaustedError(paramName string, attempts int) *GenerationExhaustedError {
	return &GenerationExhaustedError{ParamName: paramName, Attempts: attempts}
}

func (e *GenerationExhaustedError) Error() string {
	return fmt.Sprintf("%s: failed to generate unique %s after %d attempts",
		ErrGenerationExhausted, e.ParamName, e.Attempts)
}

func (e *GenerationExhaustedError) Unwrap() error {
	return ErrGenerationExhausted
}

// MismatchError reports two related values that must agree but do not.
type MismatchError struct {
	ParamName string
	Actual    any
	Expected  any
}

func NewMismatchError(paramName string, actual, expected any) *MismatchError {
	return &MismatchError{ParamName: paramName, Actual: actual, Expected: expected}
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %s %v does not match %v", ErrMismatch, e.ParamName, e.Actual, e.Expected)
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}
