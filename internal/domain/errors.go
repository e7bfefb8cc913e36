package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateIdentity = errors.New("duplicate identity")
	ErrValidation        = errors.New("validation failed")
	ErrPrecondition      = errors.New("precondition failed")
)

// ValidationError reports a rejected field value. The command that produced
// it left all state unchanged.
type ValidationError struct {
	Field  string // "title", "subtask", "category", ...
	Value  string // Optional: the offending input
	Reason string // Human-readable context
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// PreconditionError reports an operation invoked without the context it
// needs, such as adding a subtask with no task open for editing.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: precondition failed", e.Op)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// LookupError wraps ErrNotFound or ErrDuplicateIdentity with the identity
// that was involved.
type LookupError struct {
	Op  string
	ID  string
	Err error
}

func (e *LookupError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
