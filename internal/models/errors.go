package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("invalid command")
	ErrConflict   = errors.New("conflicting fact")
	ErrInvariant  = errors.New("internal invariant violated")
)

// ValidationError rejects a command before anything is written: unknown
// names or a malformed argument list.
type ValidationError struct {
	Msg string
}

func Invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ConflictError reports a fact that contradicts what is already known.
// Player, Card and Category identify the cell or slot involved; any of
// them may be empty.
type ConflictError struct {
	Player   string
	Card     string
	Category string
	Reason   string
}

func (e *ConflictError) Error() string {
	switch {
	case e.Player != "" && e.Card != "":
		return fmt.Sprintf("conflict at %s / %s: %s", e.Player, e.Card, e.Reason)
	case e.Category != "":
		return fmt.Sprintf("conflict in %s case file: %s", e.Category, e.Reason)
	case e.Card != "":
		return fmt.Sprintf("conflict at %s: %s", e.Card, e.Reason)
	case e.Player != "":
		return fmt.Sprintf("conflict for %s: %s", e.Player, e.Reason)
	}
	return "conflict: " + e.Reason
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// InvariantError means propagation broke its own guarantees. The command is
// rolled back.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string { return "internal invariant violated: " + e.Reason }

func (e *InvariantError) Is(target error) bool { return target == ErrInvariant }
