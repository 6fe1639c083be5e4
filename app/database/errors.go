package database

import (
	"errors"

	"github.com/lib/pq"
)

// Error taxonomy surfaced by the storage layer. Handlers map these to HTTP
// status codes; anything else is treated as a storage failure and never
// leaked to the caller.

// NotFoundError means the target record does not exist.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// DuplicateEntityError means a uniqueness constraint would be violated.
type DuplicateEntityError struct {
	Message string
}

func (e *DuplicateEntityError) Error() string {
	return e.Message
}

// InvalidReferenceError means a referenced foreign key does not exist.
type InvalidReferenceError struct {
	Message string
}

func (e *InvalidReferenceError) Error() string {
	return e.Message
}

// ConflictError means current state precludes the operation, e.g. deleting a
// class with enrolled students or re-submitting an attendance day.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InvalidTransitionError means the query state machine rejects the move.
type InvalidTransitionError struct {
	Message string
}

func (e *InvalidTransitionError) Error() string {
	return e.Message
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (class 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
