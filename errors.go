package pergen

import (
	"errors"
	"fmt"
)

// Standard sentinel errors of the generated DAOs.
var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("pergen: entity not found")

	// ErrNullity is returned by Save when a required member is unset.
	ErrNullity = errors.New("pergen: required member not set")
)

// NotFoundError represents an error when an entity is not found.
type NotFoundError struct {
	Entity string
	ID     int64
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pergen: %s not found (id=%d)", e.Entity, e.ID)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// NewNotFoundError returns a new NotFoundError for the given entity and id.
func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// NullityError is returned by Save, before any statement runs, when a
// required field, a ONE relation or a non-zero MANY relation is unset.
type NullityError struct {
	Entity string
	Member string
}

// Error returns the error string.
func (e *NullityError) Error() string {
	return fmt.Sprintf("pergen: %s.%s is required", e.Entity, e.Member)
}

// Is reports whether the target error matches ErrNullity.
func (e *NullityError) Is(err error) bool {
	return err == ErrNullity
}

// NewNullityError returns a new NullityError.
func NewNullityError(entity, member string) *NullityError {
	return &NullityError{Entity: entity, Member: member}
}

// IsNullity returns true if the error is a NullityError.
func IsNullity(err error) bool {
	if err == nil {
		return false
	}
	var e *NullityError
	return errors.As(err, &e) || errors.Is(err, ErrNullity)
}

// DAOError wraps a database error with the entity and the DAO operation.
type DAOError struct {
	Entity string // Entity type of the DAO
	Op     string // Operation (e.g., "get", "save", "delete")
	Err    error  // Underlying error
}

// Error returns the error string.
func (e *DAOError) Error() string {
	return fmt.Sprintf("pergen: %s %s: %v", e.Op, e.Entity, e.Err)
}

// Unwrap returns the underlying error.
func (e *DAOError) Unwrap() error {
	return e.Err
}

// NewDAOError returns a new DAOError.
func NewDAOError(entity, op string, err error) *DAOError {
	return &DAOError{Entity: entity, Op: op, Err: err}
}

// IsDAOError returns true if the error is a DAOError.
func IsDAOError(err error) bool {
	if err == nil {
		return false
	}
	var e *DAOError
	return errors.As(err, &e)
}
