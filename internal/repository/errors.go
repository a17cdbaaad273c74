// Package repository defines the sentinel errors storage backends
// translate driver failures into. Domain services match on these with
// errors.Is and map them to their own error vocabulary.
package repository

import "errors"

var (
	// ErrNotFound indicates the requested row doesn't exist.
	ErrNotFound = errors.New("not found")
	// ErrForeignKeyViolation indicates a reference to a missing row.
	ErrForeignKeyViolation = errors.New("foreign key violation")
	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate")
)
