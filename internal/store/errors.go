package store

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports required fields that are missing or malformed.
// The map key is the field name, the value a short human-readable reason.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid input: %s", strings.Join(names, ", "))
}

// NotFoundError indicates the referenced record does not exist.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// IntegrityError indicates a write referenced a venue or artist that does
// not exist. Nothing is persisted when it is returned.
type IntegrityError struct {
	Reference string
	Err       error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("dangling %s reference", e.Reference)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// StorageError wraps any other persistence failure. The operation names the
// failed step for logs; the wrapped error carries the driver detail.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
