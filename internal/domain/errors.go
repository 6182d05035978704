package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMenuNotFound  = errors.New("daily menu not found")
	ErrItemNotFound  = errors.New("daily menu item not found")
	ErrAreaNotFound  = errors.New("delivery area not found")
	ErrStoreNotFound = errors.New("store not found")
	ErrSheetExists   = errors.New("daily menu already exists for store and date")
	ErrInvalidDate   = errors.New("invalid menu date")
)

// ValidationError rejects a request before any I/O happens.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// UpstreamError marks the record store as unreachable or misbehaving. It is
// surfaced to callers rather than masked as an empty sheet, so an outage is
// never mistaken for "no menu today".
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("menu storage: %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstreamError(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err}
}
