package repository

import (
	"errors"
	"fmt"
)

// NotFoundError indicates an operation referenced an unknown candidate id.
// It is always surfaced to the caller, never masked by the fallback path.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("candidate %d not found", e.ID)
}

// TransportError indicates the backing candidate store is unreachable.
// Reads recover from it via the fallback dataset; writes surface it.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("candidate store unreachable during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsTransport reports whether err is a TransportError
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
