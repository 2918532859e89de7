package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrNoData           = errors.New("no word for date")
)

// ErrorKind is a coarse-grained categorization for client errors.
type ErrorKind string

const (
	KindTransport ErrorKind = "transport" // request never produced a response
	KindStatus    ErrorKind = "status"    // non-2xx response
	KindDecode    ErrorKind = "decode"    // response body was not the expected JSON
)

// Error wraps an underlying error with the operation and a kind.
type Error struct {
	Op     string
	Kind   ErrorKind
	Status int // HTTP status, set for KindStatus
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Status != 0 {
		base += fmt.Sprintf(" (status=%d)", e.Status)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
