package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across the route search system.
// Handlers match on these with errors.Is to map failures to responses.
var (
	// ErrInvalidInput indicates malformed construction input, such as a nil
	// sailing, rate, or exchange-rate collection.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidPortCode indicates a query port code that fails format
	// validation.
	ErrInvalidPortCode = errors.New("invalid port code")

	// ErrNoOutboundSailings indicates a query origin with no outbound
	// sailings in the network.
	ErrNoOutboundSailings = errors.New("origin has no outbound sailings")

	// ErrQueryFailure indicates an unexpected internal fault during a route
	// query. The original cause is attached and can be inspected with
	// errors.Unwrap.
	ErrQueryFailure = errors.New("route query failed")
)

// QueryError wraps an unexpected internal fault raised while answering a
// route query. It carries the operation name and the original cause so
// callers get a single error surface instead of leaked internals.
type QueryError struct {
	// Op is the query operation that failed (e.g., "find cheapest route").
	Op string

	// Err is the underlying cause.
	Err error
}

// NewQueryError creates a QueryError for the given operation and cause.
func NewQueryError(op string, cause error) *QueryError {
	return &QueryError{Op: op, Err: cause}
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrQueryFailure, e.Err)
}

// Unwrap returns the underlying cause.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error. All QueryErrors match
// ErrQueryFailure so callers can treat internal faults as one category.
func (e *QueryError) Is(target error) bool {
	return target == ErrQueryFailure
}
