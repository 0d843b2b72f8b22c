package graph

import (
	"errors"
	"fmt"
)

// ErrUnavailable is the sentinel matched by errors.Is for any connection
// bootstrap failure. ConnectionError wraps it so callers can test the
// category without depending on the concrete type.
var ErrUnavailable = errors.New("graph store unavailable")

// ConnectionError reports that the graph store could not be reached after the
// bootstrap retry budget was exhausted. It is fatal to process startup:
// callers must not proceed without a working connection.
type ConnectionError struct {
	// URI is the store address that was dialed.
	URI string

	// Attempts is the number of connectivity checks made.
	Attempts int

	// Err is the error from the last failed attempt.
	Err error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("graph: store at %s unreachable after %d attempts: %v", e.URI, e.Attempts, e.Err)
}

// Unwrap returns the last attempt's error so errors.Is and errors.As can
// inspect the underlying driver failure.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Is reports a match for ErrUnavailable in addition to the wrapped chain.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrUnavailable
}
