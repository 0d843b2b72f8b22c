package neuroscan

import (
	"errors"
	"fmt"
)

// Sentinel errors for common SDK error conditions. These errors can be used
// with errors.Is() for error checking.
var (
	// ErrInvalidInput indicates a run was started with incomplete input.
	ErrInvalidInput = errors.New("invalid run input")

	// ErrNotConfigured indicates the Analyzer is missing a required
	// collaborator for the requested operation.
	ErrNotConfigured = errors.New("analyzer not configured")
)

// Error kinds categorize errors by their type.
const (
	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindConnection represents graph store bootstrap failures.
	KindConnection = "connection"

	// KindSeed represents ontology population failures.
	KindSeed = "seed"

	// KindQuery represents knowledge query failures.
	KindQuery = "query"

	// KindStage represents pipeline stage failures.
	KindStage = "stage"

	// KindInternal represents internal SDK errors.
	KindInternal = "internal"
)

// Error is a structured error type that wraps underlying errors with the
// operation that failed and the category of failure. It supports error
// unwrapping and works with errors.Is() and errors.As().
type Error struct {
	// Op is the operation that failed (e.g. "Analyzer.Run").
	Op string

	// Kind categorizes the error (e.g. KindValidation, KindStage).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("neuroscan: %s: %s", e.Op, e.Kind)
	}
	if len(e.Context) > 0 {
		return fmt.Sprintf("neuroscan: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}
	return fmt.Sprintf("neuroscan: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by Kind (and Op when the target sets one), or
// defers to the wrapped chain.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != "" && e.Kind != t.Kind {
		return false
	}
	if t.Op != "" && e.Op != t.Op {
		return false
	}
	return true
}
