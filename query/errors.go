package query

import (
	"errors"
	"fmt"
)

// ErrFunctionNotFound indicates an exact-name lookup matched no record in
// the derived-functions view. Use errors.Is to detect it.
var ErrFunctionNotFound = errors.New("function not found")

// ValidationError reports a malformed caller-supplied parameter. It is
// returned immediately, before any catalog access happens.
type ValidationError struct {
	// Param is the name of the offending parameter.
	Param string

	// Reason explains what was expected.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}
