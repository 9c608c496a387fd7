package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and adapters. Wrap them with
// fmt.Errorf("...: %w", ...) so call sites can classify failures with
// errors.Is without string matching.
var (
	// ErrConfiguration marks a missing or rejected provider credential.
	ErrConfiguration = errors.New("missing or invalid provider credential")

	// ErrUpstream marks a total upstream failure: either every call in a
	// fan-out failed, or a single non-fan-out call failed.
	ErrUpstream = errors.New("upstream provider failure")

	// ErrNotFound marks a lookup that produced zero results.
	ErrNotFound = errors.New("not found")
)

// InvalidArgumentError reports malformed caller input, naming the
// violated constraint. It is never retried.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}
