package optix

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two framework-level failure modes. Domain errors
// carried by caller-supplied functions pass through composition unchanged
// unless an error mapper rewrites them.
var (
	// ErrFocusUnavailable indicates a read failed to locate the focus,
	// typically because the source is not in the expected shape.
	ErrFocusUnavailable = errors.New("focus unavailable")

	// ErrConstructionRejected indicates a build step refused to produce a
	// source from the candidate focus value.
	ErrConstructionRejected = errors.New("construction rejected")
)

// FocusUnavailable wraps ErrFocusUnavailable with detail about what was
// expected. Use it from partial read functions.
func FocusUnavailable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFocusUnavailable, fmt.Sprintf(format, args...))
}

// ConstructionRejected wraps ErrConstructionRejected with detail about why
// the candidate focus was refused. Use it from partial build functions.
func ConstructionRejected(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConstructionRejected, fmt.Sprintf(format, args...))
}

// ErrorMapper rewrites one side's error into the unified error type of a
// composed optic. Mappers are fixed at composition time; no per-call
// re-resolution occurs.
type ErrorMapper func(error) error

// identityMapper is the automatic adaptation: Go's error interface already
// unifies mismatched error types, so the canonical conversion is a pass-through.
func identityMapper(err error) error { return err }

func orIdentity(m ErrorMapper) ErrorMapper {
	if m == nil {
		return identityMapper
	}
	return m
}
