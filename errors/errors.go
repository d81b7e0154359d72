// Package apperrors defines the structured error types of the evaluation
// domain library, allowing for a clear distinction between error classes
// (invalid request, unsupported size) and for carrying the failed candidate
// and size as context.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions. Both error types
// implement Is() against their sentinel, so callers can branch with
// errors.Is(err, apperrors.ErrDomainSize) without inspecting the message.
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two error kinds of the library. The typed errors
// below match these through errors.Is.
var (
	// ErrInvalidSize reports a requested size below the minimum of 2.
	ErrInvalidSize = errors.New("evaluation domain size must be at least 2")

	// ErrDomainSize reports a size the chosen construction cannot support:
	// a non-power-of-two size for basic radix-2, a non-power-of-two small
	// part for step radix-2, a missing root of unity, no applicable
	// dispatcher candidate, or a wrong input-vector length.
	ErrDomainSize = errors.New("domain size not supported")
)

// InvalidSizeError reports a domain request with size <= 1.
type InvalidSizeError struct {
	// Size is the rejected size.
	Size uint64
}

// Error returns the error message for an InvalidSizeError.
func (e InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid evaluation domain size %d: must be at least 2", e.Size)
}

// Is reports whether target is the ErrInvalidSize sentinel.
func (e InvalidSizeError) Is(target error) bool { return target == ErrInvalidSize }

// NewInvalidSizeError creates an InvalidSizeError for the given size.
func NewInvalidSizeError(size uint64) error {
	return InvalidSizeError{Size: size}
}

// DomainSizeError reports a size that the named construction cannot support.
// Construction and Size give the textual hint required for a failing
// construction; Reason explains which precondition failed.
type DomainSizeError struct {
	// Construction names the failed candidate, e.g. "basic radix-2".
	Construction string
	// Size is the rejected size.
	Size uint64
	// Reason explains the failed precondition.
	Reason string
}

// Error returns the error message for a DomainSizeError.
func (e DomainSizeError) Error() string {
	return fmt.Sprintf("%s domain of size %d: %s", e.Construction, e.Size, e.Reason)
}

// Is reports whether target is the ErrDomainSize sentinel.
func (e DomainSizeError) Is(target error) bool { return target == ErrDomainSize }

// NewDomainSizeError creates a DomainSizeError with a formatted reason.
func NewDomainSizeError(construction string, size uint64, format string, a ...any) error {
	return DomainSizeError{
		Construction: construction,
		Size:         size,
		Reason:       fmt.Sprintf(format, a...),
	}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w,
// preserving errors.Is and errors.As over the chain. A nil err yields nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
