// Package cachescope structured error types for probe operations
package cachescope

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Invalid argument errors
	ErrTypeInvalidArg ErrorType = iota
	// Memory errors
	ErrTypeMemory
	// I/O errors (run record persistence)
	ErrTypeIO
)

// ScopeError represents a structured error with context
type ScopeError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *ScopeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cachescope %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("cachescope %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *ScopeError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeMemory:
		return "Memory"
	case ErrTypeIO:
		return "IO"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &ScopeError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewMemoryError creates a memory-related error
func NewMemoryError(op string, message string, err error) error {
	return &ScopeError{
		Type:    ErrTypeMemory,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewIOError creates an I/O error
func NewIOError(op string, message string, err error) error {
	return &ScopeError{
		Type:    ErrTypeIO,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Common pre-defined errors

var (
	// ErrRegionCells indicates a non-positive region cell count
	ErrRegionCells = NewInvalidArgError("AllocRegion", "cell count must be positive")

	// ErrRegionAlign indicates an unusable region alignment
	ErrRegionAlign = NewInvalidArgError("AllocRegion", "alignment must be a positive power of two")

	// ErrRegionReleased indicates use of a released region
	ErrRegionReleased = NewMemoryError("Region", "region already released", nil)

	// ErrNoRand indicates a missing shuffle source
	ErrNoRand = NewInvalidArgError("BuildCycle", "random source must not be nil")
)

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	if e, ok := err.(*ScopeError); ok {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}

// IsMemoryError checks if an error is a memory error
func IsMemoryError(err error) bool {
	if e, ok := err.(*ScopeError); ok {
		return e.Type == ErrTypeMemory
	}
	return false
}

// IsIOError checks if an error is an I/O error
func IsIOError(err error) bool {
	if e, ok := err.(*ScopeError); ok {
		return e.Type == ErrTypeIO
	}
	return false
}
