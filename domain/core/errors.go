package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrUnknownColumn means a referenced column is not in the table schema.
	// A programmer or configuration error, not user-recoverable.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInsufficientSample means fewer usable values remain than a
	// statistical test requires.
	ErrInsufficientSample = errors.New("insufficient sample")

	// ErrDomain means a transform input lies outside its mathematical domain.
	ErrDomain = errors.New("value outside transform domain")

	// ErrDegenerateInput means a regression input has no usable variance.
	ErrDegenerateInput = errors.New("degenerate regression input")
)

// Error constructors with context

func NewUnknownColumnError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

func NewInsufficientSampleError(have, need int) error {
	return fmt.Errorf("%w: %d values available, %d required", ErrInsufficientSample, have, need)
}

func NewDomainError(transform string, value float64) error {
	return fmt.Errorf("%w: %s is undefined for %v", ErrDomain, transform, value)
}

func NewDegenerateInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDegenerateInput, reason)
}

// Error checking helpers

func IsUnknownColumn(err error) bool {
	return errors.Is(err, ErrUnknownColumn)
}

func IsInsufficientSample(err error) bool {
	return errors.Is(err, ErrInsufficientSample)
}

func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}

func IsDegenerateInput(err error) bool {
	return errors.Is(err, ErrDegenerateInput)
}
