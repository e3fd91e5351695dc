package tilecode

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumTilings is returned when numTilings is not positive.
	ErrInvalidNumTilings = errors.New("numTilings must be positive")

	// ErrInvalidSize is returned when an IHT capacity or hash size is zero.
	ErrInvalidSize = errors.New("index space size must be positive")

	// ErrEngineConflict is returned when both WithIHT and WithHashSize are given.
	ErrEngineConflict = errors.New("WithIHT and WithHashSize are mutually exclusive")
)

// ErrWrapWidthMismatch indicates that the wrap-width slice does not line up
// with the continuous dimensions.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrWrapWidthMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrWrapWidthMismatch) Error() string {
	return fmt.Sprintf("wrap width mismatch: %d continuous dimensions, %d wrap widths", e.Expected, e.Actual)
}

func (e *ErrWrapWidthMismatch) Unwrap() error { return e.cause }
